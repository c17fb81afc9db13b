/*
Package swup is a page-transition engine core: it coordinates in-site
navigations, swapping designated document regions with fetched page data
while keeping history and cache state consistent.

The engine is built around three ideas:

  - A hook pipeline: every lifecycle phase (visit:start, url:updated,
    content:replace, page:view, ...) is a named extension point where
    handlers observe, filter or replace built-in behavior.
  - A page cache: previously fetched pages are served from a store keyed by
    normalized URL, with explicit clearing as the only bulk removal.
  - A supersession check: only the most recently started navigation may
    ever commit content to the visible document, which makes overlapping
    navigations (double clicks, back-button races, slow fetches) safe.

This Hexagonal Architecture keeps the core decoupled from its
collaborators: fetching, history and the document surface are ports, with
HTTP, Redis and in-memory adapters provided under pkg/adapters.

# Usage

	fetcher, err := httpfetch.New("https://example.com", []string{"#swup"})
	if err != nil {
		log.Fatal(err)
	}

	engine, err := swup.New(
		swup.WithFetcher(fetcher),
		swup.WithHistory(memdom.NewHistory("/")),
		swup.WithDocument(memdom.NewDocument(map[string]string{"#swup": ""})),
	)
	if err != nil {
		log.Fatal(err)
	}

	engine.Hooks().On(domain.HookPageView, func(ctx context.Context, visit *domain.Visit, event any) error {
		view := event.(*domain.PageViewEvent)
		log.Printf("page view: %s (%s)", view.URL, view.Title)
		return nil
	})

	if err := engine.Navigate(context.Background(), "/about"); err != nil {
		log.Fatal(err)
	}
*/
package swup
