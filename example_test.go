package swup_test

import (
	"context"
	"fmt"
	"log"

	swup "github.com/labspc/swup-gru-ai"
	"github.com/labspc/swup-gru-ai/pkg/adapters/memdom"
	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/labspc/swup-gru-ai/pkg/ports"
)

// Example wires the engine against in-memory collaborators and observes a
// navigation through the page:view hook.
func Example() {
	fetch := ports.FetcherFunc(func(ctx context.Context, url string) (*domain.Page, error) {
		return &domain.Page{
			URL:   url,
			Title: "About Us",
			Blocks: []domain.Block{
				{Selector: "#swup", HTML: "<h1>About Us</h1>"},
			},
		}, nil
	})

	engine, err := swup.New(
		swup.WithFetcher(fetch),
		swup.WithHistory(memdom.NewHistory("/")),
		swup.WithDocument(memdom.NewDocument(map[string]string{"#swup": ""})),
	)
	if err != nil {
		log.Fatal(err)
	}

	engine.Hooks().On(domain.HookPageView, func(ctx context.Context, visit *domain.Visit, event any) error {
		view := event.(*domain.PageViewEvent)
		fmt.Printf("page view: %s (%s)\n", view.URL, view.Title)
		return nil
	})

	if err := engine.Navigate(context.Background(), "/about"); err != nil {
		log.Fatal(err)
	}

	// Output: page view: /about (About Us)
}
