package main

import (
	"context"
	"fmt"
	"os"

	swup "github.com/labspc/swup-gru-ai"
	"github.com/labspc/swup-gru-ai/internal/logging"
	"github.com/labspc/swup-gru-ai/pkg/adapters/httpfetch"
	"github.com/labspc/swup-gru-ai/pkg/adapters/memdom"
	"github.com/labspc/swup-gru-ai/pkg/domain"
	"github.com/spf13/cobra"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate <url>",
	Short: "Run one navigation against an origin and print the render trace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, doc, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		engine.Hooks().On(domain.HookURLUpdated, func(ctx context.Context, v *domain.Visit, ev any) error {
			fmt.Println(statusLine("url:updated", ev.(*domain.URLUpdatedEvent).URL))
			return nil
		})
		engine.Hooks().On(domain.HookPageView, func(ctx context.Context, v *domain.Visit, ev any) error {
			view := ev.(*domain.PageViewEvent)
			fmt.Println(statusLine("page:view", fmt.Sprintf("%s (%s)", view.URL, view.Title)))
			return nil
		})

		if err := engine.Navigate(cmd.Context(), args[0]); err != nil {
			fmt.Printf("Navigation failed: %v\n", err)
			os.Exit(1)
		}

		containers, _ := cmd.Flags().GetStringSlice("container")
		for _, selector := range containers {
			fmt.Println(statusLine(selector, doc.HTML(selector)))
		}
	},
}

// buildEngine wires an engine against the origin flag with in-memory
// history/document collaborators.
func buildEngine(cmd *cobra.Command) (*swup.Engine, *memdom.Document, error) {
	origin, _ := cmd.Flags().GetString("origin")
	containers, _ := cmd.Flags().GetStringSlice("container")
	configPath, _ := cmd.Flags().GetString("config")

	logger := logging.New(logLevel())

	fetcher, err := httpfetch.New(origin, containers, httpfetch.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	seed := make(map[string]string, len(containers))
	for _, selector := range containers {
		seed[selector] = ""
	}
	doc := memdom.NewDocument(seed)

	opts := []swup.Option{
		swup.WithFetcher(fetcher),
		swup.WithHistory(memdom.NewHistory("/")),
		swup.WithDocument(doc),
		swup.WithLogger(logger),
	}
	if configPath != "" {
		opts = append(opts, swup.WithConfigFile(configPath))
	}
	opts = append(opts, swup.WithContainers(containers...))

	engine, err := swup.New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return engine, doc, nil
}

func init() {
	rootCmd.AddCommand(navigateCmd)
}
