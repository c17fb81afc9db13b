package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var preloadCmd = &cobra.Command{
	Use:   "preload <url> [url...]",
	Short: "Warm the page cache for one or more URLs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		failed := 0
		for _, url := range args {
			if err := engine.Preload(cmd.Context(), url); err != nil {
				fmt.Println(statusLine("failed", fmt.Sprintf("%s: %v", url, err)))
				failed++
				continue
			}
			fmt.Println(statusLine("cached", url))
		}
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(preloadCmd)
}
