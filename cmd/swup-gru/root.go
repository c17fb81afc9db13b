package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swup-gru",
	Short: "swup-gru is a page-transition engine",
	Long:  `swup-gru coordinates in-site navigations: it fetches destination documents, swaps designated containers and keeps history and cache state consistent.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("origin", "http://localhost:8080", "Origin the fetcher is rooted at")
	rootCmd.PersistentFlags().StringSlice("container", []string{"#swup"}, "Container selectors to swap")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

var verbose bool

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

var profile = termenv.ColorProfile()

func statusLine(label, value string) string {
	l := termenv.String(label).Foreground(profile.Color("#818cf8")).Bold()
	return fmt.Sprintf("%s %s", l, value)
}
