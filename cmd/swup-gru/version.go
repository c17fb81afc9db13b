package main

import (
	"fmt"

	swup "github.com/labspc/swup-gru-ai"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swup-gru",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swup-gru version %s\n", swup.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
