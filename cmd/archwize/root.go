package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "archwize",
	Short: "ArchWize is an AI-powered flowchart generator",
	Long: `ArchWize turns natural-language descriptions into valid Mermaid.js
flowcharts, repairing whatever the upstream model produces until it renders.`,
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
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default archwize.yaml)")
}
