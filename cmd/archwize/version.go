package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archwize/archwize"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of archwize",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("archwize version %s\n", archwize.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
