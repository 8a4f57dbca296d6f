package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/archwize/archwize/internal/presentation/tui"
	"github.com/archwize/archwize/pkg/mermaid"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate a flowchart from a description",
	Long: `Generates Mermaid.js flowchart source for the given description and prints
it to stdout. With a TTY the source is rendered as a highlighted code block;
use --plain to force raw output for piping.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _, _, err := buildService(cmd)
		if err != nil {
			fmt.Printf("Error initializing archwize: %v\n", err)
			os.Exit(1)
		}

		orientationFlag, _ := cmd.Flags().GetString("orientation")
		plain, _ := cmd.Flags().GetBool("plain")

		description := strings.Join(args, " ")
		code := svc.Generate(cmd.Context(), description, mermaid.ParseOrientation(orientationFlag))

		if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Println(code)
			return
		}

		tui.PrintBanner()
		rendered, err := tui.RenderCode(code)
		if err != nil {
			fmt.Println(code)
			return
		}
		fmt.Print(rendered)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("orientation", "o", "TD", "Diagram orientation: TD or LR")
	generateCmd.Flags().Bool("plain", false, "Print raw Mermaid source without terminal styling")
}
