package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/classify"
	"github.com/pocketprep/pocketprep/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the reference item categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesGuessCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the reference categories with their icons",
		Run: func(_ *cobra.Command, _ []string) {
			for _, cat := range classify.Categories() {
				style := cli.CategoryStyle(cat.ColorHex)
				fmt.Fprintf(os.Stdout, "%s  %s\n",
					style.Render(cat.Name),
					cli.SubtleStyle.Render(cat.Icon))
			}
		},
	}
}

func categoriesGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <item-name>",
		Short: "Show the inferred category and icon for an item name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			category, icon := classify.Classify(args[0])
			cmd.Printf("%s -> %s (%s)\n", args[0], category, icon)
		},
	}
}
