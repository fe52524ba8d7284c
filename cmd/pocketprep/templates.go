package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/cli"
	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/templates"
)

func templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse and use the built-in list templates",
	}

	// Subcommands
	cmd.AddCommand(templatesListCmd())
	cmd.AddCommand(templatesUseCmd())

	return cmd
}

func templatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			lists, err := store.GetTemplates(cmd.Context())
			if err != nil {
				return err
			}

			cli.RenderLists(os.Stdout, lists)
			return nil
		},
	}
}

func templatesUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Create a new list from a template",
		Long:  `Create a fresh, unpacked list from a template, named "<template> Copy".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			all, err := store.GetTemplates(cmd.Context())
			if err != nil {
				return err
			}

			templateID := ""
			for _, t := range all {
				if strings.EqualFold(t.Name, args[0]) || t.ID == args[0] {
					templateID = t.ID
					break
				}
			}
			if templateID == "" {
				return fmt.Errorf("%w: template %q (built-ins: %s)",
					common.ErrNotFound, args[0], strings.Join(templates.Names(), ", "))
			}

			list, err := templates.Duplicate(cmd.Context(), store, templateID)
			if err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("Created " + list.Name))
			cmd.Println(cli.SubtleStyle.Render("id: " + list.ID))
			return nil
		},
	}
}
