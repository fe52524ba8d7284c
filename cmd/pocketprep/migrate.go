package main

import (
	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  `Apply pending database migrations and seed the built-in templates.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cmd.Println(cli.SuccessStyle.Render("Database is up to date"))
			return nil
		},
	}
}
