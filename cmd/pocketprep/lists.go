package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/cli"
	"github.com/pocketprep/pocketprep/internal/model"
)

func listsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage packing lists",
		Long:  `Create, view, and manage your packing lists.`,
	}

	// Subcommands
	cmd.AddCommand(listsListCmd())
	cmd.AddCommand(listsShowCmd())
	cmd.AddCommand(listsCreateCmd())
	cmd.AddCommand(listsDeleteCmd())
	cmd.AddCommand(listsResetCmd())

	return cmd
}

func listsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all packing lists",
		Long:  `List all packing lists, newest first, with packing progress.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			lists, err := store.GetLists(cmd.Context())
			if err != nil {
				return err
			}

			cli.RenderLists(os.Stdout, lists)
			return nil
		},
	}
}

func listsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a packing list",
		Long:  `Show a packing list's items grouped by category, with packing progress.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			list, err := store.GetList(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cli.RenderListDetail(os.Stdout, list)
			return nil
		},
	}
}

func listsCreateCmd() *cobra.Command {
	var icon, color string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new packing list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			list := model.NewPackingList(args[0])
			if icon != "" {
				list.Icon = icon
			}
			if color != "" {
				list.ColorHex = color
			}

			if err := store.CreateList(cmd.Context(), &list); err != nil {
				return err
			}

			cmd.Printf("%s\n", cli.SuccessStyle.Render("Created list "+list.Name))
			cmd.Printf("%s\n", cli.SubtleStyle.Render("id: "+list.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "list icon token")
	cmd.Flags().StringVar(&color, "color", "", "list accent color (hex)")

	return cmd
}

func listsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a packing list",
		Long:  `Delete a packing list and every item in it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteList(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("List deleted"))
			return nil
		},
	}
}

func listsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <list-id>",
		Short: "Mark every item in a list as unpacked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ResetList(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("List reset"))
			return nil
		},
	}
}
