package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/classify"
	"github.com/pocketprep/pocketprep/internal/cli"
	"github.com/pocketprep/pocketprep/internal/model"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items in packing lists",
	}

	// Subcommands
	cmd.AddCommand(itemsAddCmd())
	cmd.AddCommand(itemsToggleCmd())
	cmd.AddCommand(itemsEditCmd())
	cmd.AddCommand(itemsDeleteCmd())

	return cmd
}

func itemsAddCmd() *cobra.Command {
	var category, icon, notes string

	cmd := &cobra.Command{
		Use:   "add <list-id> <name>",
		Short: "Add an item to a list",
		Long: `Add an item to a list. Unless overridden, the item's category and
icon are inferred from its name.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			listID, name := args[0], args[1]

			inferredCategory, inferredIcon := classify.Classify(name)
			if category == "" {
				category = inferredCategory
			}
			if icon == "" {
				icon = inferredIcon
			}

			item := model.NewItem(listID, name, icon, category)
			item.Notes = notes

			if err := store.AddItem(cmd.Context(), &item); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added %s (%s)", item.Name, item.Category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "item category (inferred from name if empty)")
	cmd.Flags().StringVar(&icon, "icon", "", "item icon token (inferred from name if empty)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func itemsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Toggle an item's packed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item, err := store.ToggleItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if item.Packed {
				cmd.Println(cli.SuccessStyle.Render("Packed " + item.Name))
			} else {
				cmd.Println(cli.SubtleStyle.Render("Unpacked " + item.Name))
			}
			return nil
		},
	}
}

func itemsEditCmd() *cobra.Command {
	var name, category, icon, notes string

	cmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Edit an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			item, err := store.GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if name != "" {
				item.Name = name
				// A renamed item gets reclassified unless the caller pins
				// category or icon explicitly.
				newCategory, newIcon := classify.Classify(name)
				if category == "" {
					item.Category = newCategory
				}
				if icon == "" {
					item.Icon = newIcon
				}
			}
			if category != "" {
				item.Category = category
			}
			if icon != "" {
				item.Icon = icon
			}
			if cmd.Flags().Changed("notes") {
				item.Notes = notes
			}

			if err := store.UpdateItem(cmd.Context(), item); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("Updated " + item.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new item name")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon token")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")

	return cmd
}

func itemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}

			cmd.Println(cli.SuccessStyle.Render("Item deleted"))
			return nil
		},
	}
}
