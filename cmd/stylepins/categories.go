package main

import (
	"github.com/spf13/cobra"

	"stylepins/internal/filter"
	"stylepins/internal/models"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "List and edit categories",
	}
	cmd.AddCommand(newCategoriesListCmd(a), newCategoriesAddCmd(a), newCategoriesDeleteCmd(a))
	return cmd
}

func newCategoriesListCmd(a *app) *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories, or the sub-categories of --parent",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var cats []models.Category
			switch parent {
			case "":
				cats = a.store.Categories()
			case models.RootParent:
				cats = a.store.RootCategories()
			default:
				cats = a.store.SubCategories(parent)
			}

			rows := make([][]string, 0, len(cats))
			for _, c := range cats {
				subs := ""
				if c.IsRoot() {
					subs = itoa(a.store.SubCategoryCount(c.ID))
				}
				rows = append(rows, []string{c.ID, c.Name, c.ParentID, c.Icon, subs})
			}
			return a.print(cats, tableData{
				headers: []string{"ID", "NAME", "PARENT", "ICON", "SUBS"},
				rows:    rows,
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", `only children of this category ("root" for top level)`)
	return cmd
}

func newCategoriesAddCmd(a *app) *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:     "add NAME",
		Short:   "Add a category",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.store.AddCategory(cmd.Context(), args[0], parent)
			if err != nil {
				return err
			}
			c, err := a.store.Category(id)
			if err != nil {
				return err
			}
			return a.print(c, tableData{
				headers: []string{"ID", "NAME", "PARENT", "ICON"},
				rows:    [][]string{{c.ID, c.Name, c.ParentID, c.Icon}},
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", models.RootParent, "parent category id")
	return cmd
}

func newCategoriesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a category and its sub-categories",
		Long: "Delete a category and its sub-categories. Images filed under them are kept;\n" +
			"use \"images orphans\" to find them.",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			before := len(a.store.State().Categories)
			if err := a.store.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			removed := before - len(a.store.State().Categories)
			return a.print(map[string]any{"id": args[0], "removed": removed}, tableData{
				headers: []string{"ID", "REMOVED"},
				rows:    [][]string{{args[0], itoa(removed)}},
			})
		},
	}
}

// categoryName resolves an id for display, falling back to the raw id for
// dangling references.
func categoryName(a *app, id string) string {
	if id == "" || id == filter.All {
		return id
	}
	c, err := a.store.Category(id)
	if err != nil {
		return id + " (missing)"
	}
	return c.Name
}
