package main

import (
	"github.com/spf13/cobra"

	"stylepins/internal/catalog"
	"stylepins/internal/filter"
	"stylepins/internal/models"
)

func newImagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image", "img"},
		Short:   "Browse and edit images",
	}
	cmd.AddCommand(
		newImagesListCmd(a),
		newImagesShowCmd(a),
		newImagesAddCmd(a),
		newImagesDeleteCmd(a),
		newImagesClickCmd(a),
		newImagesOrphansCmd(a),
	)
	return cmd
}

func (a *app) printImages(images []models.Image) error {
	rows := make([][]string, 0, len(images))
	for _, img := range images {
		rows = append(rows, []string{
			img.ID,
			img.Title,
			categoryName(a, img.Category),
			categoryName(a, img.SubCategoryID()),
			img.Code,
			itoa(img.Clicks),
			itoa(img.Views),
			img.Date,
		})
	}
	return a.print(images, tableData{
		headers: []string{"ID", "TITLE", "CATEGORY", "SUB", "CODE", "CLICKS", "VIEWS", "DATE"},
		rows:    rows,
	})
}

func newImagesListCmd(a *app) *cobra.Command {
	sel := filter.NewSelection()
	var category, sub string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sel = sel.Select(category).SelectSub(sub)
			return a.printImages(sel.Apply(a.store.State()))
		},
	}
	cmd.Flags().StringVar(&category, "category", filter.All, "root category id")
	cmd.Flags().StringVar(&sub, "sub", filter.All, "sub-category id (needs --category)")
	return cmd
}

func newImagesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one image",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			img, err := a.store.Image(args[0])
			if err != nil {
				return err
			}
			rows := [][]string{
				{"id", img.ID},
				{"title", img.Title},
				{"category", categoryName(a, img.Category)},
				{"sub-category", categoryName(a, img.SubCategoryID())},
				{"url", img.URL},
				{"code", img.Code},
				{"clicks", itoa(img.Clicks)},
				{"views", itoa(img.Views)},
				{"date", img.Date},
			}
			return a.print(img, tableData{headers: []string{"FIELD", "VALUE"}, rows: rows})
		},
	}
}

func newImagesAddCmd(a *app) *cobra.Command {
	var in catalog.NewImage
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an image at the top of the feed",
		Args:    cobra.NoArgs,
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.store.AddImage(cmd.Context(), in)
			if err != nil {
				return err
			}
			img, err := a.store.Image(id)
			if err != nil {
				return err
			}
			return a.printImages([]models.Image{img})
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "image title")
	cmd.Flags().StringVar(&in.Category, "category", "", "root category id")
	cmd.Flags().StringVar(&in.SubCategory, "sub", "", "sub-category id")
	cmd.Flags().StringVar(&in.URL, "url", "", "image URL (placeholder when empty)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newImagesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Short:   "Delete an image",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.print(map[string]string{"deleted": args[0]}, tableData{
				headers: []string{"DELETED"},
				rows:    [][]string{{args[0]}},
			})
		},
	}
}

func newImagesClickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "click ID",
		Short: "Record a click on an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.RecordEngagement(cmd.Context(), args[0]); err != nil {
				return err
			}
			img, err := a.store.Image(args[0])
			if err != nil {
				return err
			}
			return a.print(map[string]any{"id": img.ID, "clicks": img.Clicks}, tableData{
				headers: []string{"ID", "CLICKS"},
				rows:    [][]string{{img.ID, itoa(img.Clicks)}},
			})
		},
	}
}

func newImagesOrphansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "orphans",
		Short:   "List images whose category no longer exists",
		Args:    cobra.NoArgs,
		PreRunE: a.requireAdmin,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.printImages(a.store.OrphanedImages())
		},
	}
}
