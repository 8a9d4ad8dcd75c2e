package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stylepins/internal/ident"
	"stylepins/internal/models"
)

// NewImage holds the caller-supplied fields of an image. An empty
// SubCategory means none; an empty URL gets the placeholder.
type NewImage struct {
	Title       string
	Category    string
	SubCategory string
	URL         string
}

// AddImage inserts an image at the front of the catalog and returns its id.
func (s *Store) AddImage(ctx context.Context, in NewImage) (string, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "", invalid("title", "must not be empty")
	}

	id, err := s.ids.NewEntityID(ident.ImagePrefix)
	if err != nil {
		return "", fmt.Errorf("generate image id: %w", err)
	}
	date := s.now().UTC().Format(models.DateLayout)

	err = s.mutate(ctx, "add image", func(next *models.CatalogState) (bool, error) {
		category, ok := next.FindCategory(in.Category)
		if !ok {
			return false, invalid("category", "unknown category "+in.Category)
		}
		if !category.IsRoot() {
			return false, invalid("category", in.Category+" is not a root category")
		}

		var sub *string
		if in.SubCategory != "" {
			child, ok := next.FindCategory(in.SubCategory)
			if !ok || !child.IsChildOf(category.ID) {
				return false, invalid("subCategory", in.SubCategory+" is not a sub-category of "+category.ID)
			}
			sub = &child.ID
		}

		code, err := s.ids.GenerateProductCode(category.Name)
		if err != nil {
			return false, fmt.Errorf("generate product code: %w", err)
		}

		url := in.URL
		if url == "" {
			url = models.PlaceholderImageURL
		}

		img := models.Image{
			ID:          id,
			Title:       title,
			Category:    category.ID,
			SubCategory: sub,
			URL:         url,
			Code:        code,
			Date:        date,
		}
		next.Images = append([]models.Image{img}, next.Images...)
		return true, nil
	})
	if err != nil {
		return "", err
	}

	slog.Debug("image added", "id", id, "category", in.Category)
	return id, nil
}

// DeleteImage removes an image. Unknown ids are ignored.
func (s *Store) DeleteImage(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete image", func(next *models.CatalogState) (bool, error) {
		i := next.FindImage(id)
		if i < 0 {
			return false, nil
		}
		next.Images = append(next.Images[:i], next.Images[i+1:]...)
		return true, nil
	})
}

// RecordEngagement counts one click on an image. Unknown ids are ignored.
func (s *Store) RecordEngagement(ctx context.Context, id string) error {
	return s.mutate(ctx, "record engagement", func(next *models.CatalogState) (bool, error) {
		i := next.FindImage(id)
		if i < 0 {
			return false, nil
		}
		next.Images[i].Clicks++
		return true, nil
	})
}
