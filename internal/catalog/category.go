package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stylepins/internal/ident"
	"stylepins/internal/models"
)

// AddCategory appends a category and returns its id. parentID is
// models.RootParent (or empty) for a top-level category, otherwise the id
// of an existing root category. Duplicate names are allowed.
func (s *Store) AddCategory(ctx context.Context, name, parentID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "must not be empty")
	}
	if parentID == "" {
		parentID = models.RootParent
	}

	id, err := s.ids.NewEntityID(ident.CategoryPrefix)
	if err != nil {
		return "", fmt.Errorf("generate category id: %w", err)
	}

	err = s.mutate(ctx, "add category", func(next *models.CatalogState) (bool, error) {
		icon := ""
		if parentID == models.RootParent {
			icon = models.DefaultRootIcon
		} else {
			parent, ok := next.FindCategory(parentID)
			if !ok {
				return false, invalid("parentId", "unknown category "+parentID)
			}
			if !parent.IsRoot() {
				return false, invalid("parentId", "sub-categories cannot have children")
			}
		}
		next.Categories = append(next.Categories, models.Category{
			ID:       id,
			Name:     name,
			ParentID: parentID,
			Icon:     icon,
		})
		return true, nil
	})
	if err != nil {
		return "", err
	}

	slog.Debug("category added", "id", id, "parent", parentID)
	return id, nil
}

// DeleteCategory removes a category and its direct sub-categories. Images
// that reference them are left as they are. Unknown ids are ignored.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete category", func(next *models.CatalogState) (bool, error) {
		kept := make([]models.Category, 0, len(next.Categories))
		for _, c := range next.Categories {
			if c.ID == id || c.ParentID == id {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == len(next.Categories) {
			return false, nil
		}
		next.Categories = kept
		return true, nil
	})
}
