// Package filter projects a CatalogState into the views the browse surface
// shows: the image grid for a category selection and the category menus.
// Everything here is a pure function of the state it is given.
package filter

import "stylepins/internal/models"

// All selects every category or sub-category.
const All = "all"

// Images returns the images matching the selection, in state order
// (most recent first). An image matches when categoryID is All or equals
// its category, and subCategoryID is All or equals its sub-category.
// The result is never nil.
func Images(state *models.CatalogState, categoryID, subCategoryID string) []models.Image {
	out := make([]models.Image, 0, len(state.Images))
	for _, img := range state.Images {
		if categoryID != All && img.Category != categoryID {
			continue
		}
		if subCategoryID != All && img.SubCategoryID() != subCategoryID {
			continue
		}
		out = append(out, img)
	}
	return out
}

// Selection is the browse surface's current category choice.
type Selection struct {
	Category    string
	SubCategory string
}

// NewSelection returns the all/all selection.
func NewSelection() Selection {
	return Selection{Category: All, SubCategory: All}
}

// Select switches the root category. Any root change, including back to
// All, resets the sub-category to All.
func (s Selection) Select(categoryID string) Selection {
	return Selection{Category: categoryID, SubCategory: All}
}

// SelectSub narrows to a sub-category of the current root category.
func (s Selection) SelectSub(subCategoryID string) Selection {
	if s.Category == All {
		return s
	}
	s.SubCategory = subCategoryID
	return s
}

// Apply returns the images matching the selection.
func (s Selection) Apply(state *models.CatalogState) []models.Image {
	return Images(state, s.Category, s.SubCategory)
}

// RootCategories returns the top-level categories in state order.
func RootCategories(state *models.CatalogState) []models.Category {
	out := make([]models.Category, 0)
	for _, c := range state.Categories {
		if c.IsRoot() {
			out = append(out, c)
		}
	}
	return out
}

// SubCategories returns the direct children of parentID in state order.
// The All selection has no sub-categories.
func SubCategories(state *models.CatalogState, parentID string) []models.Category {
	out := make([]models.Category, 0)
	if parentID == All {
		return out
	}
	for _, c := range state.Categories {
		if c.IsChildOf(parentID) {
			out = append(out, c)
		}
	}
	return out
}

// SubCategoryCount returns how many sub-categories parentID has.
func SubCategoryCount(state *models.CatalogState, parentID string) int {
	return len(SubCategories(state, parentID))
}
