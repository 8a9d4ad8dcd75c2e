package catalog

import "stylepins/internal/models"

// Dashboard is the admin overview of the catalog.
type Dashboard struct {
	TotalImages    int          `json:"totalImages"`
	TotalClicks    int          `json:"totalClicks"`
	TotalViews     int          `json:"totalViews"`
	RootCategories int          `json:"rootCategories"`
	SubCategories  int          `json:"subCategories"`
	Orphaned       int          `json:"orphanedImages"`
	Stats          models.Stats `json:"stats"`
}

// Dashboard summarises the current snapshot.
func (s *Store) Dashboard() Dashboard {
	state := s.State()
	d := Dashboard{
		TotalImages: len(state.Images),
		Stats:       state.Stats,
	}
	for _, img := range state.Images {
		d.TotalClicks += img.Clicks
		d.TotalViews += img.Views
	}
	for _, c := range state.Categories {
		if c.IsRoot() {
			d.RootCategories++
		} else {
			d.SubCategories++
		}
	}
	d.Orphaned = len(orphans(state))
	return d
}

// OrphanedImages returns images whose category is gone or no longer a root
// category, or whose sub-category no longer belongs to it. Deleting a
// category does not touch its images, so these accumulate until removed.
func (s *Store) OrphanedImages() []models.Image {
	return orphans(s.State())
}

func orphans(state *models.CatalogState) []models.Image {
	out := make([]models.Image, 0)
	for _, img := range state.Images {
		category, ok := state.FindCategory(img.Category)
		if !ok || !category.IsRoot() {
			out = append(out, img)
			continue
		}
		if img.HasSubCategory() {
			sub, ok := state.FindCategory(img.SubCategoryID())
			if !ok || !sub.IsChildOf(category.ID) {
				out = append(out, img)
			}
		}
	}
	return out
}
