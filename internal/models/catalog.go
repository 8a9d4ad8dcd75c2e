// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog entities and the CatalogState aggregate
// that is persisted as a single document.
package models

// CatalogState is the aggregate root: everything the catalog knows.
// A CatalogState handed out by the catalog store is a snapshot and must
// not be modified in place; use Clone to derive a new one.
type CatalogState struct {
	Settings   Settings   `json:"settings" yaml:"settings"`
	Categories []Category `json:"categories" yaml:"categories"`
	Images     []Image    `json:"images" yaml:"images"`
	Stats      Stats      `json:"stats" yaml:"stats"`
}

// Clone returns a deep copy of the state.
func (s *CatalogState) Clone() *CatalogState {
	cp := &CatalogState{
		Settings:   s.Settings,
		Categories: make([]Category, len(s.Categories)),
		Images:     make([]Image, len(s.Images)),
		Stats:      s.Stats,
	}
	copy(cp.Categories, s.Categories)
	for i, img := range s.Images {
		cp.Images[i] = img.clone()
	}
	return cp
}

// Normalize fills load-path defaults: nil collections become empty and
// counters never go below zero. An empty sub-category is stored as nil.
func (s *CatalogState) Normalize() {
	if s.Categories == nil {
		s.Categories = []Category{}
	}
	if s.Images == nil {
		s.Images = []Image{}
	}
	for i := range s.Images {
		img := &s.Images[i]
		if img.Views < 0 {
			img.Views = 0
		}
		if img.Clicks < 0 {
			img.Clicks = 0
		}
		if img.SubCategory != nil && *img.SubCategory == "" {
			img.SubCategory = nil
		}
	}
}

// FindCategory returns the category with the given ID.
func (s *CatalogState) FindCategory(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindImage returns the index of the image with the given ID, or -1.
func (s *CatalogState) FindImage(id string) int {
	for i := range s.Images {
		if s.Images[i].ID == id {
			return i
		}
	}
	return -1
}
