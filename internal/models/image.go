// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PlaceholderImageURL is used when an image is added without a URL.
const PlaceholderImageURL = "https://via.placeholder.com/400x600?text=Uploaded+Image"

// DateLayout is the calendar-date format of Image.Date.
const DateLayout = "2006-01-02"

// Image is a pin in the catalog. Views and Clicks only ever grow.
// SubCategory is nil when the image sits directly under its root category.
type Image struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Category    string  `json:"category" yaml:"category"`
	SubCategory *string `json:"subCategory" yaml:"subCategory"`
	URL         string  `json:"url" yaml:"url"`
	Views       int     `json:"views" yaml:"views"`
	Clicks      int     `json:"clicks" yaml:"clicks"`
	Code        string  `json:"code" yaml:"code"`
	Date        string  `json:"date" yaml:"date"`
}

// HasSubCategory returns true if the image is filed under a sub-category.
func (i *Image) HasSubCategory() bool {
	return i.SubCategory != nil && *i.SubCategory != ""
}

// SubCategoryID returns the sub-category ID, or "" when there is none.
func (i *Image) SubCategoryID() string {
	if i.SubCategory == nil {
		return ""
	}
	return *i.SubCategory
}

// clone returns a copy that shares no pointers with i.
func (i Image) clone() Image {
	if i.SubCategory != nil {
		sub := *i.SubCategory
		i.SubCategory = &sub
	}
	return i
}
