// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// RootParent is the parent sentinel carried by top-level categories.
const RootParent = "root"

// DefaultRootIcon is the icon marker given to new root categories.
// Sub-categories carry no icon.
const DefaultRootIcon = "Tag"

// Category is a node of the two-level category tree. Root categories have
// ParentID == RootParent; sub-categories point at a root category's ID.
type Category struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ParentID string `json:"parentId" yaml:"parentId"`
	Icon     string `json:"icon" yaml:"icon"`
}

// IsRoot returns true if the category sits at the top of the tree.
func (c *Category) IsRoot() bool {
	return c.ParentID == RootParent
}

// IsChildOf returns true if the category is a direct sub-category of parentID.
func (c *Category) IsChildOf(parentID string) bool {
	return !c.IsRoot() && c.ParentID == parentID
}
