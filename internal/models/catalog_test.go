package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleState() *CatalogState {
	return &CatalogState{
		Settings: Settings{Instagram: "pins", Password: "admin"},
		Categories: []Category{
			{ID: "cat_1", Name: "Accessories", ParentID: RootParent, Icon: "Watch"},
			{ID: "sub_1", Name: "Handbags", ParentID: "cat_1"},
		},
		Images: []Image{
			{ID: "img_1", Title: "Bag", Category: "cat_1", SubCategory: strPtr("sub_1"), Views: 3, Clicks: 1},
			{ID: "img_2", Title: "Belt", Category: "cat_1"},
		},
		Stats: Stats{VisitsToday: 10},
	}
}

func TestCategoryIsRoot(t *testing.T) {
	tests := []struct {
		name        string
		parent      string
		root        bool
		childOfCat1 bool
	}{
		{name: "root sentinel", parent: RootParent, root: true, childOfCat1: false},
		{name: "sub-category", parent: "cat_1", root: false, childOfCat1: true},
		{name: "other parent", parent: "cat_2", root: false, childOfCat1: false},
		{name: "empty parent", parent: "", root: false, childOfCat1: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Category{ID: "x", ParentID: tt.parent}
			assert.Equal(t, tt.root, c.IsRoot())
			assert.Equal(t, tt.childOfCat1, c.IsChildOf("cat_1"))
		})
	}
}

func TestImageSubCategory(t *testing.T) {
	img := Image{}
	assert.False(t, img.HasSubCategory())
	assert.Equal(t, "", img.SubCategoryID())

	img.SubCategory = strPtr("sub_1")
	assert.True(t, img.HasSubCategory())
	assert.Equal(t, "sub_1", img.SubCategoryID())
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleState()
	cp := orig.Clone()
	require.Equal(t, orig, cp)

	cp.Categories[0].Name = "Changed"
	cp.Images[0].Clicks = 99
	*cp.Images[0].SubCategory = "sub_9"
	cp.Settings.Password = "other"

	assert.Equal(t, "Accessories", orig.Categories[0].Name)
	assert.Equal(t, 1, orig.Images[0].Clicks)
	assert.Equal(t, "sub_1", *orig.Images[0].SubCategory)
	assert.Equal(t, "admin", orig.Settings.Password)
}

func TestNormalize(t *testing.T) {
	s := &CatalogState{
		Images: []Image{{ID: "a", Views: -4, Clicks: -1, SubCategory: strPtr("")}},
	}
	s.Normalize()

	require.NotNil(t, s.Categories)
	assert.Empty(t, s.Categories)
	assert.Equal(t, 0, s.Images[0].Views)
	assert.Equal(t, 0, s.Images[0].Clicks)
	assert.Nil(t, s.Images[0].SubCategory)
}

// TestJSONShape pins the durable record field names.
func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(sampleState())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.ElementsMatch(t, []string{"settings", "categories", "images", "stats"}, keys(raw))

	settings := raw["settings"].(map[string]any)
	assert.ElementsMatch(t,
		[]string{"whatsapp", "instagram", "telegram", "youtube", "pinterest", "password"},
		keys(settings))

	images := raw["images"].([]any)
	second := images[1].(map[string]any)
	assert.Contains(t, second, "subCategory")
	assert.Nil(t, second["subCategory"])

	cat := raw["categories"].([]any)[1].(map[string]any)
	assert.Equal(t, "cat_1", cat["parentId"])
}

func TestDecodeDefaults(t *testing.T) {
	var s CatalogState
	require.NoError(t, json.Unmarshal([]byte(`{"images":[{"id":"x"}]}`), &s))
	s.Normalize()

	img := s.Images[0]
	assert.Equal(t, "", img.Title)
	assert.Equal(t, 0, img.Views)
	assert.Nil(t, img.SubCategory)
	assert.Equal(t, Settings{}, s.Settings)
}

func TestFindHelpers(t *testing.T) {
	s := sampleState()

	c, ok := s.FindCategory("sub_1")
	require.True(t, ok)
	assert.Equal(t, "Handbags", c.Name)

	_, ok = s.FindCategory("missing")
	assert.False(t, ok)

	assert.Equal(t, 1, s.FindImage("img_2"))
	assert.Equal(t, -1, s.FindImage("missing"))
}

func TestSettingsLinksOrder(t *testing.T) {
	s := Settings{WhatsApp: "w", Instagram: "i", Telegram: "t", YouTube: "y", Pinterest: "p"}
	links := s.Links()
	require.Len(t, links, 5)
	assert.Equal(t, Link{Network: "whatsapp", Value: "w"}, links[0])
	assert.Equal(t, Link{Network: "pinterest", Value: "p"}, links[4])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
