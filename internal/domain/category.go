package domain

import (
	"strings"
	"unicode/utf8"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate checks the fields a user supplies when creating or editing a category.
func (c Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if utf8.RuneCountInString(name) < MinCategoryNameLength {
		return ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(c.Color) == "" {
		return ErrColorRequired
	}
	if !IsPresetColor(c.Color) {
		return ErrInvalidColor
	}
	return nil
}

// FindCategory returns the category with the given id. The boolean is false
// when no category matches, which is expected for transactions and budgets
// whose category has since been deleted.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIndex is a read-only id lookup built once per snapshot.
type CategoryIndex map[string]Category

// IndexCategories builds a CategoryIndex. With duplicate ids the first one wins,
// matching FindCategory.
func IndexCategories(categories []Category) CategoryIndex {
	idx := make(CategoryIndex, len(categories))
	for _, c := range categories {
		if _, ok := idx[c.ID]; !ok {
			idx[c.ID] = c
		}
	}
	return idx
}

// Find has the same not-found semantics as FindCategory.
func (idx CategoryIndex) Find(id string) (Category, bool) {
	c, ok := idx[id]
	return c, ok
}

// Display names used when a referenced category no longer exists
const (
	UnknownCategoryName = "Unknown"
	UncategorizedName   = "Uncategorized"
)

// IsPresetColor reports whether color is one of PresetColors, ignoring case.
func IsPresetColor(color string) bool {
	color = strings.TrimSpace(color)
	for _, preset := range PresetColors {
		if strings.EqualFold(preset, color) {
			return true
		}
	}
	return false
}

// PresetColors are the colors a category may use.
var PresetColors = []string{
	"#A78BFA", // purple
	"#60A5FA", // blue
	"#34D399", // green
	"#FBBF24", // yellow
	"#F87171", // red
	"#FB923C", // orange
	"#38BDF8", // sky
	"#4ADE80", // lime
	"#A3E635", // light green
	"#E879F9", // pink
}

type CategoryRepository interface {
	Snapshot() []Category
	GetByID(id string) (Category, error)
	Create(category Category) (Category, error)
	Update(category Category) (Category, error)
	Delete(id string) error
}
