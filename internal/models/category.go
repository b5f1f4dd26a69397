package models

import (
	"strings"
	"unicode"
)

// CategoryKind identifies one of the fixed expense categories, or the open
// fallback for anything else.
type CategoryKind int

const (
	CategoryFood CategoryKind = iota
	CategoryTravel
	CategoryFun
	CategoryMedical
	CategoryPersonal
	CategoryOther
)

// Category is the classification tag of an expense record. The fixed set is
// {Food, Travel, Fun, Medical, Personal}; any other text is carried verbatim
// (capitalized) in the Other case. Category is comparable and safe to use as
// a map key.
type Category struct {
	Kind CategoryKind
	// Other holds the free-text name when Kind is CategoryOther, empty otherwise.
	Other string
}

// ParseCategory maps arbitrary text onto a Category. Matching against the
// fixed set is case-insensitive; non-matching text becomes an Other category
// carrying the capitalized input. This never fails.
func ParseCategory(text string) Category {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "food":
		return Category{Kind: CategoryFood}
	case "travel":
		return Category{Kind: CategoryTravel}
	case "fun":
		return Category{Kind: CategoryFun}
	case "medical":
		return Category{Kind: CategoryMedical}
	case "personal":
		return Category{Kind: CategoryPersonal}
	default:
		return Category{Kind: CategoryOther, Other: Capitalize(strings.TrimSpace(text))}
	}
}

// String returns the display name of the category, which is also its
// on-disk form.
func (c Category) String() string {
	switch c.Kind {
	case CategoryFood:
		return "Food"
	case CategoryTravel:
		return "Travel"
	case CategoryFun:
		return "Fun"
	case CategoryMedical:
		return "Medical"
	case CategoryPersonal:
		return "Personal"
	case CategoryOther:
		return c.Other
	default:
		return c.Other
	}
}

// KnownCategoryNames lists the display names of the fixed category set, in
// declaration order.
func KnownCategoryNames() []string {
	return []string{"Food", "Travel", "Fun", "Medical", "Personal"}
}

// Capitalize upper-cases the first rune of a string, leaving the rest
// untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
