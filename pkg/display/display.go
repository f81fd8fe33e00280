// Package display turns API records into the strings and links the viewers
// show. Blank values are never rendered as blanks.
package display

import (
	"strings"

	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/gosimple/slug"
)

const (
	Unknown = "Unknown"
	NoWords = "No words"
)

// Value returns s, or empty when s is blank.
func Value(s, empty string) string {
	if strings.TrimSpace(s) == "" {
		return empty
	}

	return s
}

// List joins the non-blank items with ", ", or returns empty when none remain.
func List(items []string, empty string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}

	if len(kept) == 0 {
		return empty
	}

	return strings.Join(kept, ", ")
}

func Words(h *iceandfire.House) string {
	return Value(h.Words, NoWords)
}

func Seats(h *iceandfire.House) string {
	return List(h.Seats, Unknown)
}

// CharacterName falls back to the first alias since many characters in the
// API are only known by one.
func CharacterName(c *iceandfire.Character) string {
	if strings.TrimSpace(c.Name) != "" {
		return c.Name
	}

	return List(firstNonBlank(c.Aliases), Unknown)
}

func firstNonBlank(items []string) []string {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return []string{item}
		}
	}

	return nil
}

// HouseLink is the in-app route for a house reference URL.
func HouseLink(ref string) string {
	return "/houses/" + iceandfire.EntityID(ref)
}

// CharacterLink is the in-app route for a character reference URL.
func CharacterLink(ref string) string {
	return "/character/" + iceandfire.EntityID(ref)
}

// Anchor is the element id of a house row on the house list.
func Anchor(name string) string {
	s := slug.Make(name)
	if strings.HasPrefix(s, "house-") {
		return s
	}

	return "house-" + s
}
