package display

import (
	"github.com/dizitask/citadel/pkg/iceandfire"
)

// Link is an in-app navigation link.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Field is one labelled line of a detail view. When Links is non-empty the
// value is rendered as those links instead of Value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Links []Link `json:"links,omitempty"`
}

func HouseFields(h *iceandfire.House) []Field {
	return []Field{
		{Label: "Region", Value: Value(h.Region, Unknown)},
		{Label: "Coat of Arms", Value: Value(h.CoatOfArms, Unknown)},
		{Label: "Words", Value: Words(h)},
		{Label: "Titles", Value: List(h.Titles, Unknown)},
		{Label: "Seats", Value: Seats(h)},
		characterRef("Current Lord", h.CurrentLord),
		characterRef("Heir", h.Heir),
		houseRefs("Overlord", []string{h.Overlord}),
		{Label: "Founded", Value: Value(h.Founded, Unknown)},
		characterRef("Founder", h.Founder),
		{Label: "Died Out", Value: Value(h.DiedOut, Unknown)},
		{Label: "Ancestral Weapons", Value: List(h.AncestralWeapons, Unknown)},
		houseRefs("Cadet Branches", h.CadetBranches),
	}
}

func CharacterFields(c *iceandfire.Character) []Field {
	return []Field{
		{Label: "Gender", Value: Value(c.Gender, Unknown)},
		{Label: "Culture", Value: Value(c.Culture, Unknown)},
		{Label: "Born", Value: Value(c.Born, Unknown)},
		{Label: "Died", Value: Value(c.Died, Unknown)},
		{Label: "Titles", Value: List(c.Titles, Unknown)},
		{Label: "Aliases", Value: List(c.Aliases, Unknown)},
		characterRef("Father", c.Father),
		characterRef("Mother", c.Mother),
		characterRef("Spouse", c.Spouse),
		houseRefs("Allegiances", c.Allegiances),
		{Label: "Books", Value: List(refNames("Book", c.Books), Unknown)},
		{Label: "POV Books", Value: List(refNames("Book", c.PovBooks), Unknown)},
		{Label: "TV Series", Value: List(c.TvSeries, Unknown)},
		{Label: "Played By", Value: List(c.PlayedBy, Unknown)},
	}
}

// MemberSummary is the short form of a sworn member shown on a house page.
type MemberSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Culture string `json:"culture"`
	Born    string `json:"born"`
	Died    string `json:"died"`
	Href    string `json:"href"`
}

func Member(c *iceandfire.Character) MemberSummary {
	return MemberSummary{
		ID:      c.ID(),
		Name:    CharacterName(c),
		Culture: Value(c.Culture, Unknown),
		Born:    Value(c.Born, Unknown),
		Died:    Value(c.Died, Unknown),
		Href:    CharacterLink(c.URL),
	}
}

// HouseRow is one row of the house list.
type HouseRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Words  string `json:"words"`
	Seats  string `json:"seats"`
	Href   string `json:"href"`
	Anchor string `json:"anchor"`
}

func Row(h *iceandfire.House) HouseRow {
	return HouseRow{
		ID:     h.ID(),
		Name:   Value(h.Name, Unknown),
		Region: Value(h.Region, Unknown),
		Words:  Words(h),
		Seats:  Seats(h),
		Href:   HouseLink(h.URL),
		Anchor: Anchor(h.Name),
	}
}

func characterRef(label, ref string) Field {
	f := Field{Label: label, Value: Unknown}
	if id := iceandfire.EntityID(ref); id != "" {
		f.Value = "Character " + id
		f.Links = []Link{{Text: f.Value, Href: CharacterLink(ref)}}
	}

	return f
}

func houseRefs(label string, refs []string) Field {
	f := Field{Label: label, Value: Unknown}
	for _, ref := range refs {
		if id := iceandfire.EntityID(ref); id != "" {
			f.Links = append(f.Links, Link{Text: "House " + id, Href: HouseLink(ref)})
		}
	}

	if len(f.Links) > 0 {
		texts := make([]string, len(f.Links))
		for i, l := range f.Links {
			texts[i] = l.Text
		}
		f.Value = List(texts, Unknown)
	}

	return f
}

func refNames(kind string, refs []string) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id := iceandfire.EntityID(ref); id != "" {
			names = append(names, kind+" "+id)
		}
	}

	return names
}
