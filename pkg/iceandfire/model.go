package iceandfire

import (
	"fmt"
)

// House is a house record as served by /houses and /houses/{id}.
type House struct {
	URL              string   `json:"url"`
	Name             string   `json:"name"`
	Region           string   `json:"region"`
	CoatOfArms       string   `json:"coatOfArms"`
	Words            string   `json:"words"`
	Titles           []string `json:"titles"`
	Seats            []string `json:"seats"`
	CurrentLord      string   `json:"currentLord"`
	Heir             string   `json:"heir"`
	Overlord         string   `json:"overlord"`
	Founded          string   `json:"founded"`
	Founder          string   `json:"founder"`
	DiedOut          string   `json:"diedOut"`
	AncestralWeapons []string `json:"ancestralWeapons"`
	CadetBranches    []string `json:"cadetBranches"`
	SwornMembers     []string `json:"swornMembers"`
}

// ID is the house's local id, the last segment of its URL.
func (h *House) ID() string {
	return EntityID(h.URL)
}

// Validate checks the fields the rest of citadel relies on. Sworn member
// references are checked when they are fetched.
func (h *House) Validate() error {
	if h.URL == "" {
		return fmt.Errorf("missing url")
	}

	if h.ID() == "" {
		return fmt.Errorf("url %q has no id", h.URL)
	}

	return nil
}

// Character is a character record as served by /characters/{id}.
type Character struct {
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender"`
	Culture     string   `json:"culture"`
	Born        string   `json:"born"`
	Died        string   `json:"died"`
	Titles      []string `json:"titles"`
	Aliases     []string `json:"aliases"`
	Father      string   `json:"father"`
	Mother      string   `json:"mother"`
	Spouse      string   `json:"spouse"`
	Allegiances []string `json:"allegiances"`
	Books       []string `json:"books"`
	PovBooks    []string `json:"povBooks"`
	TvSeries    []string `json:"tvSeries"`
	PlayedBy    []string `json:"playedBy"`
}

func (c *Character) ID() string {
	return EntityID(c.URL)
}

func (c *Character) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("missing url")
	}

	if c.ID() == "" {
		return fmt.Errorf("url %q has no id", c.URL)
	}

	return nil
}
