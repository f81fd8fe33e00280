package display

import (
	"testing"

	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAndList(t *testing.T) {
	assert.Equal(t, "Unknown", Value("", Unknown))
	assert.Equal(t, "Unknown", Value("   ", Unknown))
	assert.Equal(t, "The North", Value("The North", Unknown))

	assert.Equal(t, "Unknown", List(nil, Unknown))
	assert.Equal(t, "Unknown", List([]string{"", " "}, Unknown))
	assert.Equal(t, "Winterfell, Castle Black", List([]string{"Winterfell", "", "Castle Black"}, Unknown))
}

func TestHouseHelpers(t *testing.T) {
	h := &iceandfire.House{URL: "https://api.example/api/houses/362", Name: "House Stark of Winterfell", Seats: []string{""}}

	assert.Equal(t, "No words", Words(h))
	assert.Equal(t, "Unknown", Seats(h))
	assert.Equal(t, "/houses/362", HouseLink(h.URL))
	assert.Equal(t, "house-stark-of-winterfell", Anchor(h.Name))
	assert.Equal(t, "house-brune-of-the-dyre-den", Anchor("Brune of the Dyre Den"))

	row := Row(h)
	assert.Equal(t, "362", row.ID)
	assert.Equal(t, "Unknown", row.Region)
	assert.Equal(t, "/houses/362", row.Href)
}

func TestCharacterName(t *testing.T) {
	assert.Equal(t, "Jon Snow", CharacterName(&iceandfire.Character{Name: "Jon Snow"}))
	assert.Equal(t, "The Daughter of the Dusk", CharacterName(&iceandfire.Character{Aliases: []string{"", "The Daughter of the Dusk"}}))
	assert.Equal(t, "Unknown", CharacterName(&iceandfire.Character{Aliases: []string{""}}))
}

func TestHouseFieldsLinks(t *testing.T) {
	h := &iceandfire.House{
		URL:           "https://api.example/api/houses/362",
		CurrentLord:   "https://api.example/api/characters/1303",
		CadetBranches: []string{"https://api.example/api/houses/170", ""},
	}

	fields := HouseFields(h)
	byLabel := map[string]Field{}
	for _, f := range fields {
		byLabel[f.Label] = f
	}

	lord := byLabel["Current Lord"]
	require.Len(t, lord.Links, 1)
	assert.Equal(t, "/character/1303", lord.Links[0].Href)

	assert.Equal(t, "Unknown", byLabel["Heir"].Value)
	assert.Empty(t, byLabel["Overlord"].Links)
	assert.Equal(t, "House 170", byLabel["Cadet Branches"].Value)
}

func TestMemberAndCharacterFields(t *testing.T) {
	c := &iceandfire.Character{
		URL:     "https://api.example/api/characters/583",
		Name:    "Jon Snow",
		Culture: "Northmen",
		Books:   []string{"https://api.example/api/books/5"},
	}

	m := Member(c)
	assert.Equal(t, "583", m.ID)
	assert.Equal(t, "/character/583", m.Href)
	assert.Equal(t, "Unknown", m.Born)

	fields := CharacterFields(c)
	assert.Equal(t, "Northmen", fields[1].Value)
	assert.Equal(t, "Book 5", fields[10].Value)
}
