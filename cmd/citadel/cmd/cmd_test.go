package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dizitask/citadel/pkg/config"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiBase = "https://api.example/api"

func useMockClient(t *testing.T, client *iceandfire.MockClient) {
	saved := newClient
	newClient = func(config.Settings) (iceandfire.Client, error) { return client, nil }
	t.Cleanup(func() { newClient = saved })
}

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--dotenv", filepath.Join(t.TempDir(), "missing.env")))

	err := rootCmd.Execute()

	return out.String(), err
}

func mockClient() *iceandfire.MockClient {
	return iceandfire.NewMockClient().
		AddHouse(iceandfire.House{
			URL:          apiBase + "/houses/362",
			Name:         "House Stark of Winterfell",
			Words:        "Winter is Coming",
			SwornMembers: []string{apiBase + "/characters/583", apiBase + "/characters/101"},
		}).
		AddCharacter(iceandfire.Character{URL: apiBase + "/characters/583", Name: "Jon Snow", Culture: "Northmen"}).
		Fail(iceandfire.CharacterKey("101"), errors.New("timeout"))
}

func TestHousesCommand(t *testing.T) {
	useMockClient(t, mockClient())

	out, err := execute(t, "houses")
	require.NoError(t, err)
	assert.Contains(t, out, "House Stark of Winterfell")
	assert.Contains(t, out, "Winter is Coming")
}

func TestHouseCommand(t *testing.T) {
	useMockClient(t, mockClient())

	out, err := execute(t, "house", "362")
	require.NoError(t, err)
	assert.Contains(t, out, "Sworn Members")
	assert.Contains(t, out, "Jon Snow")
	assert.Contains(t, out, "Northmen")
}

func TestCharacterCommand(t *testing.T) {
	useMockClient(t, mockClient())

	out, err := execute(t, "character", "583")
	require.NoError(t, err)
	assert.Contains(t, out, "Jon Snow")
}

func TestCommandFailures(t *testing.T) {
	client := mockClient()
	useMockClient(t, client)

	_, err := execute(t, "house", "999")
	assert.EqualError(t, err, view.HouseFailedMessage)

	_, err = execute(t, "character", "abc")
	assert.ErrorContains(t, err, "invalid id")

	client.SetError(errors.New("connection refused"))
	out, err := execute(t, "houses")
	assert.EqualError(t, err, view.HouseListFailedMessage)
	assert.NotContains(t, out, "connection refused")
}

func TestInvalidSettings(t *testing.T) {
	useMockClient(t, mockClient())

	_, err := execute(t, "houses", "--page-size", "500")
	assert.Error(t, err)

	_, err = execute(t, "houses", "--page-size", "50")
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "citadel dev\n", out)
}
