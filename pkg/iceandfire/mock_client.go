package iceandfire

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// MockClient is an in-memory Client for tests. Resources are addressed by keys
// of the form "houses/{id}", "characters/{id}" and "houses" for the list.
type MockClient struct {
	mu         sync.Mutex
	err        error
	houseOrder []string
	houses     map[string]House
	characters map[string]Character
	errs       map[string]error
	delays     map[string]time.Duration
	calls      []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		houses:     make(map[string]House),
		characters: make(map[string]Character),
		errs:       make(map[string]error),
		delays:     make(map[string]time.Duration),
	}
}

func HouseKey(id string) string     { return "houses/" + id }
func CharacterKey(id string) string { return "characters/" + id }

const HouseListKey = "houses"

// SetError makes every call fail with err.
func (c *MockClient) SetError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *MockClient) AddHouse(h House) *MockClient {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := h.ID()
	if _, ok := c.houses[id]; !ok {
		c.houseOrder = append(c.houseOrder, id)
	}
	c.houses[id] = h

	return c
}

func (c *MockClient) AddCharacter(ch Character) *MockClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.characters[ch.ID()] = ch

	return c
}

// Fail makes calls for key fail with err.
func (c *MockClient) Fail(key string, err error) *MockClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[key] = err

	return c
}

// Delay holds calls for key for d, or until their context is done.
func (c *MockClient) Delay(key string, d time.Duration) *MockClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delays[key] = d

	return c
}

// Calls returns the keys requested so far, in request order.
func (c *MockClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.calls...)
}

// CallCount counts requested keys with the given prefix.
func (c *MockClient) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls() {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}

	return count
}

func (c *MockClient) ListHouses(ctx context.Context, page, pageSize int) ([]House, error) {
	if err := c.begin(ctx, HouseListKey); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := (page - 1) * pageSize
	if start < 0 || start >= len(c.houseOrder) {
		return []House{}, nil
	}

	end := min(start+pageSize, len(c.houseOrder))
	houses := make([]House, 0, end-start)
	for _, id := range c.houseOrder[start:end] {
		houses = append(houses, c.houses[id])
	}

	return houses, nil
}

func (c *MockClient) GetHouse(ctx context.Context, id string) (*House, error) {
	key := HouseKey(id)
	if err := c.begin(ctx, key); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.houses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrAPI, ErrNotFound, key)
	}

	return &h, nil
}

func (c *MockClient) GetCharacter(ctx context.Context, id string) (*Character, error) {
	key := CharacterKey(id)
	if err := c.begin(ctx, key); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ch, ok := c.characters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrAPI, ErrNotFound, key)
	}

	return &ch, nil
}

func (c *MockClient) GetCharacterByURL(ctx context.Context, characterURL string) (*Character, error) {
	return c.GetCharacter(ctx, EntityID(characterURL))
}

func (c *MockClient) begin(ctx context.Context, key string) error {
	c.mu.Lock()
	c.calls = append(c.calls, key)
	delay := c.delays[key]
	err := c.err
	if keyErr, ok := c.errs[key]; ok {
		err = keyErr
	}
	c.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return err
}
