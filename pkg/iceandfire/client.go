package iceandfire

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/decoder"
	"github.com/go-resty/resty/v2"
)

// Client is the read-only view of the Ice and Fire API that citadel needs.
type Client interface {
	ListHouses(ctx context.Context, page, pageSize int) ([]House, error)
	GetHouse(ctx context.Context, id string) (*House, error)
	GetCharacter(ctx context.Context, id string) (*Character, error)
	GetCharacterByURL(ctx context.Context, characterURL string) (*Character, error)
}

// RestClient talks to the API over HTTP. It holds no per-request state and is
// safe for concurrent use.
type RestClient struct {
	client  *resty.Client
	baseURL *url.URL
}

func NewRestClient(baseURL string, timeout time.Duration) (*RestClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("api url %q is not absolute", baseURL)
	}

	client := resty.New().
		SetBaseURL(u.String()).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "citadel")

	return &RestClient{client: client, baseURL: u}, nil
}

func (c *RestClient) ListHouses(ctx context.Context, page, pageSize int) ([]House, error) {
	body, err := c.get(c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"pageSize": strconv.Itoa(pageSize),
		}), "/houses")
	if err != nil {
		return nil, err
	}

	houses, err := decoder.Decode[[]House](body)
	if err != nil {
		return nil, malformed("house list", err)
	}

	for i := range houses {
		if err := houses[i].Validate(); err != nil {
			return nil, malformed("house list", err)
		}
	}

	return houses, nil
}

func (c *RestClient) GetHouse(ctx context.Context, id string) (*House, error) {
	body, err := c.get(c.client.R().
		SetContext(ctx).
		SetPathParam("id", id), "/houses/{id}")
	if err != nil {
		return nil, err
	}

	house, err := decoder.Decode[House](body)
	if err != nil {
		return nil, malformed("house "+id, err)
	}

	if err := house.Validate(); err != nil {
		return nil, malformed("house "+id, err)
	}

	return &house, nil
}

func (c *RestClient) GetCharacter(ctx context.Context, id string) (*Character, error) {
	return c.getCharacter(c.client.R().
		SetContext(ctx).
		SetPathParam("id", id), "/characters/{id}", "character "+id)
}

// GetCharacterByURL fetches a character through a reference URL taken from
// another payload. The URL must point into the configured API.
func (c *RestClient) GetCharacterByURL(ctx context.Context, characterURL string) (*Character, error) {
	u, err := url.Parse(characterURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrForeignReference, characterURL, err)
	}

	if u.Scheme != c.baseURL.Scheme || u.Host != c.baseURL.Host {
		return nil, fmt.Errorf("%w: %q", ErrForeignReference, characterURL)
	}

	id := EntityID(characterURL)
	if id == "" {
		return nil, malformed("character reference", fmt.Errorf("%q has no id", characterURL))
	}

	return c.getCharacter(c.client.R().SetContext(ctx), u.String(), "character "+id)
}

func (c *RestClient) getCharacter(req *resty.Request, path, what string) (*Character, error) {
	body, err := c.get(req, path)
	if err != nil {
		return nil, err
	}

	character, err := decoder.Decode[Character](body)
	if err != nil {
		return nil, malformed(what, err)
	}

	if err := character.Validate(); err != nil {
		return nil, malformed(what, err)
	}

	return &character, nil
}

func (c *RestClient) get(req *resty.Request, path string) ([]byte, error) {
	start := time.Now()
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	clog.UsingCtx(clog.ClientCtx).WithFields(log.Fields{
		"url":     resp.Request.URL,
		"status":  resp.StatusCode(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("api request")

	if resp.IsError() {
		return nil, ToErrorFromResponse(resp)
	}

	return resp.Body(), nil
}
