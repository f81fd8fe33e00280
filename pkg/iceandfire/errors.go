package iceandfire

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrAPI marks any non-2xx answer from the API.
	ErrAPI = errors.New("ice and fire api")

	// ErrNotFound is joined with ErrAPI when the API answers 404.
	ErrNotFound = errors.New("not found")

	// ErrMalformedPayload marks a 2xx answer whose body is not the expected shape.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrForeignReference marks a reference URL that points outside the API.
	ErrForeignReference = errors.New("reference outside api")
)

const maxErrorBodyLen = 200

// ToErrorFromResponse turns a non-2xx response into an error joined with
// ErrAPI (and ErrNotFound for a 404).
func ToErrorFromResponse(resp *resty.Response) error {
	status := resp.StatusCode()
	detail := strings.TrimSpace(string(resp.Body()))
	if len(detail) > maxErrorBodyLen {
		detail = detail[:maxErrorBodyLen] + "..."
	}

	err := fmt.Errorf("(HTTP Status: %d)- %s %s: %s", status, resp.Request.Method, resp.Request.URL, detail)
	if status == http.StatusNotFound {
		return errors.Join(ErrAPI, ErrNotFound, err)
	}

	return errors.Join(ErrAPI, err)
}

func malformed(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedPayload, what, err)
}
