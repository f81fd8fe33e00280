package decoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrTrailingData = errors.New("trailing data after json value")

// Decode decodes exactly one JSON value from body into a T. Unknown fields are
// tolerated, anything after the value is not.
func Decode[T any](body []byte) (T, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("failed to decode %T: %w", out, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return out, ErrTrailingData
	}

	return out, nil
}
