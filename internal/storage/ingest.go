package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrImageDecode marks a payload that is empty or not valid base64. Nothing
// is ever written to the content store for such a payload.
var ErrImageDecode = errors.New("invalid image payload")

// DecodePayload decodes a base64 image payload. A data-URL style prefix
// ("data:image/png;base64,...") is tolerated: everything up to and including
// the first comma is discarded. Decoding is strict; malformed or truncated
// base64 fails rather than producing partial bytes.
func DecodePayload(payload string) ([]byte, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrImageDecode)
	}

	if idx := strings.Index(payload, ","); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.Strict().DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrImageDecode)
	}
	return data, nil
}

// NewImageName returns a collision-resistant filename for a stored image.
// It is never derived from client input.
func NewImageName() string {
	return uuid.NewString() + ".png"
}
