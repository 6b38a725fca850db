package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SessionToken is the opaque identifier the server binds to one CAPTCHA.
// The client never inspects it; it is echoed back with the answer.
type SessionToken string

// String returns the token text.
func (t SessionToken) String() string {
	return string(t)
}

// ChallengeEnvelope is a challenge as issued by the server, before the
// image payload has been decoded.
type ChallengeEnvelope struct {
	// SessionID is the token that must accompany the answer.
	SessionID SessionToken

	// ImageData is the base64-encoded image, optionally as a data URL.
	ImageData string
}

// Challenge is a decoded CAPTCHA ready to be shown to the user.
type Challenge struct {
	// SessionID is the token that must accompany the answer.
	SessionID SessionToken

	// Image holds the raw image bytes (PNG in practice).
	Image []byte
}

// Decode turns the envelope into a displayable challenge.
func (e ChallengeEnvelope) Decode() (Challenge, error) {
	img, err := DecodeChallengeImage(e.ImageData)
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{SessionID: e.SessionID, Image: img}, nil
}

// DecodeChallengeImage decodes a base64 image payload. Both a bare base64
// string and a "data:image/...;base64," URL are accepted.
func DecodeChallengeImage(encoded string) ([]byte, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("%w: malformed data url", ErrInvalidImage)
		}
		payload = payload[idx+1:]
	}
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some servers strip padding.
		img, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	return img, nil
}
