package token

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Binary decodes the payload of a binary literal. enc is the literal's
// prefix: "b64" for standard base64 (padding required), "h" or "hex" for
// hex digits (even count required). Both hex spellings are accepted in
// either syntax.
func Binary(enc, payload string) ([]byte, error) {
	switch enc {
	case "b64":
		d, err := base64.StdEncoding.Strict().DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadBase64, payload)
		}
		return d, nil
	case "h", "hex":
		if len(payload)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrOddHexDigits, payload)
		}
		d, err := hex.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHex, payload)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown binary prefix %q", ErrBadHex, enc)
	}
}
