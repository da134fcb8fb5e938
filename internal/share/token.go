package share

import (
	"crypto/rand"
	"fmt"
)

// IDLength is the length of a share token.
const IDLength = 10

// tokenAlphabet is a url-safe 64-symbol set, sized so one random byte
// masked to 6 bits maps to one character without bias.
const tokenAlphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

// NewID returns a collision-resistant 10-character share token.
func NewID() (string, error) {
	buf := make([]byte, IDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share id: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[b&63]
	}
	return string(buf), nil
}
