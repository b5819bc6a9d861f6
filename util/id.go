package util

import (
	"crypto/rand"
	"encoding/base64"
)

// ID a unique identifier
type ID []byte

// NewID generate a new ID
func NewID() ID {
	ret := make(ID, 20)
	if _, err := rand.Read(ret); err != nil {
		panic(err)
	}
	return ret
}

// String url-safe representation, used for request ids
func (id ID) String() string {
	return base64.RawURLEncoding.EncodeToString(id)
}
