// Package program holds the pieces of the presale program that sit between
// the host runtime and the contract handlers: the program identity, the
// per-call invocation context, account descriptors and the program log.
package program

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// IDSize is the length in bytes of a program or account identifier.
const IDSize = 32

// ErrInvalidID is returned when text does not decode to a 32 byte identifier.
var ErrInvalidID = errors.New("invalid identifier")

// ID is a fixed-size identifier. Its textual form is base58.
type ID [IDSize]byte

// ProgramID names the deployed instance of this program.
var ProgramID = MustParseID("FrLwXqLQ1oQ5feJTx7qj9nJZjiLxtsi7pEMaWir7tvcB")

// ParseID decodes a base58 identifier.
func ParseID(s string) (ID, error) {
	var id ID
	raw, err := base58.Decode(s)
	if err != nil {
		return id, fmt.Errorf("%w %q: %v", ErrInvalidID, s, err)
	}
	if len(raw) != IDSize {
		return id, fmt.Errorf("%w %q: decoded to %d bytes, want %d", ErrInvalidID, s, len(raw), IDSize)
	}
	copy(id[:], raw)
	return id, nil
}

// MustParseID is like ParseID but panics on error.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return base58.Encode(id[:])
}

// IsZero reports whether every byte of id is zero.
func (id ID) IsZero() bool {
	return id == ID{}
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
