// Package ids generates the opaque identifiers given to list entries
// (stakeholders, tree nodes, chain items, logframe rows, indicators).
package ids

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Styles accepted by NewGenerator.
const (
	StyleUUID   = "uuid"
	StyleNanoID = "nanoid"
)

const (
	nanoAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	nanoSize     = 12
)

// Generator produces unique identifiers.
type Generator interface {
	New() string
}

// UUID generates random (v4) UUID strings.
type UUID struct{}

func (UUID) New() string { return uuid.NewString() }

// NanoID generates short URL-safe ids. If the random source fails it falls
// back to a UUID so callers never get an empty id.
type NanoID struct{}

func (NanoID) New() string {
	id, err := gonanoid.Generate(nanoAlphabet, nanoSize)
	if err != nil {
		return uuid.NewString()
	}
	return id
}

// NewGenerator returns the generator for a configured style. An empty style
// means UUID.
func NewGenerator(style string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "", StyleUUID:
		return UUID{}, nil
	case StyleNanoID:
		return NanoID{}, nil
	default:
		return nil, fmt.Errorf("unknown id style %q (want %q or %q)", style, StyleUUID, StyleNanoID)
	}
}

// Entry is a list item that carries its own id.
type Entry interface {
	EntryID() string
	SetEntryID(string)
}

// Fill assigns a new id to every item whose id is blank. Existing ids are
// kept so edits do not churn identifiers.
func Fill[T any, P interface {
	*T
	Entry
}](items []T, g Generator) {
	for i := range items {
		p := P(&items[i])
		if strings.TrimSpace(p.EntryID()) == "" {
			p.SetEntryID(g.New())
		}
	}
}
