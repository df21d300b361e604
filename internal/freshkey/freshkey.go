// Package freshkey mints collision-free graph keys for optimize.MergeSync,
// which must invent a new name for a key of b that collides with an
// existing key of a. It wraps github.com/google/uuid rather than a
// hand-rolled counter so names are fresh across an entire process, not
// just within one merge call.
package freshkey

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/flowdag/graph"
)

// Generator mints fresh Keys derived from a base name. The zero value is
// ready to use (it generates random UUIDs); NewSeeded returns one with
// deterministic output for tests.
type Generator struct {
	next func() uuid.UUID
}

// NewGenerator returns a Generator backed by crypto-random UUIDs.
func NewGenerator() *Generator {
	return &Generator{next: uuid.New}
}

// NewSeeded returns a Generator producing a deterministic sequence of
// UUIDs derived from seed, for reproducible test fixtures. MergeSync
// itself uses NewGenerator.
func NewSeeded(seed string) *Generator {
	counter := 0
	return &Generator{
		next: func() uuid.UUID {
			counter++
			return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d", seed, counter)))
		},
	}
}

// Fresh returns a new Key of the form "<base>~<uuid>", guaranteed not to
// collide with any key already present in existing (and, modulo UUID
// collision, not to collide with any other key minted by g).
func (g *Generator) Fresh(base graph.Key, existing *graph.Graph) graph.Key {
	gen := g.next
	if gen == nil {
		gen = uuid.New
	}
	for {
		candidate := graph.Key(fmt.Sprintf("%s~%s", base, gen().String()))
		if !existing.Has(candidate) {
			return candidate
		}
	}
}
