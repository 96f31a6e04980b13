package rng

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

// NumSubstreams and StateWords are the precomputed table's dimensions
// (spec.md §6: "raw little-endian 32-bit unsigned integers, 10 000 × 624").
const (
	NumSubstreams = 10000
	StateWords    = 624
)

// SubstreamTable holds a table of precomputed MT19937 states, one per
// substream index, loaded from the wire format of spec.md §6. The
// filesystem layout backing this table is out of scope for this module
// (spec.md §1); LoadSubstreamTable accepts any io.Reader.
type SubstreamTable struct {
	rows [][StateWords]uint32
}

// LoadSubstreamTable reads a NumSubstreams x StateWords row-major table of
// little-endian uint32 values.
func LoadSubstreamTable(r io.Reader) (*SubstreamTable, error) {
	table := &SubstreamTable{rows: make([][StateWords]uint32, NumSubstreams)}
	buf := make([]byte, StateWords*4)
	for i := 0; i < NumSubstreams; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("rng: reading substream row %d: %w", i, err)
		}
		for j := 0; j < StateWords; j++ {
			table.rows[i][j] = binary.LittleEndian.Uint32(buf[j*4:])
		}
	}
	return table, nil
}

// StateAt returns the literal state vector at the given table index. Two
// requests for the same index return bit-identical state vectors, so RNGs
// built from them are observationally identical (spec.md §4.2):
// de-duplication by raw state is a valid sharing strategy downstream, but
// streams that are assigned the same index will draw the *same*
// interleaved sequence (spec.md §9) -- avoid sharing indices across streams
// unless that is intentional.
func (t *SubstreamTable) StateAt(index int) ([StateWords]uint32, error) {
	if index < 0 || index >= len(t.rows) {
		return [StateWords]uint32{}, fmt.Errorf("rng: substream index %d out of range [0,%d)", index, len(t.rows))
	}
	return t.rows[index], nil
}

// NewRNG builds a *rand.Rand seeded from the substream at the given table
// index.
func (t *SubstreamTable) NewRNG(index int) (*rand.Rand, error) {
	state, err := t.StateAt(index)
	if err != nil {
		return nil, err
	}
	return rand.New(NewMT19937FromState(state)), nil
}

// Len returns the number of substreams in the table.
func (t *SubstreamTable) Len() int { return len(t.rows) }
