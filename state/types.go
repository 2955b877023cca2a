// SPDX-License-Identifier: MIT
// Package state defines FusionPair, Operation and the operation ledger.
package state

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for ledger operations.
//
// ErrMalformedPair and ErrIndexOutOfRange are caller bugs and are returned as
// errors. The illegal-fusion reasons wrap ErrIllegalFusion; AddOperation
// reports them as a plain false, Check returns them for diagnostics.
var (
	// ErrMalformedPair indicates anyon1 < 0 or anyon1 >= anyon2.
	ErrMalformedPair = errors.New("state: malformed fusion pair")

	// ErrIndexOutOfRange indicates anyon2 is not a valid anyon index.
	ErrIndexOutOfRange = errors.New("state: anyon index out of range")

	// ErrIllegalFusion is the parent of every recoverable rejection reason.
	ErrIllegalFusion = errors.New("state: illegal fusion")

	// ErrAlreadyConsumed indicates an index was already fused away as anyon2.
	ErrAlreadyConsumed = fmt.Errorf("%w: anyon already consumed", ErrIllegalFusion)

	// ErrBusyAtTime indicates an index is already fusing at the same time step.
	ErrBusyAtTime = fmt.Errorf("%w: anyon already fusing at this time", ErrIllegalFusion)

	// ErrNotAdjacent indicates an unconsumed anyon sits between the pair (planarity).
	ErrNotAdjacent = fmt.Errorf("%w: anyons are not adjacent", ErrIllegalFusion)

	// ErrOutOfOrder indicates anyon2 is still used by a logged operation at a
	// later time, so retiring it now would break the time-ordered replay.
	ErrOutOfOrder = fmt.Errorf("%w: anyon is used at a later time", ErrIllegalFusion)
)

// FusionPair is an ordered pair of anyon indices with Anyon1 < Anyon2.
// After fusion the merged anyon is addressed as Anyon1 and the Anyon2 slot
// becomes permanently inactive.
//
// FusionPair is a comparable value type and may be used as a map key.
// The zero value (0,0) is malformed; build pairs with NewFusionPair.
type FusionPair struct {
	anyon1, anyon2 int
}

// NewFusionPair returns the pair (anyon1, anyon2) or ErrMalformedPair
// unless 0 <= anyon1 < anyon2.
func NewFusionPair(anyon1, anyon2 int) (FusionPair, error) {
	if anyon1 < 0 || anyon1 >= anyon2 {
		return FusionPair{}, fmt.Errorf("%w: (%d,%d)", ErrMalformedPair, anyon1, anyon2)
	}

	return FusionPair{anyon1: anyon1, anyon2: anyon2}, nil
}

// MustFusionPair is NewFusionPair that panics on a malformed pair.
func MustFusionPair(anyon1, anyon2 int) FusionPair {
	p, err := NewFusionPair(anyon1, anyon2)
	if err != nil {
		panic(err)
	}

	return p
}

// Anyon1 returns the surviving index.
func (p FusionPair) Anyon1() int { return p.anyon1 }

// Anyon2 returns the consumed index.
func (p FusionPair) Anyon2() int { return p.anyon2 }

// Valid reports whether 0 <= Anyon1 < Anyon2.
func (p FusionPair) Valid() bool { return p.anyon1 >= 0 && p.anyon1 < p.anyon2 }

// Compare orders pairs by Anyon1, then Anyon2.
func (p FusionPair) Compare(q FusionPair) int {
	if c := cmp.Compare(p.anyon1, q.anyon1); c != 0 {
		return c
	}

	return cmp.Compare(p.anyon2, q.anyon2)
}

// Less reports whether p sorts before q.
func (p FusionPair) Less(q FusionPair) bool { return p.Compare(q) < 0 }

// String renders "(a1,a2)".
func (p FusionPair) String() string { return fmt.Sprintf("(%d,%d)", p.anyon1, p.anyon2) }

// SortPairs sorts pairs in place by Anyon1, then Anyon2.
func SortPairs(pairs []FusionPair) {
	slices.SortFunc(pairs, FusionPair.Compare)
}

// Operation is a fusion scheduled at a logical time step.
// Operations sharing a Time are parallel, non-interacting fusions.
type Operation struct {
	Time uint32
	Pair FusionPair
}

// String renders "t=1 (0,1)".
func (o Operation) String() string { return fmt.Sprintf("t=%d %s", o.Time, o.Pair) }

// isIllegal reports whether err is a recoverable illegal-fusion reason.
func isIllegal(err error) bool { return errors.Is(err, ErrIllegalFusion) }
