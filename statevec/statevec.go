// Package statevec holds the normalised amplitude vector of a register of qubits.
//
// It depends on nothing in the fusion engine beyond a qubit count: the
// fusion packages decide how many qubits a tree encodes, statevec stores a
// 2^q-dimensional complex state for them.
package statevec

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxQubits bounds the register so the vector stays allocatable.
const MaxQubits = 24

var (
	// ErrNegativeQubits indicates a negative qubit count.
	ErrNegativeQubits = errors.New("statevec: negative qubit count")

	// ErrTooManyQubits indicates a qubit count above MaxQubits.
	ErrTooManyQubits = errors.New("statevec: too many qubits")

	// ErrDimensionMismatch indicates amplitudes whose length is not 2^qubits.
	ErrDimensionMismatch = errors.New("statevec: dimension mismatch")

	// ErrZeroNorm indicates amplitudes that cannot be normalised.
	ErrZeroNorm = errors.New("statevec: zero norm")
)

// StateVec is a unit-norm vector of 2^qubits complex amplitudes.
type StateVec struct {
	qubits int
	amps   []complex128
}

// New copies amps, divides every component by the Euclidean norm and returns
// the vector. A nil amps yields the basis state |0…0⟩.
//
// Errors: ErrNegativeQubits, ErrTooManyQubits, ErrDimensionMismatch, ErrZeroNorm.
func New(qubits int, amps []complex128) (*StateVec, error) {
	size, err := dimension(qubits)
	if err != nil {
		return nil, err
	}
	if amps == nil {
		return ground(qubits, size), nil
	}
	if len(amps) != size {
		return nil, fmt.Errorf("%w: %d amplitudes for %d qubits (want %d)",
			ErrDimensionMismatch, len(amps), qubits, size)
	}

	v := &StateVec{qubits: qubits, amps: make([]complex128, size)}
	copy(v.amps, amps)
	if err := v.normalize(); err != nil {
		return nil, err
	}

	return v, nil
}

// ForQubits returns |0…0⟩ on the given number of qubits.
func ForQubits(qubits int) (*StateVec, error) { return New(qubits, nil) }

// Resize discards the amplitudes and resets v to |0…0⟩ on qubits.
func (v *StateVec) Resize(qubits int) error {
	size, err := dimension(qubits)
	if err != nil {
		return err
	}
	*v = *ground(qubits, size)

	return nil
}

// Qubits returns the register width.
func (v *StateVec) Qubits() int { return v.qubits }

// Len returns 2^Qubits.
func (v *StateVec) Len() int { return len(v.amps) }

// At returns amplitude i, or 0 outside [0, Len).
func (v *StateVec) At(i int) complex128 {
	if i < 0 || i >= len(v.amps) {
		return 0
	}

	return v.amps[i]
}

// Amplitudes returns a copy of the amplitudes.
func (v *StateVec) Amplitudes() []complex128 {
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// Norm returns the Euclidean norm; 1 up to rounding.
func (v *StateVec) Norm() float64 { return norm(v.amps) }

// String lists one "re + imi" amplitude per line.
func (v *StateVec) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, a := range v.amps {
		fmt.Fprintf(&sb, "\t%g + %gi\n", real(a), imag(a))
	}
	sb.WriteString("]")

	return sb.String()
}

func (v *StateVec) normalize() error {
	n := norm(v.amps)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: norm %g", ErrZeroNorm, n)
	}
	for i := range v.amps {
		v.amps[i] /= complex(n, 0)
	}

	return nil
}

// norm scales by the largest modulus so squares cannot overflow.
func norm(amps []complex128) float64 {
	var scale float64
	for _, a := range amps {
		scale = math.Max(scale, math.Max(math.Abs(real(a)), math.Abs(imag(a))))
	}
	if scale == 0 {
		return 0
	}
	var sum float64
	for _, a := range amps {
		re, im := real(a)/scale, imag(a)/scale
		sum += re*re + im*im
	}

	return scale * math.Sqrt(sum)
}

func dimension(qubits int) (int, error) {
	switch {
	case qubits < 0:
		return 0, fmt.Errorf("%w: %d", ErrNegativeQubits, qubits)
	case qubits > MaxQubits:
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, qubits, MaxQubits)
	}

	return 1 << qubits, nil
}

func ground(qubits, size int) *StateVec {
	amps := make([]complex128, size)
	amps[0] = 1

	return &StateVec{qubits: qubits, amps: amps}
}
