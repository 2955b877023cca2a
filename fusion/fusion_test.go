package fusion_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anyonfuse/basis"
	"github.com/katalvlaran/anyonfuse/fusion"
	"github.com/katalvlaran/anyonfuse/model"
	"github.com/katalvlaran/anyonfuse/rules"
	"github.com/katalvlaran/anyonfuse/state"
)

// pair is a short alias for state.MustFusionPair.
func pair(a, b int) state.FusionPair { return state.MustFusionPair(a, b) }

// ledger builds a State from charges (named "0".."n-1") and accepted operations.
func ledger(t *testing.T, charges []model.Charge, ops ...state.Operation) *state.State {
	t.Helper()
	s := state.New()
	for i, c := range charges {
		require.NoError(t, s.AddAnyon(model.MustAnyon(fmt.Sprint(i), c, model.Position{})))
	}
	for _, op := range ops {
		ok, err := s.AddOperation(op.Time, op.Pair)
		require.NoError(t, err)
		require.True(t, ok, "operation %s rejected", op)
	}

	return s
}

// repeat returns n copies of c.
func repeat(c model.Charge, n int) []model.Charge {
	out := make([]model.Charge, n)
	for i := range out {
		out[i] = c
	}

	return out
}

// sixSigma is the reference six-anyon tree.
func sixSigma(t *testing.T, opts ...fusion.Option) *fusion.Fusion {
	t.Helper()
	s := ledger(t, repeat(model.Sigma, 6),
		state.Operation{Time: 1, Pair: pair(0, 1)},
		state.Operation{Time: 1, Pair: pair(2, 3)},
		state.Operation{Time: 1, Pair: pair(4, 5)},
		state.Operation{Time: 2, Pair: pair(2, 4)},
		state.Operation{Time: 3, Pair: pair(0, 2)},
	)
	f, err := fusion.New(s, opts...)
	require.NoError(t, err)

	return f
}

// fourTree fuses (0,1),(2,3) at t0 and (0,2) at t1 over the given charges.
func fourTree(t *testing.T, charges []model.Charge, opts ...fusion.Option) *fusion.Fusion {
	t.Helper()
	s := ledger(t, charges,
		state.Operation{Time: 0, Pair: pair(0, 1)},
		state.Operation{Time: 0, Pair: pair(2, 3)},
		state.Operation{Time: 1, Pair: pair(0, 2)},
	)
	f, err := fusion.New(s, opts...)
	require.NoError(t, err)

	return f
}

// TestNew_NilState rejects a nil ledger.
func TestNew_NilState(t *testing.T) {
	_, err := fusion.New(nil)
	assert.ErrorIs(t, err, fusion.ErrNilState)
}

// TestString_SixSigma pins the reference rendering byte for byte.
func TestString_SixSigma(t *testing.T) {
	want := "0 1 2 3 4 5\n| | | | | |\n|─| |─| |─|\n|   |───|  \n|───|      \n|          "
	assert.Equal(t, want, sixSigma(t).String())
}

// TestString_Edges covers the empty ledger and a tree without fusions.
func TestString_Edges(t *testing.T) {
	f, err := fusion.New(state.New())
	require.NoError(t, err)
	assert.Equal(t, "", f.String())

	f, err = fusion.New(ledger(t, repeat(model.Tau, 2)))
	require.NoError(t, err)
	assert.Equal(t, "0 1\n| |\n| |", f.String())

	f, err = fusion.New(ledger(t, repeat(model.Tau, 3), state.Operation{Time: 5, Pair: pair(1, 2)}))
	require.NoError(t, err)
	assert.Equal(t, "0 1 2\n| | |\n| |─|\n| |  ", f.String())
}

// TestLevels_SortsStablyByTime groups out-of-order submissions by time.
func TestLevels_SortsStablyByTime(t *testing.T) {
	s := ledger(t, repeat(model.Sigma, 6),
		state.Operation{Time: 2, Pair: pair(4, 5)},
		state.Operation{Time: 1, Pair: pair(0, 1)},
		state.Operation{Time: 2, Pair: pair(2, 3)},
	)
	f, err := fusion.New(s)
	require.NoError(t, err)

	assert.Equal(t, []fusion.Level{
		{Time: 1, Pairs: []state.FusionPair{pair(0, 1)}},
		{Time: 2, Pairs: []state.FusionPair{pair(4, 5), pair(2, 3)}},
	}, f.Levels())
}

// TestNew_OutOfOrderLedger checks that a time-sorted replay never reads a retired slot.
func TestNew_OutOfOrderLedger(t *testing.T) {
	s := ledger(t, repeat(model.Sigma, 3), state.Operation{Time: 5, Pair: pair(1, 2)})
	ok, err := s.AddOperation(3, pair(0, 1))
	require.NoError(t, err)
	require.False(t, ok, "(0,1)@3 would retire 1 before (1,2)@5")

	f, err := fusion.New(s)
	require.NoError(t, err)
	_, err = f.TotalCharge()
	assert.ErrorIs(t, err, fusion.ErrIncompleteTree)
	assert.NotErrorIs(t, err, model.ErrCategoryMismatch)
	assert.Equal(t, "0 1 2\n| | |\n| |─|\n| |  ", f.String())

	s = ledger(t, repeat(model.Sigma, 4),
		state.Operation{Time: 5, Pair: pair(0, 1)},
		state.Operation{Time: 3, Pair: pair(2, 3)},
		state.Operation{Time: 6, Pair: pair(0, 2)},
	)
	f, err = fusion.New(s)
	require.NoError(t, err)
	total, err := f.TotalCharge()
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 2, 0}, total.Counts())
	assert.True(t, f.VerifyBasis(f.Basis()))
	assert.Equal(t, "0 1 2 3\n| | | |\n| | |─|\n|─| |  \n|───|  \n|      ", f.String())
}

// TestLevels_RoundTrip flattens levels back to the ledger's operations.
func TestLevels_RoundTrip(t *testing.T) {
	s := ledger(t, repeat(model.Sigma, 6),
		state.Operation{Time: 1, Pair: pair(0, 1)},
		state.Operation{Time: 1, Pair: pair(2, 3)},
		state.Operation{Time: 1, Pair: pair(4, 5)},
		state.Operation{Time: 2, Pair: pair(2, 4)},
		state.Operation{Time: 3, Pair: pair(0, 2)},
	)
	f, err := fusion.New(s)
	require.NoError(t, err)

	assert.ElementsMatch(t, s.Operations(), f.Operations())
	assert.Equal(t, s.Operations(), f.Operations(), "already time-ordered input is kept as is")

	levels := f.Levels()
	levels[0].Pairs[0] = pair(3, 4)
	assert.Equal(t, pair(0, 1), f.Levels()[0].Pairs[0], "Levels must return a copy")

	b := f.Basis()
	assert.True(t, f.VerifyBasis(b))
	assert.False(t, f.VerifyBasis(basis.New(nil)))
	assert.Equal(t, 6, f.Len())
	assert.Len(t, f.Anyons(), 6)
}

// TestSnapshot_Detached ensures later ledger mutations do not reach the snapshot.
func TestSnapshot_Detached(t *testing.T) {
	s := ledger(t, repeat(model.Sigma, 3), state.Operation{Time: 1, Pair: pair(0, 1)})
	f, err := fusion.New(s)
	require.NoError(t, err)

	ok, err := s.AddOperation(2, pair(0, 2))
	require.NoError(t, err)
	require.True(t, ok)
	_ = s.AddAnyon(model.MustAnyon("x", model.Sigma, model.Position{}))

	assert.Len(t, f.Operations(), 1)
	assert.Equal(t, 3, f.Len())
}

// TestTotalCharge_ManualContraction compares tree evaluation to hand contractions.
func TestTotalCharge_ManualContraction(t *testing.T) {
	S, P, V := model.Sigma, model.Psi, model.IsingVacuum
	cases := []struct {
		name    string
		charges []model.Charge
		want    []uint64 // Psi, Vacuum, Sigma
	}{
		// (σσ)(σσ) = (Ψ+1)(Ψ+1) = 2Ψ + 2·1
		{"FourSigma", []model.Charge{S, S, S, S}, []uint64{2, 2, 0}},
		// (σσ)(ΨΨ) = (Ψ+1)·1
		{"SigmaSigmaPsiPsi", []model.Charge{S, S, P, P}, []uint64{1, 1, 0}},
		// (ΨΨ)(Ψ1) = 1·Ψ
		{"PsiPsiPsiVacuum", []model.Charge{P, P, P, V}, []uint64{1, 0, 0}},
		// (σσ)(σ1) = (Ψ+1)·σ = 2σ
		{"ThreeSigmaVacuum", []model.Charge{S, S, S, V}, []uint64{0, 0, 2}},
		// (σΨ)(σ1) = σσ = Ψ+1
		{"SigmaPsiSigmaVacuum", []model.Charge{S, P, S, V}, []uint64{1, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fourTree(t, tc.charges).TotalCharge()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Counts())
		})
	}

	got, err := sixSigma(t).TotalCharge()
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 4, 0}, got.Counts())
}

// TestEvolve_Steps records each outcome and the surviving slot.
func TestEvolve_Steps(t *testing.T) {
	ev, err := fourTree(t, repeat(model.Sigma, 4)).Evolve()
	require.NoError(t, err)

	require.Len(t, ev.Steps, 3)
	assert.Equal(t, pair(0, 1), ev.Steps[0].Pair)
	assert.Equal(t, []uint64{1, 1, 0}, ev.Steps[0].Outcome.Counts())
	assert.Equal(t, uint32(1), ev.Steps[2].Time)
	assert.Equal(t, []int{0}, ev.Survivors)
	assert.True(t, ev.Slots[1].IsZero())
	assert.False(t, ev.Slots[1].Category().Valid())
}

// TestTotalCharge_Errors covers the empty and incomplete trees.
func TestTotalCharge_Errors(t *testing.T) {
	f, err := fusion.New(state.New())
	require.NoError(t, err)
	_, err = f.TotalCharge()
	assert.ErrorIs(t, err, fusion.ErrNoAnyons)

	f, err = fusion.New(ledger(t, repeat(model.Sigma, 3), state.Operation{Time: 1, Pair: pair(0, 1)}))
	require.NoError(t, err)
	_, err = f.TotalCharge()
	assert.ErrorIs(t, err, fusion.ErrIncompleteTree)
}

// TestVerifyFusionResult checks reachability of each charge.
func TestVerifyFusionResult(t *testing.T) {
	four := fourTree(t, repeat(model.Sigma, 4))
	for c, want := range map[model.Charge]bool{model.IsingVacuum: true, model.Psi: true, model.Sigma: false} {
		got, err := four.VerifyFusionResult(c)
		require.NoError(t, err)
		assert.Equal(t, want, got, "four sigmas reach %s", c)
	}

	f, err := fusion.New(ledger(t, repeat(model.Sigma, 3)))
	require.NoError(t, err)
	ok, err := f.VerifyFusionResult(model.Sigma)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.VerifyFusionResult(model.IsingVacuum)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.VerifyFusionResult(model.Tau)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)

	fib, err := fusion.New(ledger(t, repeat(model.Tau, 3)))
	require.NoError(t, err)
	for _, c := range model.Fibonacci.Charges() {
		ok, err := fib.VerifyFusionResult(c)
		require.NoError(t, err)
		assert.True(t, ok, "three taus reach %s", c)
	}

	empty, err := fusion.New(state.New())
	require.NoError(t, err)
	_, err = empty.VerifyFusionResult(model.Sigma)
	assert.ErrorIs(t, err, fusion.ErrNoAnyons)

	// Multiplicities of 140 Sigmas exceed uint64; reachability must not.
	many, err := fusion.New(ledger(t, repeat(model.Sigma, 140)))
	require.NoError(t, err)
	for c, want := range map[model.Charge]bool{model.IsingVacuum: true, model.Psi: true, model.Sigma: false} {
		got, err := many.VerifyFusionResult(c)
		require.NoError(t, err)
		assert.Equal(t, want, got, "140 sigmas reach %s", c)
	}
}

// TestQubitEncoding covers the reference trees and the triviality rules.
func TestQubitEncoding(t *testing.T) {
	S, P, V := model.Sigma, model.Psi, model.IsingVacuum
	strict := fusion.WithStrictTotalCharge()
	cases := []struct {
		name    string
		charges []model.Charge
		opts    []fusion.Option
		want    []state.FusionPair
	}{
		{"FourSigma", []model.Charge{S, S, S, S}, nil, []state.FusionPair{pair(0, 1)}},
		{"FourSigmaStrict", []model.Charge{S, S, S, S}, []fusion.Option{strict}, nil},
		{"SigmaTotal", []model.Charge{S, S, S, V}, nil, nil},
		{"MixedDefault", []model.Charge{S, S, P, P}, nil, []state.FusionPair{pair(0, 1)}},
		{"MixedStrict", []model.Charge{S, S, P, P}, []fusion.Option{strict}, nil},
		{"StrictPsi", []model.Charge{P, P, P, V}, []fusion.Option{strict}, []state.FusionPair{pair(0, 1)}},
		{"StrictVacuum", []model.Charge{P, P, V, V}, []fusion.Option{strict}, []state.FusionPair{pair(0, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fourTree(t, tc.charges, tc.opts...).QubitEncoding()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := sixSigma(t).QubitEncoding()
	require.NoError(t, err)
	assert.Equal(t, []state.FusionPair{pair(0, 1), pair(2, 3), pair(2, 4)}, got)
}

// TestQubitEncoding_Edges covers empty and incomplete trees and the unsupported category.
func TestQubitEncoding_Edges(t *testing.T) {
	single, err := fusion.New(ledger(t, repeat(model.Sigma, 1)))
	require.NoError(t, err)
	got, err := single.QubitEncoding()
	require.NoError(t, err)
	assert.Empty(t, got)

	f, err := fusion.New(ledger(t, repeat(model.Sigma, 2)))
	require.NoError(t, err)
	_, err = f.QubitEncoding()
	assert.ErrorIs(t, err, fusion.ErrIncompleteTree)

	// Two slots survive: (0,1) and the (2,3,4,5) subtree never join.
	partial, err := fusion.New(ledger(t, repeat(model.Sigma, 6),
		state.Operation{Time: 1, Pair: pair(0, 1)},
		state.Operation{Time: 1, Pair: pair(2, 3)},
		state.Operation{Time: 1, Pair: pair(4, 5)},
		state.Operation{Time: 2, Pair: pair(2, 4)},
	))
	require.NoError(t, err)
	_, err = partial.TotalCharge()
	assert.ErrorIs(t, err, fusion.ErrIncompleteTree)
	got, err = partial.QubitEncoding()
	assert.ErrorIs(t, err, fusion.ErrIncompleteTree)
	assert.Nil(t, got)

	fib, err := fusion.New(ledger(t, repeat(model.Tau, 2), state.Operation{Time: 1, Pair: pair(0, 1)}))
	require.NoError(t, err)
	_, err = fib.QubitEncoding()
	assert.ErrorIs(t, err, fusion.ErrUnsupportedCategory)
	assert.ErrorIs(t, err, rules.ErrUnsupportedCategory)

	empty, err := fusion.New(state.New())
	require.NoError(t, err)
	_, err = empty.QubitEncoding()
	assert.ErrorIs(t, err, fusion.ErrNoAnyons)
}

// TestQueries_Idempotent re-runs every query on one snapshot.
func TestQueries_Idempotent(t *testing.T) {
	f := sixSigma(t)
	enc1, err := f.QubitEncoding()
	require.NoError(t, err)
	reach1, err := f.VerifyFusionResult(model.Psi)
	require.NoError(t, err)
	str1 := f.String()

	for i := 0; i < 3; i++ {
		enc, err := f.QubitEncoding()
		require.NoError(t, err)
		assert.Equal(t, enc1, enc)
		reach, err := f.VerifyFusionResult(model.Psi)
		require.NoError(t, err)
		assert.Equal(t, reach1, reach)
		assert.Equal(t, str1, f.String())
	}
}

// TestMinimumPossibleAnyons pins both categories and the input bounds.
func TestMinimumPossibleAnyons(t *testing.T) {
	cases := []struct {
		cat    model.Category
		qubits int
		want   []int
	}{
		{model.Ising, 0, []int{1, 2}},
		{model.Ising, 3, []int{7, 8}},
		{model.Fibonacci, 0, []int{0, 1, 2, 3}},
		{model.Fibonacci, 1, []int{4, 5, 6, 7}},
		{model.Fibonacci, 2, []int{8, 9}},
		{model.Fibonacci, 3, []int{10, 11, 12, 13}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%d", tc.cat, tc.qubits), func(t *testing.T) {
			got, err := fusion.MinimumPossibleAnyons(tc.cat, tc.qubits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	got, err := fusion.MinimumPossibleAnyons(model.Fibonacci, fusion.MaxFibonacciQubits)
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	_, err = fusion.MinimumPossibleAnyons(model.Fibonacci, fusion.MaxFibonacciQubits+1)
	assert.ErrorIs(t, err, fusion.ErrQubitLimit)
	_, err = fusion.MinimumPossibleAnyons(model.Ising, -1)
	assert.ErrorIs(t, err, fusion.ErrNegativeQubits)
	_, err = fusion.MinimumPossibleAnyons(model.Category(0), 1)
	assert.ErrorIs(t, err, fusion.ErrUnsupportedCategory)
}
