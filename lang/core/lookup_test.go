// Cadlang
// Copyright (C) the Cadlang project contributors
// Written by the Cadlang project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package core

import (
	"context"
	"math"
	"testing"

	"github.com/cadlang/cadlang/lang/types"
)

// lookupNum runs the interpolation and expects a number back.
func lookupNum(t *testing.T, x float64, table interface{}) float64 {
	args := vals(t, x, table)
	result, err := Lookup(context.Background(), args)
	if err != nil {
		t.Fatalf("lookup errored: %+v", err)
	}
	n, ok := result.(*types.NumberValue)
	if !ok {
		t.Fatalf("lookup(%v) = %s, expected a number", x, result)
	}
	return n.V
}

// lookupUndef runs the interpolation and expects undef back.
func lookupUndef(t *testing.T, args []types.Value) {
	result, err := Lookup(context.Background(), args)
	if err != nil {
		t.Fatalf("lookup errored: %+v", err)
	}
	if result.Kind() != types.KindUndef {
		t.Errorf("expected undef, got %s", result)
	}
}

// permutations of the same table, since ordering must not matter
func tables() []interface{} {
	return []interface{}{
		[]interface{}{
			[]interface{}{0.0, 0.0},
			[]interface{}{10.0, 100.0},
			[]interface{}{20.0, 50.0},
		},
		[]interface{}{
			[]interface{}{20.0, 50.0},
			[]interface{}{0.0, 0.0},
			[]interface{}{10.0, 100.0},
		},
		[]interface{}{
			[]interface{}{10.0, 100.0},
			[]interface{}{20.0, 50.0},
			[]interface{}{0.0, 0.0},
		},
	}
}

func TestLookupExactKey(t *testing.T) {
	// an exact key gives its own y, whatever the row order
	for i, table := range tables() {
		for x, y := range map[float64]float64{0: 0, 10: 100, 20: 50} {
			if got := lookupNum(t, x, table); got != y {
				t.Errorf("table %d: lookup(%v) = %v, expected %v", i, x, got, y)
			}
		}
	}
}

func TestLookupInterpolates(t *testing.T) {
	for i, table := range tables() {
		if got := lookupNum(t, 5, table); got != 50 {
			t.Errorf("table %d: lookup(5) = %v, expected 50", i, got)
		}
		if got := lookupNum(t, 15, table); got != 75 {
			t.Errorf("table %d: lookup(15) = %v, expected 75", i, got)
		}
		// a blend stays between its brackets
		got := lookupNum(t, 12.5, table)
		if got < 50 || got > 100 {
			t.Errorf("table %d: lookup(12.5) = %v, expected within [50, 100]", i, got)
		}
	}
}

func TestLookupClamps(t *testing.T) {
	for i, table := range tables() {
		// below every key the *high* bracket answers: it tracked the
		// closest key above x, which here is (0, 0)
		if got := lookupNum(t, -5, table); got != 0 {
			t.Errorf("table %d: lookup(-5) = %v, expected 0", i, got)
		}
		// above every key the low bracket answers symmetrically
		if got := lookupNum(t, 25, table); got != 50 {
			t.Errorf("table %d: lookup(25) = %v, expected 50", i, got)
		}
	}
}

func TestLookupSinglePair(t *testing.T) {
	// one pair clamps to its own y on both sides
	table := []interface{}{[]interface{}{10.0, 42.0}}
	for _, x := range []float64{-100, 10, 100} {
		if got := lookupNum(t, x, table); got != 42 {
			t.Errorf("lookup(%v) = %v, expected 42", x, got)
		}
	}
}

func TestLookupSkipsMalformedPairs(t *testing.T) {
	table := []interface{}{
		[]interface{}{0.0, 0.0},
		"junk",
		[]interface{}{1.0, 2.0, 3.0},
		[]interface{}{"x", 1.0},
		[]interface{}{10.0, 100.0},
	}
	if got := lookupNum(t, 5, table); got != 50 {
		t.Errorf("lookup(5) = %v, expected 50", got)
	}
}

func TestLookupContract(t *testing.T) {
	table := []interface{}{[]interface{}{0.0, 0.0}, []interface{}{1.0, 1.0}}

	lookupUndef(t, vals(t, 5.0)) // missing table

	lookupUndef(t, vals(t, "x", table)) // non numeric x

	lookupUndef(t, vals(t, 5.0, "not a table"))

	lookupUndef(t, vals(t, 5.0, []interface{}{})) // empty table

	// a malformed first pair can't seed the brackets
	lookupUndef(t, vals(t, 5.0, []interface{}{"junk", []interface{}{0.0, 0.0}}))
	lookupUndef(t, vals(t, 5.0, []interface{}{[]interface{}{0.0}, []interface{}{1.0, 1.0}}))
}

func TestLookupIsMonotonicBlend(t *testing.T) {
	table := []interface{}{
		[]interface{}{2.0, 8.0},
		[]interface{}{-3.0, 1.0},
		[]interface{}{7.0, -4.0},
	}
	for _, x := range []float64{-2.5, -1, 0, 1.5, 3, 5, 6.9} {
		got := lookupNum(t, x, table)
		var lo, hi float64
		if x <= 2 {
			lo, hi = 1, 8
		} else {
			lo, hi = -4, 8
		}
		if got < math.Min(lo, hi) || got > math.Max(lo, hi) {
			t.Errorf("lookup(%v) = %v, expected within [%v, %v]", x, got, lo, hi)
		}
	}
}
