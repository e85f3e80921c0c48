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
	"math"
	"testing"

	"github.com/cadlang/cadlang/lang/types"
)

// num runs a registered numeric builtin and returns the float result.
func num(t *testing.T, name string, args ...interface{}) float64 {
	result, _ := runFunc(t, name, vals(t, args...))
	n, ok := result.(*types.NumberValue)
	if !ok {
		t.Fatalf("%s(%v) = %s, expected a number", name, args, result)
	}
	return n.V
}

func TestForwarders(t *testing.T) {
	testCases := []struct {
		name   string
		args   []interface{}
		expect float64
	}{
		{"abs", []interface{}{-4.2}, 4.2},
		{"abs", []interface{}{4.2}, 4.2},
		{"sign", []interface{}{-0.1}, -1},
		{"sign", []interface{}{7}, 1},
		{"sign", []interface{}{0}, 0},
		{"round", []interface{}{2.5}, 3},
		{"round", []interface{}{-2.5}, -3},
		{"ceil", []interface{}{1.01}, 2},
		{"floor", []interface{}{1.99}, 1},
		{"sqrt", []interface{}{16}, 4},
		{"exp", []interface{}{0}, 1},
		{"ln", []interface{}{math.E}, 1},
		{"pow", []interface{}{2, 10}, 1024},
		{"log", []interface{}{1000}, 3},
		{"log", []interface{}{2, 8}, 3},
	}
	for _, tc := range testCases {
		got := num(t, tc.name, tc.args...)
		if math.Abs(got-tc.expect) > 1e-12 {
			t.Errorf("%s(%v) = %v, expected %v", tc.name, tc.args, got, tc.expect)
		}
	}
}

func TestTrigExactAngles(t *testing.T) {
	// the folded angles must come out exact, not approximately
	if got := num(t, "sin", 30); got != 0.5 {
		t.Errorf("sin(30) = %v, expected exactly 0.5", got)
	}
	if got := num(t, "sin", 210); got != -0.5 {
		t.Errorf("sin(210) = %v, expected exactly -0.5", got)
	}
	if got := num(t, "cos", 60); got != 0.5 {
		t.Errorf("cos(60) = %v, expected exactly 0.5", got)
	}
	if s, c := num(t, "sin", 45), num(t, "cos", 45); s != c {
		t.Errorf("sin(45) = %v and cos(45) = %v, expected them equal", s, c)
	}
}

func TestTrig(t *testing.T) {
	if got := num(t, "sin", 390); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("sin(390) = %v, expected 0.5", got)
	}
	if got := num(t, "cos", -300); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("cos(-300) = %v, expected 0.5", got)
	}
	if got := num(t, "tan", 45); math.Abs(got-1) > 1e-12 {
		t.Errorf("tan(45) = %v, expected 1", got)
	}
	if got := num(t, "asin", 1); math.Abs(got-90) > 1e-12 {
		t.Errorf("asin(1) = %v, expected 90", got)
	}
	if got := num(t, "acos", 0.5); math.Abs(got-60) > 1e-12 {
		t.Errorf("acos(0.5) = %v, expected 60", got)
	}
	if got := num(t, "atan", 1); math.Abs(got-45) > 1e-12 {
		t.Errorf("atan(1) = %v, expected 45", got)
	}
	if got := num(t, "atan2", 1, 1); math.Abs(got-45) > 1e-12 {
		t.Errorf("atan2(1, 1) = %v, expected 45", got)
	}
}

func TestTrigHugeAngle(t *testing.T) {
	// reduction has no precision left out there, so the answer is NaN
	if got := num(t, "sin", 1e300); !math.IsNaN(got) {
		t.Errorf("sin(1e300) = %v, expected NaN", got)
	}
	if got := num(t, "cos", -1e300); !math.IsNaN(got) {
		t.Errorf("cos(-1e300) = %v, expected NaN", got)
	}
}

func TestMathContract(t *testing.T) {
	// wrong arity or kind gives undef
	for _, args := range [][]interface{}{
		{},
		{"x"},
		{1, 2},
	} {
		result, _ := runFunc(t, "abs", vals(t, args...))
		if result.Kind() != types.KindUndef {
			t.Errorf("abs(%v) = %s, expected undef", args, result)
		}
	}
	result, _ := runFunc(t, "pow", vals(t, 2))
	if result.Kind() != types.KindUndef {
		t.Errorf("pow(2) = %s, expected undef", result)
	}
}
