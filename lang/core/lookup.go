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

	"github.com/cadlang/cadlang/lang/funcs/simple"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

func init() {
	simple.Register("lookup", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Lookup,
	})
}

// Lookup interpolates linearly in a table of [x, y] pairs:
//
//	lookup(x, [[x0, y0], [x1, y1], ...])
//
// The table is not assumed sorted. One linear scan tracks the tightest pair
// at or below x (low) and the tightest pair at or above x (high); a stale
// bracket that sits on the wrong side of x is always displaced by any pair on
// the right side. Pairs that aren't exactly two numbers are skipped, but the
// first pair must be well formed since it seeds both brackets.
//
// Outside the table the result clamps, and it does so through the *opposite*
// bracket: at or below every key the high bracket's y is returned, at or
// above every key the low bracket's y. That inversion is what makes a single
// pair table clamp to its own y, and callers depend on it, so it stays.
func Lookup(ctx context.Context, args []types.Value) (types.Value, error) {
	if len(args) < 2 {
		return undef(), nil
	}
	p, ok := getNum(args[0])
	if !ok {
		return undef(), nil
	}
	rows := args[1].List()
	if len(rows) == 0 {
		return undef(), nil
	}

	lowP, lowV, ok := getVec2(rows[0]) // seeds both brackets
	if !ok {
		return undef(), nil
	}
	highP, highV := lowP, lowV

	for _, row := range rows[1:] {
		x, y, ok := getVec2(row)
		if !ok {
			continue // malformed pair, skip it
		}
		if x <= p && (x > lowP || lowP > p) {
			lowP, lowV = x, y
		}
		if x >= p && (x < highP || highP < p) {
			highP, highV = x, y
		}
	}

	if p <= lowP {
		return &types.NumberValue{V: highV}, nil
	}
	if p >= highP {
		return &types.NumberValue{V: lowV}, nil
	}
	f := (p - lowP) / (highP - lowP)
	return &types.NumberValue{V: highV*f + lowV*(1-f)}, nil
}
