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
	simple.Register("min", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Min,
	})
	simple.Register("max", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Max,
	})
}

// Min returns the smallest of its args. A single non-empty list arg selects
// the smallest element by value ordering; otherwise every arg must be a
// number, and any arg that isn't aborts the whole call to undef.
func Min(ctx context.Context, args []types.Value) (types.Value, error) {
	return extremum(args, true), nil
}

// Max returns the largest of its args, with the same two calling forms and
// the same abort-on-non-number rule as Min.
func Max(ctx context.Context, args []types.Value) (types.Value, error) {
	return extremum(args, false), nil
}

// extremum walks either a single list arg or a variadic run of numbers,
// keeping the smallest value when less is true and the largest otherwise.
func extremum(args []types.Value, less bool) types.Value {
	if len(args) < 1 {
		return undef()
	}

	if list, ok := args[0].(*types.ListValue); ok && len(args) == 1 {
		if len(list.V) == 0 {
			return undef()
		}
		best := list.V[0]
		for _, x := range list.V[1:] {
			if less && x.Less(best) {
				best = x
				continue
			}
			if !less && best.Less(x) {
				best = x
			}
		}
		return best
	}

	val, ok := getNum(args[0])
	if !ok {
		return undef()
	}
	for _, arg := range args[1:] {
		// break on any non-number
		x, ok := getNum(arg)
		if !ok {
			return undef()
		}
		if less && x < val {
			val = x
			continue
		}
		if !less && x > val {
			val = x
		}
	}
	return &types.NumberValue{V: val}
}
