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

// Package core contains the builtin functions of the language. Each file
// registers what it implements at init time. Import this package for side
// effects to make the whole builtin set available through the funcs registry.
package core

import (
	"github.com/cadlang/cadlang/lang/types"
)

// undef is a tiny helper, since nearly every contract violation ends here.
func undef() types.Value {
	return &types.UndefValue{}
}

// getNum extracts the float from a value if it is a number.
func getNum(v types.Value) (float64, bool) {
	n, ok := v.(*types.NumberValue)
	if !ok {
		return 0, false
	}
	return n.V, true
}

// getVec2 extracts a two element numeric pair from a value. Anything that is
// not a list of exactly two numbers does not qualify.
func getVec2(v types.Value) (float64, float64, bool) {
	cells := v.List()
	if len(cells) != 2 {
		return 0, 0, false
	}
	x, ok := getNum(cells[0])
	if !ok {
		return 0, 0, false
	}
	y, ok := getNum(cells[1])
	if !ok {
		return 0, 0, false
	}
	return x, y, ok
}

// getVec3 extracts a three element numeric triple from a value.
func getVec3(v types.Value) (float64, float64, float64, bool) {
	cells := v.List()
	if len(cells) != 3 {
		return 0, 0, 0, false
	}
	x, ok := getNum(cells[0])
	if !ok {
		return 0, 0, 0, false
	}
	y, ok := getNum(cells[1])
	if !ok {
		return 0, 0, 0, false
	}
	z, ok := getNum(cells[2])
	if !ok {
		return 0, 0, 0, false
	}
	return x, y, z, ok
}
