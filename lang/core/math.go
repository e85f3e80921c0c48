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

	"github.com/cadlang/cadlang/lang/funcs/simple"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

func init() {
	register1("abs", math.Abs)
	register1("sign", sign)
	register1("round", math.Round)
	register1("ceil", math.Ceil)
	register1("floor", math.Floor)
	register1("sqrt", math.Sqrt)
	register1("exp", math.Exp)
	register1("ln", math.Log)
	register2("pow", math.Pow)

	simple.Register("log", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Log,
	})
}

// register1 registers a one argument numeric forwarder under the given name.
func register1(name string, fn func(float64) float64) {
	simple.Register(name, &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: func(ctx context.Context, args []types.Value) (types.Value, error) {
			if len(args) != 1 {
				return undef(), nil
			}
			x, ok := getNum(args[0])
			if !ok {
				return undef(), nil
			}
			return &types.NumberValue{V: fn(x)}, nil
		},
	})
}

// register2 registers a two argument numeric forwarder under the given name.
func register2(name string, fn func(float64, float64) float64) {
	simple.Register(name, &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: func(ctx context.Context, args []types.Value) (types.Value, error) {
			if len(args) != 2 {
				return undef(), nil
			}
			x, ok := getNum(args[0])
			if !ok {
				return undef(), nil
			}
			y, ok := getNum(args[1])
			if !ok {
				return undef(), nil
			}
			return &types.NumberValue{V: fn(x, y)}, nil
		},
	})
}

func sign(x float64) float64 {
	if x < 0 {
		return -1.0
	}
	if x > 0 {
		return 1.0
	}
	return 0.0
}

// Log is the logarithm builtin. With one arg it is base ten, with two args
// the first arg is the base: log(b, y) = ln(y) / ln(b).
func Log(ctx context.Context, args []types.Value) (types.Value, error) {
	n := len(args)
	if n != 1 && n != 2 {
		return undef(), nil
	}
	base, y := 10.0, 0.0
	x, ok := getNum(args[0])
	if !ok {
		return undef(), nil
	}
	y = x
	if n == 2 {
		base = x
		y, ok = getNum(args[1])
		if !ok {
			return undef(), nil
		}
	}
	return &types.NumberValue{V: math.Log(y) / math.Log(base)}, nil
}
