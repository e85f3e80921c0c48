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
	"fmt"
	"math"

	"github.com/cadlang/cadlang/lang/funcs"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

const (
	// NormFuncName is the name this function is registered as.
	NormFuncName = "norm"

	// CrossFuncName is the name this function is registered as.
	CrossFuncName = "cross"
)

func init() {
	funcs.Register(NormFuncName, func() interfaces.Func { return &NormFunc{} })
	funcs.Register(CrossFuncName, func() interfaces.Func { return &CrossFunc{} })
}

// NormFunc returns the euclidean length of a numeric vector. A non-numeric
// element warns and gives undef.
type NormFunc struct {
	init *interfaces.Init
}

// String returns a simple name for this function.
func (obj *NormFunc) String() string { return NormFuncName }

// Validate makes sure we've built our struct properly.
func (obj *NormFunc) Validate() error { return nil }

// Info returns some static info about itself.
func (obj *NormFunc) Info() *interfaces.Info {
	return &interfaces.Info{
		Pure: false, // warns through the sink
		Memo: false,
		Err:  obj.Validate(),
	}
}

// Init runs some startup code for this function.
func (obj *NormFunc) Init(init *interfaces.Init) error {
	obj.init = init
	return nil
}

// Call computes the norm.
func (obj *NormFunc) Call(ctx context.Context, args []types.Value) (types.Value, error) {
	if obj.init == nil {
		return nil, fmt.Errorf("the function was not initialized")
	}
	if len(args) != 1 {
		return undef(), nil
	}
	list, ok := args[0].(*types.ListValue)
	if !ok {
		return undef(), nil
	}
	sum := 0.0
	for _, v := range list.V {
		x, ok := getNum(v)
		if !ok {
			obj.init.Logf("incorrect arguments to norm()")
			return undef(), nil
		}
		sum += x * x
	}
	return &types.NumberValue{V: math.Sqrt(sum)}, nil
}

// CrossFunc returns the cross product of two three dimensional vectors. Its
// input checking is strict: both args must be lists of exactly three finite
// numbers, and every violation warns with its own message.
type CrossFunc struct {
	init *interfaces.Init
}

// String returns a simple name for this function.
func (obj *CrossFunc) String() string { return CrossFuncName }

// Validate makes sure we've built our struct properly.
func (obj *CrossFunc) Validate() error { return nil }

// Info returns some static info about itself.
func (obj *CrossFunc) Info() *interfaces.Info {
	return &interfaces.Info{
		Pure: false, // warns through the sink
		Memo: false,
		Err:  obj.Validate(),
	}
}

// Init runs some startup code for this function.
func (obj *CrossFunc) Init(init *interfaces.Init) error {
	obj.init = init
	return nil
}

// Call computes the cross product.
func (obj *CrossFunc) Call(ctx context.Context, args []types.Value) (types.Value, error) {
	if obj.init == nil {
		return nil, fmt.Errorf("the function was not initialized")
	}
	if len(args) != 2 {
		obj.init.Logf("invalid number of parameters for cross()")
		return undef(), nil
	}
	v0, err := obj.vec3(args[0])
	if err != nil {
		return undef(), nil
	}
	v1, err := obj.vec3(args[1])
	if err != nil {
		return undef(), nil
	}

	x := v0[1]*v1[2] - v0[2]*v1[1]
	y := v0[2]*v1[0] - v0[0]*v1[2]
	z := v0[0]*v1[1] - v0[1]*v1[0]

	return &types.ListValue{V: []types.Value{
		&types.NumberValue{V: x},
		&types.NumberValue{V: y},
		&types.NumberValue{V: z},
	}}, nil
}

// vec3 validates one cross() arg, warning on the first violation it finds.
func (obj *CrossFunc) vec3(arg types.Value) ([3]float64, error) {
	var out [3]float64
	list, ok := arg.(*types.ListValue)
	if !ok {
		obj.init.Logf("invalid type of parameters for cross()")
		return out, fmt.Errorf("not a list")
	}
	if len(list.V) != 3 {
		obj.init.Logf("invalid vector size of parameter for cross()")
		return out, fmt.Errorf("wrong size")
	}
	for i, v := range list.V {
		x, ok := getNum(v)
		if !ok {
			obj.init.Logf("invalid value in parameter vector for cross()")
			return out, fmt.Errorf("not a number")
		}
		if math.IsNaN(x) {
			obj.init.Logf("invalid value (NaN) in parameter vector for cross()")
			return out, fmt.Errorf("nan")
		}
		if math.IsInf(x, 0) {
			obj.init.Logf("invalid value (INF) in parameter vector for cross()")
			return out, fmt.Errorf("inf")
		}
		out[i] = x
	}
	return out, nil
}
