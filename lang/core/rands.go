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
	"math/rand"
	"os"
	"time"

	"github.com/cadlang/cadlang/lang/funcs"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

const (
	// RandsFuncName is the name this function is registered as.
	RandsFuncName = "rands"
)

func init() {
	funcs.Register(RandsFuncName, func() interfaces.Func { return &RandsFunc{} })
}

// RandsFunc returns a list of uniform random numbers:
//
//	rands(min, max, count, seed?)
//
// Without a seed it draws from a generator seeded once at Init; with a seed
// it reseeds its deterministic generator and draws from that, so equal seeds
// give equal sequences. Each instance owns its generators, there is no
// process wide generator state.
type RandsFunc struct {
	init *interfaces.Init

	deterministic    *rand.Rand
	nondeterministic *rand.Rand
}

// String returns a simple name for this function.
func (obj *RandsFunc) String() string { return RandsFuncName }

// Validate makes sure we've built our struct properly.
func (obj *RandsFunc) Validate() error { return nil }

// Info returns some static info about itself.
func (obj *RandsFunc) Info() *interfaces.Info {
	return &interfaces.Info{
		Pure: false,
		Memo: false,
		Err:  obj.Validate(),
	}
}

// Init runs some startup code for this function. The unseeded generator gets
// its entropy here, once per instance.
func (obj *RandsFunc) Init(init *interfaces.Init) error {
	obj.init = init
	obj.deterministic = rand.New(rand.NewSource(0))
	obj.nondeterministic = rand.New(rand.NewSource(time.Now().UnixNano() + int64(os.Getpid())))
	return nil
}

// Call generates the random list.
func (obj *RandsFunc) Call(ctx context.Context, args []types.Value) (types.Value, error) {
	if obj.init == nil {
		return nil, fmt.Errorf("the function was not initialized")
	}
	n := len(args)
	if n != 3 && n != 4 {
		return undef(), nil
	}
	min, ok := getNum(args[0])
	if !ok {
		return undef(), nil
	}
	max, ok := getNum(args[1])
	if !ok {
		return undef(), nil
	}
	if max < min {
		min, max = max, min
	}
	c, ok := getNum(args[2])
	if !ok {
		return undef(), nil
	}
	count := int(c)
	if count < 0 {
		count = 0
	}

	gen := obj.nondeterministic
	if n > 3 {
		seed, ok := getNum(args[3])
		if !ok {
			return undef(), nil
		}
		obj.deterministic = rand.New(rand.NewSource(int64(seed)))
		gen = obj.deterministic
	}

	vec := make([]types.Value, 0, count)
	for i := 0; i < count; i++ {
		if min == max { // no span to draw from
			vec = append(vec, &types.NumberValue{V: min})
			continue
		}
		vec = append(vec, &types.NumberValue{V: min + gen.Float64()*(max-min)})
	}
	return &types.ListValue{V: vec}, nil
}
