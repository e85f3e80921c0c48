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

// Package simple provides a scaffold for the many builtins which are plain,
// stateless functions of their args, so that they don't each have to carry
// the full function API boilerplate.
package simple

import (
	"context"
	"fmt"

	"github.com/cadlang/cadlang/lang/funcs"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

// RegisteredFuncs maps a function name to the corresponding scaffold.
var RegisteredFuncs = make(map[string]*Scaffold) // must initialize

// Scaffold holds the necessary data to build a simple function.
type Scaffold struct {
	// I holds some static information about the function.
	I *interfaces.Info

	// F is the implementation. It must deterministically produce one
	// value from its args, and it must not hold state between calls.
	F func(context.Context, []types.Value) (types.Value, error)
}

// Register registers a simple, static, pure function. It is easier to use
// than the raw function API, but also limits you to simple, static, pure
// functions.
func Register(name string, scaffold *Scaffold) {
	if _, exists := RegisteredFuncs[name]; exists {
		panic(fmt.Sprintf("a simple func named %s is already registered", name))
	}
	if scaffold == nil || scaffold.F == nil {
		panic(fmt.Sprintf("missing implementation for simple func %s", name))
	}
	RegisteredFuncs[name] = scaffold // store a copy for ourselves

	// register a copy in the main function database
	funcs.Register(name, func() interfaces.Func {
		return &WrappedFunc{Name: name, Fn: scaffold}
	})
}

// WrappedFunc is a scaffolding function struct which fulfills the
// boiler-plate for the function API, but that can run a very simple, static,
// pure function.
type WrappedFunc struct {
	Name string
	Fn   *Scaffold

	init *interfaces.Init
}

// String returns a simple name for this function.
func (obj *WrappedFunc) String() string { return obj.Name }

// Validate makes sure we've built our struct properly.
func (obj *WrappedFunc) Validate() error {
	if obj.Fn == nil || obj.Fn.F == nil {
		return fmt.Errorf("the implementation is missing")
	}
	return nil
}

// Info returns some static info about itself.
func (obj *WrappedFunc) Info() *interfaces.Info {
	if obj.Fn != nil && obj.Fn.I != nil {
		info := *obj.Fn.I // copy
		info.Err = obj.Validate()
		return &info
	}
	return &interfaces.Info{
		Pure: true,
		Memo: false,
		Err:  obj.Validate(),
	}
}

// Init runs some startup code for this function.
func (obj *WrappedFunc) Init(init *interfaces.Init) error {
	obj.init = init
	return nil
}

// Call runs the wrapped function.
func (obj *WrappedFunc) Call(ctx context.Context, args []types.Value) (types.Value, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}
	return obj.Fn.F(ctx, args)
}
