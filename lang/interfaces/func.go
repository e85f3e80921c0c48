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

// Package interfaces contains the API between the language evaluator and the
// builtin functions it calls.
package interfaces

import (
	"context"
	"fmt"

	"github.com/cadlang/cadlang/lang/types"
)

// Init holds some special values and handles that are passed into each
// function before it is used. The evaluator builds this.
type Init struct {
	// Debug turns on additional diagnostics for the function.
	Debug bool

	// Logf is the warning sink. Functions push one line, human readable
	// messages here for non fatal anomalies. It is fire and forget: it
	// must never affect control flow or the returned value, and it must
	// not block.
	Logf func(format string, v ...interface{})
}

// Info is a static representation of some information about the function. It
// is used for documentation and optimization.
type Info struct {
	Pure bool  // is the function pure? (can it be memoized?)
	Memo bool  // should the function be memoized? (false if too much output)
	Err  error // did this function validate?
}

// Func is the interface every builtin function must implement. Calls are
// synchronous and single threaded: the evaluator evaluates the argument list
// first and hands over the finished values.
//
// Contract violations (wrong arity, wrong argument kind) are not errors: the
// function returns the undef value and the evaluator carries on. The error
// return is reserved for internal problems, such as being called before Init.
type Func interface {
	fmt.Stringer // String() string (the function name)

	// Validate makes sure the struct was built properly.
	Validate() error

	// Info returns some static info about the function.
	Info() *Info

	// Init passes in some special values and handles.
	Init(*Init) error

	// Call runs the function on the already evaluated args and returns a
	// single value.
	Call(ctx context.Context, args []types.Value) (types.Value, error)
}
