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
	"strings"
	"unicode/utf8"

	"github.com/cadlang/cadlang/lang/funcs/simple"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

func init() {
	simple.Register("str", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Str,
	})
	simple.Register("concat", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Concat,
	})
	simple.Register("len", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Len,
	})
}

// Str builds a string from the text projection of every arg, in order. A
// string arg contributes its raw text; anything else contributes its display
// form, so strings nested inside lists stay quoted.
func Str(ctx context.Context, args []types.Value) (types.Value, error) {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(types.Text(arg))
	}
	return &types.StrValue{V: b.String()}, nil
}

// Concat builds one list from all the args, flattening each list arg by a
// single level. Non-list args are appended as they are.
func Concat(ctx context.Context, args []types.Value) (types.Value, error) {
	result := []types.Value{}
	for _, arg := range args {
		if list, ok := arg.(*types.ListValue); ok {
			result = append(result, list.V...)
			continue
		}
		result = append(result, arg)
	}
	return &types.ListValue{V: result}, nil
}

// Len returns the element count of a list, or the codepoint count (not the
// byte count) of a string. Other kinds have no length.
func Len(ctx context.Context, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return undef(), nil
	}
	switch v := args[0].(type) {
	case *types.ListValue:
		return &types.NumberValue{V: float64(len(v.V))}, nil
	case *types.StrValue:
		return &types.NumberValue{V: float64(utf8.RuneCountInString(v.V))}, nil
	}
	return undef(), nil
}
