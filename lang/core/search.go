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

	"github.com/cadlang/cadlang/lang/funcs"
	"github.com/cadlang/cadlang/lang/interfaces"
	"github.com/cadlang/cadlang/lang/types"
)

const (
	// SearchFuncName is the name this function is registered as.
	SearchFuncName = "search"
)

func init() {
	funcs.Register(SearchFuncName, func() interfaces.Func { return &SearchFunc{} })
}

// SearchFunc is the generalized matching builtin:
//
//	search(query, table, cardinality = 1, column = 0)
//
// It matches a scalar, a string, or a list of scalars against a table, which
// is either a string (matched codepoint by codepoint) or a list of rows. The
// cardinality arg caps how many matches are collected per query element and
// picks the output shape: 1 (the default) returns a flat list of first-match
// indexes, 0 returns every match as one nested list per query element, and
// k > 1 returns up to k matches per query element, nested.
//
// The flat shape is a convenience for the common one-value-per-query usage,
// and it is irregular on purpose: with a list query and cardinality 1, a
// query element with no match still pushes an empty nested list rather than
// being skipped. Callers rely on both behaviours, so both are kept.
//
// A query element that matches nothing is not an error. It is reported once
// through the warning sink and shows up structurally in the output, as an
// omission or as an empty slot, depending on the shape in play.
type SearchFunc struct {
	init *interfaces.Init
}

// String returns a simple name for this function.
func (obj *SearchFunc) String() string { return SearchFuncName }

// Validate makes sure we've built our struct properly.
func (obj *SearchFunc) Validate() error { return nil }

// Info returns some static info about itself. Warnings make it impure.
func (obj *SearchFunc) Info() *interfaces.Info {
	return &interfaces.Info{
		Pure: false, // warns through the sink
		Memo: false,
		Err:  obj.Validate(),
	}
}

// Init runs some startup code for this function.
func (obj *SearchFunc) Init(init *interfaces.Init) error {
	obj.init = init
	return nil
}

// Call dispatches on the query and table kinds.
func (obj *SearchFunc) Call(ctx context.Context, args []types.Value) (types.Value, error) {
	if obj.init == nil {
		return nil, fmt.Errorf("the function was not initialized")
	}
	if len(args) < 2 || len(args) > 4 {
		return undef(), nil
	}
	query, table := args[0], args[1]

	cardinality := 1
	if len(args) > 2 {
		n, ok := getNum(args[2])
		if !ok {
			return undef(), nil
		}
		cardinality = int(n)
		if cardinality < 0 {
			cardinality = 0
		}
	}
	column := 0
	if len(args) > 3 {
		n, ok := getNum(args[3])
		if !ok {
			return undef(), nil
		}
		column = int(n)
		if column < 0 {
			return undef(), nil
		}
	}

	switch query := query.(type) {
	case *types.NumberValue:
		return obj.searchScalar(query, table, cardinality, column), nil

	case *types.StrValue:
		if t, ok := table.(*types.StrValue); ok {
			return obj.searchStr([]rune(query.V), []rune(t.V), cardinality), nil
		}
		return obj.searchStrTable([]rune(query.V), table.List(), cardinality, column), nil

	case *types.ListValue:
		return obj.searchList(query.V, table.List(), cardinality, column), nil

	default:
		obj.init.Logf("search: none performed on input %s", query)
		return undef(), nil
	}
}

// rowMatches is the table row match rule. On column zero the row itself may
// match the query directly, which lets a table of bare scalars work. On any
// column, the row must be a list long enough to contain that column; shorter
// rows are simply not matchable there.
func rowMatches(query, row types.Value, column int) bool {
	if column == 0 && query.Cmp(row) == nil {
		return true
	}
	cells := row.List() // nil when the row isn't a list
	return column < len(cells) && query.Cmp(cells[column]) == nil
}

// searchScalar handles a single scalar query over a table of rows: the flat
// list of matching row indexes, in table order, capped by the cardinality
// (zero meaning unbounded). A scalar query that matches nothing just yields
// an empty result, without a warning.
func (obj *SearchFunc) searchScalar(query, table types.Value, cardinality, column int) types.Value {
	indexes := []types.Value{}
	count := 0
	for j, row := range table.List() {
		if !rowMatches(query, row, column) {
			continue
		}
		indexes = append(indexes, &types.NumberValue{V: float64(j)})
		count++
		if cardinality != 0 && count >= cardinality {
			break
		}
	}
	return &types.ListValue{V: indexes}
}

// searchStr matches every codepoint of the query string against every
// codepoint of the table string. All indexing is in codepoints. With
// cardinality 1 an unmatched query codepoint is skipped, so the result can be
// shorter than the query; with any other cardinality the result always has
// one nested list per query codepoint. Either way each unmatched codepoint
// warns exactly once.
func (obj *SearchFunc) searchStr(query, table []rune, cardinality int) types.Value {
	out := []types.Value{}
	for i := 0; i < len(query); i++ {
		count := 0
		matches := []types.Value{}
		for j := 0; j < len(table); j++ {
			if query[i] != table[j] {
				continue
			}
			count++
			if cardinality == 1 {
				out = append(out, &types.NumberValue{V: float64(j)})
				break
			}
			matches = append(matches, &types.NumberValue{V: float64(j)})
			if cardinality > 1 && count >= cardinality {
				break
			}
		}
		if count == 0 {
			obj.init.Logf("search term not found: %q", string(query[i]))
		}
		if cardinality != 1 {
			out = append(out, &types.ListValue{V: matches})
		}
	}
	return &types.ListValue{V: out}
}

// searchStrTable matches every codepoint of the query string against a table
// of rows, where each row contributes only the *first* codepoint of its
// selected column's text. This single character projection is narrower than
// the string-on-string case and is part of the language contract.
func (obj *SearchFunc) searchStrTable(query []rune, table []types.Value, cardinality, column int) types.Value {
	out := []types.Value{}
	for i := 0; i < len(query); i++ {
		count := 0
		matches := []types.Value{}
		for j, row := range table {
			cells := row.List()
			if column >= len(cells) {
				continue // row too short to match on this column
			}
			cell := []rune(types.Text(cells[column]))
			if len(cell) == 0 || cell[0] != query[i] {
				continue
			}
			count++
			if cardinality == 1 {
				out = append(out, &types.NumberValue{V: float64(j)})
				break
			}
			matches = append(matches, &types.NumberValue{V: float64(j)})
			if cardinality > 1 && count >= cardinality {
				break
			}
		}
		if count == 0 {
			obj.init.Logf("search term not found: %q", string(query[i]))
		}
		if cardinality != 1 {
			out = append(out, &types.ListValue{V: matches})
		}
	}
	return &types.ListValue{V: out}
}

// searchList applies the scalar row match rule independently to each element
// of a list query. With cardinality 1, a matched element contributes a bare
// index while an unmatched one warns and contributes an empty nested list,
// so the output mixes shapes. With any other cardinality every element
// contributes a nested list and nothing warns.
func (obj *SearchFunc) searchList(query []types.Value, table []types.Value, cardinality, column int) types.Value {
	out := []types.Value{}
	for _, q := range query {
		count := 0
		matches := []types.Value{}
		for j, row := range table {
			if !rowMatches(q, row, column) {
				continue
			}
			count++
			if cardinality == 1 {
				out = append(out, &types.NumberValue{V: float64(j)})
				break
			}
			matches = append(matches, &types.NumberValue{V: float64(j)})
			if cardinality > 1 && count >= cardinality {
				break
			}
		}
		if cardinality == 1 && count == 0 {
			switch q := q.(type) {
			case *types.NumberValue:
				obj.init.Logf("search term not found: %v", q.V)
			case *types.StrValue:
				obj.init.Logf("search term not found: %q", q.V)
			}
			out = append(out, &types.ListValue{V: matches}) // empty slot
		}
		if cardinality != 1 {
			out = append(out, &types.ListValue{V: matches})
		}
	}
	return &types.ListValue{V: out}
}
