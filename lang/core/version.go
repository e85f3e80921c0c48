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

// The language version, date based. A zero day means the release carries
// only a year and a month.
const (
	VersionYear  = 2021
	VersionMonth = 3
	VersionDay   = 0
)

func init() {
	simple.Register("version", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: Version,
	})
	simple.Register("version_num", &simple.Scaffold{
		I: &interfaces.Info{
			Pure: true,
			Memo: true,
		},
		F: VersionNum,
	})
}

// Version returns the language version as a [year, month] or
// [year, month, day] list.
func Version(ctx context.Context, args []types.Value) (types.Value, error) {
	val := []types.Value{
		&types.NumberValue{V: float64(VersionYear)},
		&types.NumberValue{V: float64(VersionMonth)},
	}
	if VersionDay != 0 {
		val = append(val, &types.NumberValue{V: float64(VersionDay)})
	}
	return &types.ListValue{V: val}, nil
}

// VersionNum returns the version as the single number y*10000 + m*100 + d.
// Without args it describes the language itself, with one arg it converts an
// explicit [y, m] or [y, m, d] value instead.
func VersionNum(ctx context.Context, args []types.Value) (types.Value, error) {
	var val types.Value
	if len(args) == 0 {
		v, err := Version(ctx, args)
		if err != nil {
			return nil, err
		}
		val = v
	} else {
		val = args[0]
	}
	y, m, d, ok := getVec3(val)
	if !ok {
		d = 0
		y, m, ok = getVec2(val)
		if !ok {
			return undef(), nil
		}
	}
	return &types.NumberValue{V: y*10000 + m*100 + d}, nil
}
