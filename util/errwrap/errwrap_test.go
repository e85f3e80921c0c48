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

package errwrap

import (
	"fmt"
	"strings"
	"testing"
)

func TestWrapf(t *testing.T) {
	if err := Wrapf(nil, "whatever: %d", 42); err != nil {
		t.Errorf("expected nil result")
	}

	err := Wrapf(fmt.Errorf("inner"), "outer: %d", 42)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if s := err.Error(); !strings.Contains(s, "inner") || !strings.Contains(s, "outer: 42") {
		t.Errorf("unexpected message: %s", s)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Errorf("expected nil result")
	}

	reterr := fmt.Errorf("reterr")
	if err := Append(reterr, nil); err != reterr {
		t.Errorf("expected reterr")
	}
	if err := Append(nil, reterr); err != reterr {
		t.Errorf("expected reterr")
	}

	err := Append(fmt.Errorf("one"), fmt.Errorf("two"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if s := err.Error(); !strings.Contains(s, "one") || !strings.Contains(s, "two") {
		t.Errorf("unexpected message: %s", s)
	}
}

func TestString(t *testing.T) {
	var err error
	if String(err) != "" {
		t.Errorf("expected empty result")
	}

	msg := "this is an error"
	if String(fmt.Errorf(msg)) != msg {
		t.Errorf("expected different result")
	}
}
