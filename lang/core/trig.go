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
	"math"
)

// trigHugeVal is the magnitude beyond which reducing an angle to [0, 360)
// has lost all mantissa precision; the result would be meaningless, so the
// trig functions return NaN instead. It assumes a 52 bit mantissa.
const trigHugeVal = float64(1<<26) * 360.0 * float64(1<<26)

func init() {
	register1("sin", sinDeg)
	register1("cos", cosDeg)
	register1("tan", func(x float64) float64 { return math.Tan(deg2rad(x)) })
	register1("asin", func(x float64) float64 { return rad2deg(math.Asin(x)) })
	register1("acos", func(x float64) float64 { return rad2deg(math.Acos(x)) })
	register1("atan", func(x float64) float64 { return rad2deg(math.Atan(x)) })
	register2("atan2", func(y, x float64) float64 { return rad2deg(math.Atan2(y, x)) })
}

func deg2rad(x float64) float64 { return x * math.Pi / 180.0 }

func rad2deg(x float64) float64 { return x * 180.0 / math.Pi }

// reduceDeg folds an angle into [0, 360). The ok result is false when the
// angle is too huge (or not finite) for the reduction to mean anything.
func reduceDeg(x float64) (float64, bool) {
	// positive tests on purpose, so Inf and NaN fall through
	if x >= 0.0 && x < 360.0 {
		return x, true
	}
	if x > -trigHugeVal && x < trigHugeVal {
		return x - 360.0*math.Floor(x/360.0), true
	}
	return 0, false
}

// sinDeg is sine over degrees. Quadrant folding keeps the well known angles
// exact: sin(30) is exactly 0.5 and sin(45) exactly sqrt(1/2).
func sinDeg(x float64) float64 {
	x, ok := reduceDeg(x)
	if !ok {
		return math.NaN()
	}
	oppose := x >= 180.0
	if oppose {
		x -= 180.0
	}
	if x > 90.0 {
		x = 180.0 - x
	}
	switch {
	case x < 45.0:
		if x == 30.0 {
			x = 0.5
		} else {
			x = math.Sin(deg2rad(x))
		}
	case x == 45.0:
		x = math.Sqrt2 / 2.0
	default:
		x = math.Cos(deg2rad(90.0 - x))
	}
	if oppose {
		return -x
	}
	return x
}

// cosDeg is cosine over degrees, folded the same way as sinDeg.
func cosDeg(x float64) float64 {
	x, ok := reduceDeg(x)
	if !ok {
		return math.NaN()
	}
	oppose := x >= 180.0
	if oppose {
		x -= 180.0
	}
	if x > 90.0 {
		x = 180.0 - x
		oppose = !oppose
	}
	switch {
	case x > 45.0:
		if x == 60.0 {
			x = 0.5
		} else {
			x = math.Sin(deg2rad(90.0 - x))
		}
	case x == 45.0:
		x = math.Sqrt2 / 2.0
	default:
		x = math.Cos(deg2rad(x))
	}
	if oppose {
		return -x
	}
	return x
}
