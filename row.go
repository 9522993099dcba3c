/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.*/

package copert

import (
	"math"
)

// Row holds the coefficients of one formula for one combination of
// vehicle, emission standard and pollutant, along with the speed range
// the formula is valid over.
//
// A Row is either fully defined, when created by NewRow, or undefined,
// when it is the zero value. Repositories return the zero value when
// they have no data for a combination.
type Row struct {
	// A through H are the formula coefficients. Formulas only use the
	// coefficients they need, the rest are zero.
	A, B, C, D, E, F, G, H float64

	// RF is the reduction factor applied by the light duty equations
	// as (1 - RF).
	RF float64

	// VMin and VMax are the bounds of the speed domain in km/h.
	VMin, VMax float64

	// Formula is the equation the coefficients belong to.
	Formula FormulaID

	defined bool
}

// NewRow creates a defined row for formula f valid between vMin and vMax
// km/h, with reduction factor rf and up to eight coefficients, which are
// assigned to A through H in order. It returns an error wrapping ErrParse
// if any value is not finite, the domain is empty or f is not a
// registered formula.
func NewRow(f FormulaID, vMin, vMax, rf float64, coefficients ...float64) (Row, error) {
	if !Registered(f) {
		return Row{}, parsef("formula %v is not registered", f)
	}
	if len(coefficients) > 8 {
		return Row{}, parsef("%d coefficients given for %v but at most 8 are allowed", len(coefficients), f)
	}
	var c [8]float64
	copy(c[:], coefficients)
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Row{}, parsef("coefficient %c of %v is %g", 'a'+i, f, v)
		}
	}
	for _, v := range []float64{vMin, vMax, rf} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Row{}, parsef("non-finite domain or reduction factor for %v: [%g, %g], rf=%g", f, vMin, vMax, rf)
		}
	}
	if vMin > vMax {
		return Row{}, parsef("empty speed domain [%g, %g] for %v", vMin, vMax, f)
	}
	return Row{
		A: c[0], B: c[1], C: c[2], D: c[3], E: c[4], F: c[5], G: c[6], H: c[7],
		RF: rf, VMin: vMin, VMax: vMax, Formula: f,
		defined: true,
	}, nil
}

// mustRow is NewRow for the reference tables compiled into this package.
func mustRow(f FormulaID, vMin, vMax float64, coefficients ...float64) Row {
	r, err := NewRow(f, vMin, vMax, 0, coefficients...)
	if err != nil {
		panic(err)
	}
	return r
}

// Defined reports whether r holds coefficients.
func (r Row) Defined() bool { return r.defined }

// Coefficients returns A through H.
func (r Row) Coefficients() [8]float64 {
	return [8]float64{r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H}
}

// Clamp returns v limited to the speed domain of r.
func (r Row) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.VMin), r.VMax)
}

// Evaluate calculates the formula of r at speed v without clamping.
// Undefined rows return an error wrapping ErrUndefinedCombination.
func (r Row) Evaluate(v float64) (float64, error) {
	if !r.defined {
		return 0, undefinedf("no coefficients available")
	}
	return Evaluate(r.Formula, r, v)
}
