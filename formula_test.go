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
	"errors"
	"testing"
)

func TestFormulaRegistry(t *testing.T) {
	var ids []FormulaID
	for id := Constant; id <= Logistic; id++ {
		ids = append(ids, id)
	}
	for id := EF25; id <= EF31; id++ {
		ids = append(ids, id)
	}
	for n := 1; n <= 17; n++ {
		id, err := LDVEquation(n)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for n := 0; n <= 15; n++ {
		id, err := HDVEquation(n)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if len(ids) != len(library) {
		t.Errorf("%d formulas registered but %d expected", len(library), len(ids))
	}
	for _, id := range ids {
		if !Registered(id) {
			t.Errorf("%v is not registered", id)
		}
	}
	if Registered(NoFormula) {
		t.Error("NoFormula should not be registered")
	}
	if _, err := Evaluate(NoFormula, Row{}, 50); !errors.Is(err, ErrMissingClassification) {
		t.Errorf("have error %v", err)
	}
	for _, n := range []int{0, 18} {
		if _, err := LDVEquation(n); !errors.Is(err, ErrMissingClassification) {
			t.Errorf("light duty equation %d: have error %v", n, err)
		}
	}
	for _, n := range []int{-1, 16} {
		if _, err := HDVEquation(n); !errors.Is(err, ErrMissingClassification) {
			t.Errorf("heavy duty equation %d: have error %v", n, err)
		}
	}
}

func TestFormulaString(t *testing.T) {
	for _, test := range []struct {
		id   FormulaID
		want string
	}{
		{NoFormula, "none"},
		{Power, "power"},
		{Logistic, "logistic"},
		{EF28, "EF_28"},
		{LDVEquation12, "Equation 12"},
		{HDVEquation0, "HDV equation 0"},
		{FormulaID(1000), "FormulaID(1000)"},
	} {
		if have := test.id.String(); have != test.want {
			t.Errorf("have %q, want %q", have, test.want)
		}
	}
}

func TestFormulas(t *testing.T) {
	const v = 50.
	for _, test := range []struct {
		id   FormulaID
		row  Row
		want float64
	}{
		{Constant, Row{A: 1.247}, 1.247},
		{Linear, Row{A: 0.112, B: 4.32}, 9.92},
		{Quadratic, Row{A: 0.0001, B: 0.03, C: 1.5}, 3.25},
		{Power, Row{A: 2, B: 0.5}, 14.142135623730951},
		{Logistic, Row{A: 0.5, B: 2, C: 10, D: 20}, 2.4051482536448665},
		{EF25, Row{A: 1, B: 0.01, C: 0.1, D: 0, E: 0.001}, 8.5 / 1.5},
		{EF26, Row{E: 2, F: 1}, 101},
		{EF27, Row{A: 1, F: 50}, 2},
		{EF28, Row{A: 1, B: 1, C: 2, D: 0}, 52},
		{EF30, Row{A: 1, F: 50}, 2},
		{EF31, Row{A: 1, B: 2, C: 3, D: 0.5, E: 0.01}, 2.2654795101922582},
		{LDVEquation1, Row{A: 1, F: 50, RF: 0.5}, 1},
		{LDVEquation3, Row{A: 0.5, B: 2, C: 10, D: 20}, 2.4051482536448665},
		{LDVEquation5, Row{A: 0.001, B: 0.1, C: 2, D: 0.5, E: 1, F: 0.01, G: 2, H: 0.5, RF: 0.25}, 0.020435151297858865},
		{LDVEquation7, Row{A: 0, B: 0, C: 2, D: 1}, 101},
		{LDVEquation10, Row{A: 0.5, B: 0.01, C: 1}, 1},
		{LDVEquation12, Row{A: 1, B: 0.02, C: 0}, 0.5},
		{LDVEquation13, Row{A: 1, B: 10, C: 0.5}, 23.47677190399225},
		{LDVEquation15, Row{A: 0.001, B: -0.1, C: 5, RF: 0.2}, 2},
		{LDVEquation17, Row{E: 2, F: 1, RF: 1}, 0},
		{HDVEquation0, Row{A: 2, B: 1, C: -0.5}, 0.28284271247461906},
		{HDVEquation3, Row{A: 1, B: 0.1, C: 2, D: 0.05}, 40.880770052291844},
		{HDVEquation4, Row{A: 2, B: 0.1, C: 3, D: 0.01, E: 1}, 2.8330678731360712},
		{HDVEquation7, Row{A: 0.5, B: 0.01}, 1},
		{HDVEquation8, Row{A: 5, B: 2, C: 0.1, D: 0.8}, 4.796762102876834},
		{HDVEquation11, Row{A: 2, B: 0, C: 1}, 3},
		{HDVEquation14, Row{C: 2, D: 1}, 101},
		{HDVEquation15, Row{A: 0.0005, B: -0.08, C: 6}, 3.25},
	} {
		t.Run(test.id.String(), func(t *testing.T) {
			have, err := Evaluate(test.id, test.row, v)
			if err != nil {
				t.Fatal(err)
			}
			if different(have, test.want) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

// The identifier decides the shape even when the coefficients would
// also fit another one.
func TestFormulaIdentifierDecides(t *testing.T) {
	r := Row{A: 2, B: 3, C: 4}
	q, _ := Evaluate(Quadratic, r, 10)
	p, _ := Evaluate(Power, r, 10)
	if q == p {
		t.Errorf("quadratic and power should differ: %g", q)
	}
	hdv, _ := Evaluate(HDVEquation15, r, 10)
	if hdv != q {
		t.Errorf("heavy duty equation 15 should be quadratic: have %g, want %g", hdv, q)
	}
}
