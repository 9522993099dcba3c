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
	"fmt"
	"math"
)

// FormulaID identifies the closed-form equation used to calculate a hot
// emission factor from the coefficients of a Row. The identifier alone
// decides which shape applies, even when one shape is an algebraic special
// case of another.
type FormulaID int

// NoFormula is the zero FormulaID, held by undefined rows.
const NoFormula FormulaID = 0

// Generic shapes, used with literal coefficients for pre-Euro vehicles.
const (
	Constant    FormulaID = iota + 1 // a
	Linear                           // a·V + b
	Quadratic                        // a·V² + b·V + c
	Power                            // a·V^b
	Exponential                      // a·exp(b·V)
	Logarithm                        // a + b·ln(V)
	Logistic                         // a + b / (1 + exp(-(V + c) / d))
)

// Passenger car equations of the EMEP/EEA emission inventory guidebook
// (2013 edition, September 2014 update), numbered as in the guidebook.
const (
	EF25 FormulaID = iota + 101
	EF26
	EF27
	EF28
	EF30
	EF31
)

// Light duty equations from the annex to the EMEP/EEA guidebook. All of
// them are multiplied by (1 - RF).
const (
	LDVEquation1 FormulaID = iota + 201
	LDVEquation2
	LDVEquation3
	LDVEquation4
	LDVEquation5
	LDVEquation6
	LDVEquation7
	LDVEquation8
	LDVEquation9
	LDVEquation10
	LDVEquation11
	LDVEquation12
	LDVEquation13
	LDVEquation14
	LDVEquation15
	LDVEquation16
	LDVEquation17
)

// Heavy duty vehicle and bus equations from the annex to the EMEP/EEA
// guidebook, numbered from zero as in the parameter file.
const (
	HDVEquation0 FormulaID = iota + 301
	HDVEquation1
	HDVEquation2
	HDVEquation3
	HDVEquation4
	HDVEquation5
	HDVEquation6
	HDVEquation7
	HDVEquation8
	HDVEquation9
	HDVEquation10
	HDVEquation11
	HDVEquation12
	HDVEquation13
	HDVEquation14
	HDVEquation15
)

// LDVEquation returns the identifier of light duty equation n (1 to 17).
func LDVEquation(n int) (FormulaID, error) {
	if n < 1 || n > 17 {
		return NoFormula, missingf("no light duty equation %d", n)
	}
	return LDVEquation1 + FormulaID(n-1), nil
}

// HDVEquation returns the identifier of heavy duty equation n (0 to 15).
func HDVEquation(n int) (FormulaID, error) {
	if n < 0 || n > 15 {
		return NoFormula, missingf("no heavy duty equation %d", n)
	}
	return HDVEquation0 + FormulaID(n), nil
}

func (id FormulaID) String() string {
	switch {
	case id == NoFormula:
		return "none"
	case id >= Constant && id <= Logistic:
		return []string{"constant", "linear", "quadratic", "power",
			"exponential", "logarithm", "logistic"}[id-Constant]
	case id >= EF25 && id <= EF31:
		return []string{"EF_25", "EF_26", "EF_27", "EF_28", "EF_30", "EF_31"}[id-EF25]
	case id >= LDVEquation1 && id <= LDVEquation17:
		return fmt.Sprintf("Equation %d", id-LDVEquation1+1)
	case id >= HDVEquation0 && id <= HDVEquation15:
		return fmt.Sprintf("HDV equation %d", id-HDVEquation0)
	}
	return fmt.Sprintf("FormulaID(%d)", int(id))
}

// Formula calculates a hot emission factor from the coefficients in r at
// speed v. Formulas never clamp v; it must already be within the domain
// of r.
type Formula func(r Row, v float64) float64

// Evaluate calculates formula id for the coefficients in r at speed v.
func Evaluate(id FormulaID, r Row, v float64) (float64, error) {
	f, ok := library[id]
	if !ok {
		return 0, missingf("formula %v is not registered", id)
	}
	return f(r, v), nil
}

// Registered reports whether id has an implementation.
func Registered(id FormulaID) bool {
	_, ok := library[id]
	return ok
}

var library = map[FormulaID]Formula{
	Constant:    func(r Row, _ float64) float64 { return r.A },
	Linear:      func(r Row, v float64) float64 { return r.A*v + r.B },
	Quadratic:   func(r Row, v float64) float64 { return quadratic(r.A, r.B, r.C, v) },
	Power:       func(r Row, v float64) float64 { return r.A * math.Pow(v, r.B) },
	Exponential: func(r Row, v float64) float64 { return r.A * math.Exp(r.B*v) },
	Logarithm:   func(r Row, v float64) float64 { return r.A + r.B*math.Log(v) },
	Logistic:    logistic,

	EF25: func(r Row, v float64) float64 {
		return (r.A + r.C*v + r.E*v*v) / (1 + r.B*v + r.D*v*v)
	},
	EF26: func(r Row, v float64) float64 { return quintic(r, v) },
	EF27: func(r Row, v float64) float64 { return rationalWithInverse(r, v) },
	EF28: func(r Row, v float64) float64 { return twoPowers(r, v) },
	EF30: func(r Row, v float64) float64 {
		return (r.A+r.C*v+r.E*v*v)/(1+r.B*v+r.D*v*v) + r.F/v
	},
	EF31: func(r Row, v float64) float64 { return logLogistic(r, v) },

	LDVEquation1: reduced(rationalWithInverse),
	LDVEquation2: reduced(mixed),
	LDVEquation3: reduced(logistic),
	LDVEquation4: reduced(func(r Row, v float64) float64 { return r.A * math.Pow(v, r.B) }),
	LDVEquation5: func(r Row, v float64) float64 { return mixed(r, v) * (1 - r.RF) / 1000 },
	LDVEquation6: reduced(logLogistic),
	LDVEquation7: reduced(cubic),
	LDVEquation8: reduced(geometricPower),
	LDVEquation9: reduced(twoPowers),
	LDVEquation10: reduced(func(r Row, v float64) float64 {
		return 1 / (r.A + r.B*math.Pow(v, r.C))
	}),
	LDVEquation11: reduced(func(r Row, v float64) float64 { return math.Pow(r.A+r.B*v, -1/r.C) }),
	LDVEquation12: reduced(func(r Row, v float64) float64 { return 1 / quadratic(r.C, r.B, r.A, v) }),
	LDVEquation13: reduced(expLog),
	LDVEquation14: reduced(twoExponentials),
	LDVEquation15: reduced(func(r Row, v float64) float64 { return quadratic(r.A, r.B, r.C, v) }),
	LDVEquation16: reduced(stretchedExponential),
	LDVEquation17: reduced(quintic),

	HDVEquation0: geometricPower,
	HDVEquation1: twoPowers,
	HDVEquation2: func(r Row, x float64) float64 { return math.Pow(r.A+r.B*x, -1/r.C) },
	HDVEquation3: func(r Row, x float64) float64 {
		return (r.A + r.B*x) + (r.C-r.B)*(1-math.Exp(-r.D*x))/r.D
	},
	HDVEquation4: twoExponentials,
	HDVEquation5: func(r Row, x float64) float64 { return 1 / quadratic(r.C, r.B, r.A, x) },
	HDVEquation6: func(r Row, x float64) float64 { return 1 / (r.A + r.B*math.Pow(x, r.C)) },
	HDVEquation7: func(r Row, x float64) float64 { return 1 / (r.A + r.B*x) },
	HDVEquation8: stretchedExponential,
	HDVEquation9: func(r Row, x float64) float64 {
		return r.A / (1 + r.B*math.Exp(-r.C*x))
	},
	HDVEquation10: logLogistic,
	HDVEquation11: func(r Row, x float64) float64 { return r.C + r.A*math.Exp(-r.B*x) },
	HDVEquation12: func(r Row, x float64) float64 { return r.C + r.A*math.Exp(r.B*x) },
	HDVEquation13: expLog,
	HDVEquation14: cubic,
	HDVEquation15: func(r Row, x float64) float64 { return quadratic(r.A, r.B, r.C, x) },
}

// reduced multiplies f by (1 - RF).
func reduced(f Formula) Formula {
	return func(r Row, v float64) float64 { return f(r, v) * (1 - r.RF) }
}

func quadratic(a, b, c, v float64) float64 { return a*v*v + b*v + c }

func logistic(r Row, v float64) float64 { return r.A + r.B/(1+math.Exp(-(v+r.C)/r.D)) }

// cubic is a·V³ + b·V² + c·V + d.
func cubic(r Row, v float64) float64 { return ((r.A*v+r.B)*v+r.C)*v + r.D }

// quintic is a·V⁵ + b·V⁴ + c·V³ + d·V² + e·V + f.
func quintic(r Row, v float64) float64 {
	return ((((r.A*v+r.B)*v+r.C)*v+r.D)*v+r.E)*v + r.F
}

// rationalWithInverse is (a + c·V + e·V² + f/V) / (1 + b·V + d·V²).
func rationalWithInverse(r Row, v float64) float64 {
	return (r.A + r.C*v + r.E*v*v + r.F/v) / (1 + r.B*v + r.D*v*v)
}

// twoPowers is a·V^b + c·V^d.
func twoPowers(r Row, v float64) float64 {
	return r.A*math.Pow(v, r.B) + r.C*math.Pow(v, r.D)
}

// logLogistic is a + b / (1 + exp(-c + d·ln(V) + e·V)).
func logLogistic(r Row, v float64) float64 {
	return r.A + r.B/(1+math.Exp(-r.C+r.D*math.Log(v)+r.E*v))
}

// mixed is a·V² + b·V + c + d·ln(V) + e·exp(f·V) + g·V^h.
func mixed(r Row, v float64) float64 {
	return r.A*v*v + r.B*v + r.C + r.D*math.Log(v) + r.E*math.Exp(r.F*v) + r.G*math.Pow(v, r.H)
}

// geometricPower is a·b^V·V^c.
func geometricPower(r Row, v float64) float64 {
	return r.A * math.Pow(r.B, v) * math.Pow(v, r.C)
}

// expLog is exp(a + b/V + c·ln(V)).
func expLog(r Row, v float64) float64 { return math.Exp(r.A + r.B/v + r.C*math.Log(v)) }

// twoExponentials is e + a·exp(-b·V) + c·exp(-d·V).
func twoExponentials(r Row, v float64) float64 {
	return r.E + r.A*math.Exp(-r.B*v) + r.C*math.Exp(-r.D*v)
}

// stretchedExponential is a - b·exp(-c·V^d).
func stretchedExponential(r Row, v float64) float64 {
	return r.A - r.B*math.Exp(-r.C*math.Pow(v, r.D))
}
