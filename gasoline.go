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

import "math"

// GasolinePassengerCar returns the hot emission factor, in g/km, of
// pollutant p for a gasoline passenger car of class c with an engine
// capacity of capacity liters, driving at v km/h.
func (m *Model) GasolinePassengerCar(p Pollutant, v float64, c Class, capacity float64) (float64, error) {
	if v == 0 {
		return 0, nil
	}
	if err := passengerCarSpeed(v); err != nil {
		return 0, err
	}
	if !c.valid() {
		return 0, missingf("invalid passenger car class %v", c)
	}
	if c.PreEuro() {
		return gasolinePreEuroFactor(p, v, c, capacity)
	}
	if p == PM && c <= Euro4 {
		switch {
		case c <= Euro2:
			return bracket(gasolinePMEuro1, v), nil
		case c == Euro3GDI:
			return bracket(gasolinePMGDI, v), nil
		default:
			return bracket(gasolinePMEuro3, v), nil
		}
	}
	if _, err := EuroIndex(c); err != nil {
		return 0, err
	}
	row := m.repo.GasolinePassengerCar(p, c)
	if !row.Defined() {
		return 0, undefinedf("no %v formula for gasoline passenger cars of class %v", p, c)
	}
	return row.Evaluate(v)
}

func gasolinePreEuroFactor(p Pollutant, v float64, c Class, capacity float64) (float64, error) {
	if math.IsNaN(capacity) || capacity < minPreEuroGasolineCapacity {
		return 0, domainf("no formula for gasoline passenger cars of class %v with an engine capacity of %g l, which is below %g l",
			c, capacity, minPreEuroGasolineCapacity)
	}
	if (c == ImprovedConventional || c == OpenLoop) && capacity > maxImprovedCapacity {
		return 0, domainf("no formula for gasoline passenger cars of class %v with an engine capacity of %g l, which is above %g l",
			c, capacity, maxImprovedCapacity)
	}
	rule, ok := gasolinePreEuro[preEuroKey{c, p, CapacityBandOf(capacity)}]
	if !ok {
		return 0, undefinedf("no %v formula for gasoline passenger cars of class %v", p, c)
	}
	return rule.row(v).Evaluate(v)
}

// gasolineEuroFormula returns the equation used with the coefficients of
// a gasoline passenger car of class c, which must be Euro 1 or later.
func gasolineEuroFormula(p Pollutant, c Class) FormulaID {
	if c <= Euro4 {
		return EF25
	}
	switch p {
	case CO, PM:
		return EF26
	case NOx:
		return EF27
	case HC:
		if c == Euro5 {
			return EF28
		}
		return EF26
	}
	return NoFormula
}

// passengerCarSpeed checks that v is within the domain of the passenger car
// formulas.
func passengerCarSpeed(v float64) error {
	if math.IsNaN(v) || v < minPassengerCarSpeed || v > maxPassengerCarSpeed {
		return domainf("no passenger car formula for a speed of %g km/h, which is outside of [%g, %g] km/h",
			v, minPassengerCarSpeed, maxPassengerCarSpeed)
	}
	return nil
}
