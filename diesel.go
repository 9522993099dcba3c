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

// DieselPassengerCar returns the hot emission factor, in g/km, of
// pollutant p for a diesel passenger car of class c with an engine
// capacity of capacity liters, driving at v km/h.
func (m *Model) DieselPassengerCar(p Pollutant, v float64, c Class, capacity float64) (float64, error) {
	if c == Euro3GDI {
		return 0, undefinedf("class %v does not exist for diesel passenger cars", c)
	}
	if v == 0 {
		return 0, nil
	}
	if err := passengerCarSpeed(v); err != nil {
		return 0, err
	}
	if math.IsNaN(capacity) {
		return 0, domainf("engine capacity is not a number")
	}
	if c.PreEuro() {
		rows, ok := dieselPreEuro[p]
		if !ok {
			return 0, undefinedf("no %v formula for diesel passenger cars of class %v", p, c)
		}
		if capacity <= dieselPreEuroSplit {
			return rows[0].Evaluate(v)
		}
		return rows[1].Evaluate(v)
	}
	if _, err := EuroIndex(c); err != nil {
		return 0, err
	}
	if p == CO && c == Euro4 {
		return dieselEuro4CO.Evaluate(v)
	}
	b := CapacityBandOf(capacity)
	row := m.repo.DieselPassengerCar(p, c, b)
	if !row.Defined() {
		return 0, undefinedf("no %v formula for diesel passenger cars of class %v with an engine capacity of %v",
			p, c, b)
	}
	return row.Evaluate(v)
}

// dieselEuroFormula returns the equation used with the coefficients of
// a diesel passenger car of class c, which must be Euro 1 or later.
func dieselEuroFormula(p Pollutant, c Class) FormulaID {
	switch {
	case c <= Euro4:
		return EF30
	case c == Euro5 && p == PM:
		return EF31
	case c > Euro5 && p == CO:
		return EF26
	}
	return EF27
}
