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

// LightCommercialVehicle returns the hot emission factor, in g/km, of
// pollutant p for a light commercial vehicle with engine type e and class c
// driving at v km/h. Speeds outside of the domain of the formula are
// brought to the closest bound.
func (m *Model) LightCommercialVehicle(p Pollutant, v float64, e EngineType, c Class) (float64, error) {
	if e != Gasoline && e != Diesel {
		return 0, missingf("no light commercial vehicle formulas for engine type %v", e)
	}
	if v == 0 {
		return 0, nil
	}
	if math.IsNaN(v) {
		return 0, domainf("speed is not a number")
	}
	switch {
	case c == ImprovedConventional || c == Euro1:
		if p == HC || (e == Gasoline && p == PM) {
			return 0, undefinedf("no %v formula for %v light commercial vehicles of class %v", p, e, c)
		}
		return clampEvaluate(m.repo.LightCommercialPreEuro1(e, p, c), v,
			"no %v formula for %v light commercial vehicles of class %v", p, e, c)
	case c == Euro3GDI:
		return 0, missingf("class %v does not exist for light commercial vehicles", c)
	case c >= Euro2 && c <= Euro4:
		if p == HC || p == FC {
			return 0, undefinedf("no %v formula for light commercial vehicles of class %v", p, c)
		}
		ef, err := m.LightCommercialVehicle(p, v, e, Euro1)
		if err != nil {
			return 0, err
		}
		pct, ok := m.repo.LightCommercialReduction(e, c, p)
		if !ok {
			return 0, undefinedf("no %v reduction for %v light commercial vehicles of class %v", p, e, c)
		}
		return ef * (1 - pct/100), nil
	case c >= Euro5 && c <= Euro6c:
		return clampEvaluate(m.repo.LightDuty(e, c, p), v,
			"no %v formula for %v light commercial vehicles of class %v", p, e, c)
	}
	return 0, missingf("no light commercial vehicle formulas for class %v", c)
}

// clampEvaluate evaluates r at v brought into its domain, or returns an
// undefined combination error with the given message if r is undefined.
func clampEvaluate(r Row, v float64, format string, args ...interface{}) (float64, error) {
	if !r.Defined() {
		return 0, undefinedf(format, args...)
	}
	return r.Evaluate(r.Clamp(v))
}
