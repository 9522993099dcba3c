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

// HeavyDutyVehicle returns the hot emission factor, in g/km, of pollutant p
// for a heavy duty vehicle or bus (category cat) of segment t and class c,
// with load l on a road of slope s, driving at v km/h. Speeds outside of
// the domain of the formula are brought to the closest bound.
func (m *Model) HeavyDutyVehicle(p Pollutant, v float64, cat VehicleCategory, t HDVType, c HDVClass, l Load, s Slope) (float64, error) {
	if v == 0 {
		return 0, nil
	}
	if math.IsNaN(v) {
		return 0, domainf("speed is not a number")
	}
	if cat != HeavyDutyVehicle && cat != Bus {
		return 0, missingf("vehicle category %v is neither a heavy duty vehicle nor a bus", cat)
	}
	return clampEvaluate(m.repo.HeavyDuty(cat, t, c, p, l, s), v,
		"no %v formula for %v %v of class %v with %v load on a %v slope", p, cat, t, c, l, s)
}
