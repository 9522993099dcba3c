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
	"math"
	"testing"
)

func TestHeavyDutyVehicle(t *testing.T) {
	m := testModel(t)
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{name: "in domain", v: 50, want: 3.25},
		{name: "below domain", v: 5, want: 5.112},
		{name: "above domain", v: 100, want: 2.818},
		{name: "zero", v: 0, want: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := m.HeavyDutyVehicle(NOx, test.v, HeavyDutyVehicle, HDVRigid14To20t, HDVEuroIII, Load50, Slope0)
			if err != nil {
				t.Fatal(err)
			}
			if different(have, test.want) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}

	have, err := m.HeavyDutyVehicle(CO, 4, Bus, BusUrban15To18t, HDVEuroVEGR, Load0, SlopeMinus2)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 / math.Sqrt(11); different(have, want) {
		t.Errorf("bus: have %g, want %g", have, want)
	}
}

func TestHeavyDutyVehicleErrors(t *testing.T) {
	m := testModel(t)
	tests := []struct {
		name string
		p    Pollutant
		v    float64
		cat  VehicleCategory
		c    HDVClass
		l    Load
		err  error
	}{
		{name: "no equation", p: PM, v: 50, cat: HeavyDutyVehicle, c: HDVEuroIII, l: Load50, err: ErrUndefinedCombination},
		{name: "no record", p: NOx, v: 50, cat: HeavyDutyVehicle, c: HDVEuroIV, l: Load50, err: ErrUndefinedCombination},
		{name: "other load", p: NOx, v: 50, cat: HeavyDutyVehicle, c: HDVEuroIII, l: Load100, err: ErrUndefinedCombination},
		{name: "bus category", p: NOx, v: 50, cat: Bus, c: HDVEuroIII, l: Load50, err: ErrUndefinedCombination},
		{name: "passenger car", p: NOx, v: 50, cat: PassengerCar, c: HDVEuroIII, l: Load50, err: ErrMissingClassification},
		{name: "NaN speed", p: NOx, v: math.NaN(), cat: HeavyDutyVehicle, c: HDVEuroIII, l: Load50, err: ErrOutOfDomain},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.HeavyDutyVehicle(test.p, test.v, test.cat, HDVRigid14To20t, test.c, test.l, Slope0)
			if !errors.Is(err, test.err) {
				t.Errorf("have error %v, want %v", err, test.err)
			}
		})
	}
}
