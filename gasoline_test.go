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

func TestGasolinePassengerCar(t *testing.T) {
	m := testModel(t)
	tests := []struct {
		name     string
		p        Pollutant
		v        float64
		c        Class
		capacity float64
		want     float64
	}{
		{name: "PRE_ECE CO below 100 km/h", p: CO, v: 80, c: PreECE, capacity: 1.5, want: 17.77295446050209}, // 281·80^-0.63
		{name: "PRE_ECE CO above 100 km/h", p: CO, v: 110, c: PreECE, capacity: 1.5, want: 16.64},
		{name: "PRE_ECE CO at 100 km/h", p: CO, v: 100, c: PreECE, capacity: 1.5, want: 15.52},
		{name: "PRE_ECE VOC", p: VOC, v: 120, c: PreECE, capacity: 1.5, want: 1.247},
		{name: "PRE_ECE NOx large", p: NOx, v: 50, c: PreECE, capacity: 2.5, want: 3.25},
		{name: "ECE_15_03 CO below 20 km/h", p: CO, v: 15, c: ECE1503, capacity: 1, want: 37.81874982571719},
		{name: "ECE_15_03 CO", p: CO, v: 20, c: ECE1503, capacity: 1, want: 25.828},
		{name: "ECE_15_03 NOx", p: NOx, v: 50, c: ECE1503, capacity: 1.6, want: 2.116242728383587},
		{name: "improved conventional NOx", p: NOx, v: 50, c: ImprovedConventional, capacity: 1, want: 1.8867445409028365},
		{name: "improved conventional CO 2.0 l", p: CO, v: 50, c: ImprovedConventional, capacity: 2, want: 3.1155},
		{name: "Euro 1 PM urban", p: PM, v: 60, c: Euro1, want: 3.22e-3},
		{name: "Euro 2 PM rural", p: PM, v: 70, c: Euro2, want: 1.84e-3},
		{name: "Euro 2 PM highway", p: PM, v: 90.5, c: Euro2, want: 1.90e-3},
		{name: "Euro 3 GDI PM urban", p: PM, v: 30, c: Euro3GDI, want: 6.6e-3},
		{name: "Euro 3 GDI PM rural", p: PM, v: 90, c: Euro3GDI, want: 2.96e-3},
		{name: "Euro 3 GDI PM highway", p: PM, v: 130, c: Euro3GDI, want: 6.95e-3},
		{name: "Euro 3 PM", p: PM, v: 50, c: Euro3, want: 1.28e-3},
		{name: "Euro 4 PM", p: PM, v: 120, c: Euro4, want: 1.19e-3},
		{name: "Euro 4 CO", p: CO, v: 50, c: Euro4, want: 0.21786777843954735},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have, err := m.GasolinePassengerCar(test.p, test.v, test.c, test.capacity)
			if err != nil {
				t.Fatal(err)
			}
			if different(have, test.want) {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestGasolinePassengerCarErrors(t *testing.T) {
	m := testModel(t)
	tests := []struct {
		name     string
		p        Pollutant
		c        Class
		capacity float64
		err      error
	}{
		{name: "pre-Euro HC", p: HC, c: PreECE, capacity: 1.5, err: ErrUndefinedCombination},
		{name: "pre-Euro PM", p: PM, c: ECE1504, capacity: 1.5, err: ErrUndefinedCombination},
		{name: "pre-Euro FC", p: FC, c: OpenLoop, capacity: 1.5, err: ErrUndefinedCombination},
		{name: "improved conventional above 2.0 l", p: CO, c: ImprovedConventional, capacity: 2.1, err: ErrOutOfDomain},
		{name: "open loop above 2.0 l", p: NOx, c: OpenLoop, capacity: 3, err: ErrOutOfDomain},
		{name: "open loop below 0.8 l", p: NOx, c: OpenLoop, capacity: 0.7, err: ErrOutOfDomain},
		{name: "Euro 3 GDI CO", p: CO, c: Euro3GDI, err: ErrMissingClassification},
		{name: "Euro 3 GDI VOC", p: VOC, c: Euro3GDI, err: ErrMissingClassification},
		{name: "Euro 5 VOC", p: VOC, c: Euro5, err: ErrUndefinedCombination},
		{name: "Euro 6 FC", p: FC, c: Euro6, err: ErrUndefinedCombination},
		{name: "unknown class", p: CO, c: Class(99), err: ErrMissingClassification},
		{name: "negative class PM", p: PM, c: Class(-1), capacity: 1.6, err: ErrMissingClassification},
		{name: "negative class CO", p: CO, c: Class(-7), capacity: 1.6, err: ErrMissingClassification},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.GasolinePassengerCar(test.p, 50, test.c, test.capacity)
			if !errors.Is(err, test.err) {
				t.Errorf("have error %v, want %v", err, test.err)
			}
		})
	}
}

// Engines below 0.8 l have no pre-Euro formula, whatever the pollutant
// and speed.
func TestGasolineSmallEngine(t *testing.T) {
	m := testModel(t)
	for _, c := range []Class{PreECE, ECE1500Or01, ECE1502, ECE1503, ECE1504, ImprovedConventional, OpenLoop} {
		for _, p := range allPollutants {
			for v := 10.; v <= 130; v += 5 {
				if _, err := m.GasolinePassengerCar(p, v, c, 0.5); !errors.Is(err, ErrOutOfDomain) {
					t.Errorf("%v %v at %g km/h: have error %v", c, p, v, err)
				}
			}
		}
	}
}

// Every pre-Euro class has CO, VOC and NOx formulas for every engine band
// it supports.
func TestGasolinePreEuroComplete(t *testing.T) {
	for _, c := range []Class{PreECE, ECE1500Or01, ECE1502, ECE1503, ECE1504, ImprovedConventional, OpenLoop} {
		for _, p := range []Pollutant{CO, VOC, NOx} {
			for b := CapacityLess1_4; b <= CapacityMore2_0; b++ {
				if _, ok := gasolinePreEuro[preEuroKey{c, p, b}]; !ok {
					t.Errorf("missing rule for %v %v %v", c, p, b)
				}
			}
		}
	}
	if len(gasolinePreEuro) != 7*3*3 {
		t.Errorf("have %d rules, want %d", len(gasolinePreEuro), 7*3*3)
	}
}
