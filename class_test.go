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

func TestCapacityBandOf(t *testing.T) {
	for _, test := range []struct {
		l    float64
		want CapacityBand
	}{
		{0.8, CapacityLess1_4},
		{1.39, CapacityLess1_4},
		{1.4, Capacity1_4To2_0},
		{1.99, Capacity1_4To2_0},
		{2.0, CapacityMore2_0},
		{3.5, CapacityMore2_0},
	} {
		if have := CapacityBandOf(test.l); have != test.want {
			t.Errorf("%g l: have %v, want %v", test.l, have, test.want)
		}
	}
}

func TestEuroIndex(t *testing.T) {
	for i, c := range []Class{Euro1, Euro2, Euro3, Euro4, Euro5, Euro6, Euro6c} {
		have, err := EuroIndex(c)
		if err != nil {
			t.Fatal(err)
		}
		if have != i {
			t.Errorf("%v: have %d, want %d", c, have, i)
		}
	}
	for _, c := range []Class{PreECE, OpenLoop, Euro3GDI, Class(99)} {
		if _, err := EuroIndex(c); !errors.Is(err, ErrMissingClassification) {
			t.Errorf("%v: have error %v", c, err)
		}
	}
}

func TestClassOrder(t *testing.T) {
	if !(Euro3 < Euro3GDI && Euro3GDI < Euro4) {
		t.Error("Euro3GDI should sort between Euro3 and Euro4")
	}
	for _, c := range allClasses() {
		if have, want := c.PreEuro(), c < Euro1; have != want {
			t.Errorf("%v: PreEuro() = %v", c, have)
		}
	}
}

func TestParseNames(t *testing.T) {
	for _, p := range allPollutants {
		if have, err := ParsePollutant(p.String()); err != nil || have != p {
			t.Errorf("pollutant %v: have %v, %v", p, have, err)
		}
	}
	for c := PassengerCar; c <= Motorcycle; c++ {
		if have, err := ParseVehicleCategory(c.String()); err != nil || have != c {
			t.Errorf("category %v: have %v, %v", c, have, err)
		}
	}
	for e := Gasoline; e <= FourStrokeMore750; e++ {
		if have, err := ParseEngineType(e.String()); err != nil || have != e {
			t.Errorf("engine %v: have %v, %v", e, have, err)
		}
	}
	for _, c := range allClasses() {
		if have, err := ParseClass(c.String()); err != nil || have != c {
			t.Errorf("class %v: have %v, %v", c, have, err)
		}
	}
	for c := HDVConventional; c <= HDVEuroVI; c++ {
		if have, err := ParseHDVClass(c.String()); err != nil || have != c {
			t.Errorf("heavy duty class %v: have %v, %v", c, have, err)
		}
	}
	for ty := HDVGasolineMore3_5t; ty <= CoachArticulatedMore18t; ty++ {
		if have, err := ParseHDVType(ty.String()); err != nil || have != ty {
			t.Errorf("heavy duty type %v: have %v, %v", ty, have, err)
		}
	}
	for l := Load0; l <= Load100; l++ {
		if have, err := ParseLoad(l.String()); err != nil || have != l {
			t.Errorf("load %v: have %v, %v", l, have, err)
		}
	}
	for s := Slope0; s <= Slope6; s++ {
		if have, err := ParseSlope(s.String()); err != nil || have != s {
			t.Errorf("slope %v: have %v, %v", s, have, err)
		}
	}
}

func TestParseAliases(t *testing.T) {
	if c, err := ParseClass("Euro6c"); err != nil || c != Euro6c {
		t.Errorf("Euro6c: have %v, %v", c, err)
	}
	if c, err := ParseClass("euro 3 gdi"); err != nil || c != Euro3GDI {
		t.Errorf("euro 3 gdi: have %v, %v", c, err)
	}
	if c, err := ParseHDVClass("EuroVSCR"); err != nil || c != HDVEuroVSCR {
		t.Errorf("EuroVSCR: have %v, %v", c, err)
	}
	if l, err := ParseLoad("50"); err != nil || l != Load50 {
		t.Errorf("50: have %v, %v", l, err)
	}
	if s, err := ParseSlope("-4"); err != nil || s != SlopeMinus4 {
		t.Errorf("-4: have %v, %v", s, err)
	}
	for _, f := range []func() error{
		func() error { _, err := ParsePollutant("SO2"); return err },
		func() error { _, err := ParseClass("Euro 7"); return err },
		func() error { _, err := ParseSlope("3%"); return err },
		func() error { _, err := ParseLoad("75"); return err },
	} {
		if err := f(); !errors.Is(err, ErrMissingClassification) {
			t.Errorf("have error %v, want missing classification", err)
		}
	}
}

func TestEnumString(t *testing.T) {
	for _, test := range []struct {
		have, want string
	}{
		{Euro3GDI.String(), "Euro_3_GDI"},
		{HDVEuroVEGR.String(), "Euro V - EGR"},
		{Load100.String(), "100%"},
		{SlopeMinus6.String(), "-6%"},
		{HDVRigid7_5To12t.String(), "Rigid 7.5 - 12 t"},
		{Class(-1).String(), "Class(-1)"},
		{Pollutant(17).String(), "Pollutant(17)"},
	} {
		if test.have != test.want {
			t.Errorf("have %q, want %q", test.have, test.want)
		}
	}
	if !BusUrbanLess15t.IsBus() || HDVArticulated50To60t.IsBus() {
		t.Error("IsBus")
	}
}
