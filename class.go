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
	"strings"
)

// Pollutant is a pollutant for which hot emission factors are available.
type Pollutant int

// These are the pollutants known to COPERT.
const (
	CO Pollutant = iota
	HC
	NOx
	PM
	FC // fuel consumption
	VOC
)

var pollutantNames = []string{"CO", "HC", "NOx", "PM", "FC", "VOC"}

func (p Pollutant) String() string { return enumName(pollutantNames, int(p), "Pollutant") }

// VehicleCategory is the broad category of a road vehicle.
type VehicleCategory int

// These are the vehicle categories. Only passenger cars, light commercial
// vehicles, heavy duty vehicles and buses have hot emission factors.
const (
	PassengerCar VehicleCategory = iota
	LightCommercialVehicle
	HeavyDutyVehicle
	Bus
	Moped
	Motorcycle
)

var vehicleCategoryNames = []string{"PassengerCar", "LightCommercialVehicle",
	"HeavyDutyVehicle", "Bus", "Moped", "Motorcycle"}

func (v VehicleCategory) String() string {
	return enumName(vehicleCategoryNames, int(v), "VehicleCategory")
}

// EngineType is the fuel and engine technology of a vehicle.
type EngineType int

// These are the engine types. The two- and four-stroke types with
// displacement limits apply to mopeds and motorcycles.
const (
	Gasoline EngineType = iota
	Diesel
	LPG
	TwoStrokeGasoline
	Hybrid
	E85
	CNG
	TwoStrokeLess50
	TwoStrokeMore50
	FourStrokeLess50
	FourStroke50To250
	FourStroke250To750
	FourStrokeMore750
)

var engineTypeNames = []string{"Gasoline", "Diesel", "LPG", "TwoStrokeGasoline",
	"Hybrid", "E85", "CNG", "TwoStrokeLess50", "TwoStrokeMore50",
	"FourStrokeLess50", "FourStroke50To250", "FourStroke250To750",
	"FourStrokeMore750"}

func (e EngineType) String() string { return enumName(engineTypeNames, int(e), "EngineType") }

// Class is an emission standard for passenger cars and light commercial
// vehicles. Classes are ordered from oldest to newest, so they can
// be compared with < and <=. Euro3GDI is a gasoline-only sibling of Euro3
// which sorts before Euro4.
type Class int

// These are the passenger car emission standards.
const (
	PreECE Class = iota
	ECE1500Or01
	ECE1502
	ECE1503
	ECE1504
	ImprovedConventional
	OpenLoop
	Euro1
	Euro2
	Euro3
	Euro3GDI
	Euro4
	Euro5
	Euro6
	Euro6c
)

var classNames = []string{"PRE_ECE", "ECE_15_00_or_01", "ECE_15_02", "ECE_15_03",
	"ECE_15_04", "Improved_Conventional", "Open_loop", "Euro_1", "Euro_2",
	"Euro_3", "Euro_3_GDI", "Euro_4", "Euro_5", "Euro_6", "Euro_6c"}

func (c Class) String() string { return enumName(classNames, int(c), "Class") }

func (c Class) valid() bool { return c >= PreECE && c <= Euro6c }

// PreEuro reports whether c predates the Euro 1 standard.
func (c Class) PreEuro() bool { return c >= PreECE && c < Euro1 }

// euroLadder lists the classes that have rows in the passenger car
// coefficient tables, in table order.
var euroLadder = []Class{Euro1, Euro2, Euro3, Euro4, Euro5, Euro6, Euro6c}

// numEuro is the number of classes in euroLadder.
const numEuro = 7

// EuroIndex returns the position of c in the Euro 1 to Euro 6c ladder
// used to index the passenger car coefficient tables. Classes without
// a position, including Euro3GDI, return an error wrapping
// ErrMissingClassification.
func EuroIndex(c Class) (int, error) {
	for i, e := range euroLadder {
		if e == c {
			return i, nil
		}
	}
	return -1, missingf("class %v has no position in the Euro 1 to Euro 6c ladder", c)
}

// HDVClass is an emission standard for heavy duty vehicles and buses.
// It is a separate ladder from Class and the two are never compared.
type HDVClass int

// These are the heavy duty emission standards.
const (
	HDVConventional HDVClass = iota
	HDVEuroI
	HDVEuroII
	HDVEuroIII
	HDVEuroIV
	HDVEuroVEGR
	HDVEuroVSCR
	HDVEuroVI
)

var hdvClassNames = []string{"Conventional", "Euro I", "Euro II", "Euro III",
	"Euro IV", "Euro V - EGR", "Euro V - SCR", "Euro VI"}

func (c HDVClass) String() string { return enumName(hdvClassNames, int(c), "HDVClass") }

// HDVType is the weight segment of a heavy duty vehicle, or the
// segment of a bus or coach.
type HDVType int

// These are the heavy duty vehicle and bus segments.
const (
	HDVGasolineMore3_5t HDVType = iota
	HDVRigidLess7_5t
	HDVRigid7_5To12t
	HDVRigid12To14t
	HDVRigid14To20t
	HDVRigid20To26t
	HDVRigid26To28t
	HDVRigid28To32t
	HDVRigidMore32t
	HDVArticulated14To20t
	HDVArticulated20To28t
	HDVArticulated28To34t
	HDVArticulated34To40t
	HDVArticulated40To50t
	HDVArticulated50To60t
	BusUrbanLess15t
	BusUrban15To18t
	BusUrbanMore18t
	CoachStandardLess18t
	CoachArticulatedMore18t
)

var hdvTypeNames = []string{
	"Gasoline >3.5 t",
	"Rigid <=7.5 t",
	"Rigid 7.5 - 12 t",
	"Rigid 12 - 14 t",
	"Rigid 14 - 20 t",
	"Rigid 20 - 26 t",
	"Rigid 26 - 28 t",
	"Rigid 28 - 32 t",
	"Rigid >32 t",
	"Articulated 14 - 20 t",
	"Articulated 20 - 28 t",
	"Articulated 28 - 34 t",
	"Articulated 34 - 40 t",
	"Articulated 40 - 50 t",
	"Articulated 50 - 60 t",
	"Urban Buses Midi <=15 t",
	"Urban Buses Standard 15 - 18 t",
	"Urban Buses Articulated >18 t",
	"Coaches Standard <=18 t",
	"Coaches Articulated >18 t",
}

func (t HDVType) String() string { return enumName(hdvTypeNames, int(t), "HDVType") }

// IsBus reports whether t is a bus or coach segment.
func (t HDVType) IsBus() bool { return t >= BusUrbanLess15t && t <= CoachArticulatedMore18t }

// CapacityBand is an engine displacement band.
type CapacityBand int

// These are the engine capacity bands.
const (
	CapacityLess1_4 CapacityBand = iota
	Capacity1_4To2_0
	CapacityMore2_0
)

var capacityBandNames = []string{"<1.4 l", "1.4 - 2.0 l", ">2.0 l"}

func (b CapacityBand) String() string { return enumName(capacityBandNames, int(b), "CapacityBand") }

// CapacityBandOf returns the band of an engine with the given capacity
// in liters.
func CapacityBandOf(liters float64) CapacityBand {
	switch {
	case liters < 1.4:
		return CapacityLess1_4
	case liters < 2.0:
		return Capacity1_4To2_0
	default:
		return CapacityMore2_0
	}
}

// Load is the payload fraction of a heavy duty vehicle.
type Load int

// These are the heavy duty loads.
const (
	Load0 Load = iota
	Load50
	Load100
)

var loadNames = []string{"0", "50", "100"}

func (l Load) String() string { return enumName(loadNames, int(l), "Load") + "%" }

// Slope is the road gradient for heavy duty vehicles.
type Slope int

// These are the road slopes.
const (
	Slope0 Slope = iota
	SlopeMinus6
	SlopeMinus4
	SlopeMinus2
	Slope2
	Slope4
	Slope6
)

var slopeNames = []string{"0%", "-6%", "-4%", "-2%", "2%", "4%", "6%"}

func (s Slope) String() string { return enumName(slopeNames, int(s), "Slope") }

func enumName(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

// parseName returns the index of s in names, ignoring case. Go
// identifiers such as "Euro6c" are accepted as well as the printed names.
func parseName(kind string, names []string, s string) (int, error) {
	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
	}
	for i, n := range names {
		if norm(n) == norm(s) {
			return i, nil
		}
	}
	return -1, missingf("invalid %s %q", kind, s)
}

// ParsePollutant returns the pollutant with the given name.
func ParsePollutant(s string) (Pollutant, error) {
	i, err := parseName("pollutant", pollutantNames, s)
	return Pollutant(i), err
}

// ParseVehicleCategory returns the vehicle category with the given name.
func ParseVehicleCategory(s string) (VehicleCategory, error) {
	i, err := parseName("vehicle category", vehicleCategoryNames, s)
	return VehicleCategory(i), err
}

// ParseEngineType returns the engine type with the given name.
func ParseEngineType(s string) (EngineType, error) {
	i, err := parseName("engine type", engineTypeNames, s)
	return EngineType(i), err
}

// ParseClass returns the passenger car emission standard with the given
// name, e.g. "Euro_4" or "Euro4".
func ParseClass(s string) (Class, error) {
	i, err := parseName("emission standard", classNames, s)
	return Class(i), err
}

// ParseHDVClass returns the heavy duty emission standard with the given
// name, e.g. "Euro V - SCR".
func ParseHDVClass(s string) (HDVClass, error) {
	i, err := parseName("heavy duty emission standard", hdvClassNames, s)
	return HDVClass(i), err
}

// ParseHDVType returns the heavy duty segment with the given name.
func ParseHDVType(s string) (HDVType, error) {
	i, err := parseName("heavy duty vehicle type", hdvTypeNames, s)
	return HDVType(i), err
}

// ParseLoad returns the load matching s, with or without a trailing "%".
func ParseLoad(s string) (Load, error) {
	i, err := parseName("load", loadNames, strings.TrimSuffix(strings.TrimSpace(s), "%"))
	return Load(i), err
}

// ParseSlope returns the slope matching s, e.g. "-2%".
func ParseSlope(s string) (Slope, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		s += "%"
	}
	for i, n := range slopeNames {
		if n == s {
			return Slope(i), nil
		}
	}
	return -1, missingf("invalid slope %q", s)
}
