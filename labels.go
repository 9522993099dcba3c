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
	"strconv"
	"strings"
)

// LightDutyRecord is one line of the light duty (Euro 5 and later light
// commercial vehicle) parameter source, with the labels as they appear
// in the source.
type LightDutyRecord struct {
	Type      string // e.g. "Gasoline <3.5 t"
	Standard  string // "5", "6" or "6c"
	Pollutant string
	// Coefficients are a through h.
	Coefficients [8]float64
	RF           float64
	VMin, VMax   float64
	Equation     string // e.g. "Equation 12"
}

// HeavyDutyRecord is one line of the heavy duty vehicle and bus
// parameter source, with the labels as they appear in the source.
type HeavyDutyRecord struct {
	Category   string // "HDV" or "BUS"
	Type       string // e.g. "Rigid 14 - 20 t"
	Technology string // e.g. "HD Euro III - 2000"
	Pollutant  string
	Load       string
	Slope      string
	// Coefficients are a through g.
	Coefficients [7]float64
	VMin, VMax   float64
	// Equation is the index of the heavy duty equation. A negative
	// value means that there is no formula for the record.
	Equation int
}

var ldvTypeLabels = map[string]EngineType{
	"Gasoline <3.5 t": Gasoline,
	"Diesel <3.5 t":   Diesel,
}

var ldvStandardLabels = map[string]Class{
	"5":  Euro5,
	"6":  Euro6,
	"6c": Euro6c,
}

// The parameter sources only hold these pollutants.
var pollutantLabels = map[string]Pollutant{
	"CO":  CO,
	"NOx": NOx,
	"HC":  HC,
	"PM":  PM,
	"FC":  FC,
}

var hdvCategoryLabels = map[string]VehicleCategory{
	"HDV": HeavyDutyVehicle,
	"BUS": Bus,
}

var hdvTechnologyLabels = map[string]HDVClass{
	"Conventional":    HDVConventional,
	"HD Euro I":       HDVEuroI,
	"HD Euro II":      HDVEuroII,
	"HD Euro III":     HDVEuroIII,
	"HD Euro IV":      HDVEuroIV,
	"HD Euro V - EGR": HDVEuroVEGR,
	"HD Euro V - SCR": HDVEuroVSCR,
	"HD Euro VI":      HDVEuroVI,
}

// hdvTypeLabels, hdvLoadLabels and hdvSlopeLabels are built from the
// printed names of the corresponding types.
var (
	hdvTypeLabels  = make(map[string]HDVType)
	hdvLoadLabels  = make(map[string]Load)
	hdvSlopeLabels = make(map[string]Slope)
)

func init() {
	for i, n := range hdvTypeNames {
		hdvTypeLabels[n] = HDVType(i)
	}
	for i, n := range loadNames {
		hdvLoadLabels[n] = Load(i)
	}
	for i, n := range slopeNames {
		hdvSlopeLabels[n] = Slope(i)
	}
}

// ldvEquationLabel returns the formula named by a label such as
// "Equation 9".
func ldvEquationLabel(s string) (FormulaID, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "Equation "))
	if err != nil || !strings.HasPrefix(s, "Equation ") {
		return NoFormula, parsef("invalid light duty equation %q", s)
	}
	f, err := LDVEquation(n)
	if err != nil {
		return NoFormula, parsef("invalid light duty equation %q", s)
	}
	return f, nil
}

// hdvTechnology strips the directive from a heavy duty technology label,
// e.g. "HD Euro II - 91/542/EEC Stage II" becomes "HD Euro II". The two
// Euro V variants keep their suffix.
func hdvTechnology(label string) string {
	i := strings.Index(label, "-")
	if i < 0 || label[:i] == "HD Euro V " {
		return label
	}
	if i == 0 {
		return ""
	}
	return label[:i-1]
}

func (r LightDutyRecord) key() (ldvKey, error) {
	e, ok := ldvTypeLabels[r.Type]
	if !ok {
		return ldvKey{}, parsef("invalid light duty vehicle type %q", r.Type)
	}
	c, ok := ldvStandardLabels[r.Standard]
	if !ok {
		return ldvKey{}, parsef("invalid light duty emission standard %q", r.Standard)
	}
	p, ok := pollutantLabels[r.Pollutant]
	if !ok {
		return ldvKey{}, parsef("invalid pollutant %q", r.Pollutant)
	}
	return ldvKey{engine: e, class: c, pollutant: p}, nil
}

func (r LightDutyRecord) row() (Row, error) {
	f, err := ldvEquationLabel(r.Equation)
	if err != nil {
		return Row{}, err
	}
	return NewRow(f, r.VMin, r.VMax, r.RF, r.Coefficients[:]...)
}

func (r HeavyDutyRecord) key() (hdvKey, error) {
	var k hdvKey
	var ok bool
	if k.category, ok = hdvCategoryLabels[r.Category]; !ok {
		return k, parsef("invalid heavy duty category %q", r.Category)
	}
	if k.hdvType, ok = hdvTypeLabels[r.Type]; !ok {
		return k, parsef("invalid heavy duty vehicle type %q", r.Type)
	}
	if k.class, ok = hdvTechnologyLabels[hdvTechnology(r.Technology)]; !ok {
		return k, parsef("invalid heavy duty technology %q", r.Technology)
	}
	if k.pollutant, ok = pollutantLabels[r.Pollutant]; !ok {
		return k, parsef("invalid pollutant %q", r.Pollutant)
	}
	if k.load, ok = hdvLoadLabels[r.Load]; !ok {
		return k, parsef("invalid load %q", r.Load)
	}
	if k.slope, ok = hdvSlopeLabels[r.Slope]; !ok {
		return k, parsef("invalid slope %q", r.Slope)
	}
	return k, nil
}

// row returns the undefined row for records without an equation.
func (r HeavyDutyRecord) row() (Row, error) {
	if r.Equation < 0 {
		return Row{}, nil
	}
	f, err := HDVEquation(r.Equation)
	if err != nil {
		return Row{}, parsef("invalid heavy duty equation %d", r.Equation)
	}
	return NewRow(f, r.VMin, r.VMax, 0, r.Coefficients[:]...)
}
