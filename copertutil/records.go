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

package copertutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spatialmodel/copert"
)

// Column counts of the two parameter sources.
const (
	ldvColumns = 17
	hdvColumns = 18
)

// isHeader reports whether fields is the header line of a parameter
// source. The light duty header starts with "Sector" and the heavy duty
// header with "Type".
func isHeader(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch strings.TrimSpace(fields[0]) {
	case "Sector", "Type":
		return true
	}
	return false
}

// isBlank reports whether every field is empty.
func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseFloats(fields []string, column int, dst []float64) error {
	for i := range dst {
		s := strings.TrimSpace(fields[column+i])
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("copertutil: column %d: %w: %q is not a number", column+i, copert.ErrParse, s)
		}
		dst[i] = v
	}
	return nil
}

// lightDutyRecord converts one line of the light duty parameter source.
// The columns are sector, type, segment, Euro standard, pollutant,
// coefficients a through h, reduction factor, minimum speed, maximum
// speed and equation.
func lightDutyRecord(fields []string) (copert.LightDutyRecord, error) {
	var r copert.LightDutyRecord
	if len(fields) < ldvColumns {
		return r, fmt.Errorf("copertutil: light duty line has %d columns, needs %d: %w", len(fields), ldvColumns, copert.ErrParse)
	}
	r.Type = strings.TrimSpace(fields[1])
	r.Standard = strings.TrimSpace(fields[3])
	r.Pollutant = strings.TrimSpace(fields[4])
	if err := parseFloats(fields, 5, r.Coefficients[:]); err != nil {
		return r, err
	}
	var v [3]float64
	if err := parseFloats(fields, 13, v[:]); err != nil {
		return r, err
	}
	r.RF, r.VMin, r.VMax = v[0], v[1], v[2]
	r.Equation = strings.TrimSpace(fields[16])
	return r, nil
}

// heavyDutyRecord converts one line of the heavy duty parameter source.
// The columns are category, type, segment, technology, pollutant, load,
// slope, mode, coefficients a through g, minimum speed, maximum speed
// and equation number.
func heavyDutyRecord(fields []string) (copert.HeavyDutyRecord, error) {
	var r copert.HeavyDutyRecord
	if len(fields) < hdvColumns {
		return r, fmt.Errorf("copertutil: heavy duty line has %d columns, needs %d: %w", len(fields), hdvColumns, copert.ErrParse)
	}
	r.Category = strings.TrimSpace(fields[0])
	r.Type = strings.TrimSpace(fields[1])
	r.Technology = strings.TrimSpace(fields[3])
	r.Pollutant = strings.TrimSpace(fields[4])
	r.Load = strings.TrimSpace(fields[5])
	r.Slope = strings.TrimSpace(fields[6])
	if err := parseFloats(fields, 8, r.Coefficients[:]); err != nil {
		return r, err
	}
	var v [3]float64
	if err := parseFloats(fields, 15, v[:]); err != nil {
		return r, err
	}
	r.VMin, r.VMax = v[0], v[1]
	if v[2] != math.Trunc(v[2]) || math.Abs(v[2]) > math.MaxInt32 {
		return r, fmt.Errorf("copertutil: equation number %g: %w", v[2], copert.ErrParse)
	}
	r.Equation = int(v[2])
	return r, nil
}

// lineError annotates err with the source and line number.
func lineError(err error, source string, line int) error {
	return fmt.Errorf("%w (%s line %d)", err, source, line)
}
