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
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spatialmodel/copert"
)

// readCSV returns the non-header, non-blank lines of a comma-separated
// parameter source.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("copertutil: reading csv: %w: %v", copert.ErrParse, err)
	}
	o := records[:0]
	for _, rec := range records {
		if isHeader(rec) || isBlank(rec) {
			continue
		}
		o = append(o, rec)
	}
	return o, nil
}

// ReadLightDutyCSV reads the light duty vehicle parameter source from r.
func ReadLightDutyCSV(r io.Reader) ([]copert.LightDutyRecord, error) {
	lines, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	o := make([]copert.LightDutyRecord, len(lines))
	for i, l := range lines {
		if o[i], err = lightDutyRecord(l); err != nil {
			return nil, lineError(err, "light duty", i+1)
		}
	}
	return o, nil
}

// ReadHeavyDutyCSV reads the heavy duty vehicle and bus parameter source
// from r.
func ReadHeavyDutyCSV(r io.Reader) ([]copert.HeavyDutyRecord, error) {
	lines, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	o := make([]copert.HeavyDutyRecord, len(lines))
	for i, l := range lines {
		if o[i], err = heavyDutyRecord(l); err != nil {
			return nil, lineError(err, "heavy duty", i+1)
		}
	}
	return o, nil
}
