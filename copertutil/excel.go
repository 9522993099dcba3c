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
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/spatialmodel/copert"
	"github.com/tealeg/xlsx"
)

// workbooks holds the Microsoft Excel files opened so far, so that a
// workbook holding both parameter sources is parsed once.
var (
	workbooks     *requestcache.Cache
	workbooksOnce sync.Once
)

func openWorkbook(ctx context.Context, req interface{}) (interface{}, error) {
	f, err := xlsx.OpenFile(req.(string))
	if err != nil {
		return nil, fmt.Errorf("copertutil: opening xlsx file: %v", err)
	}
	return f, nil
}

// workbook returns the parsed Excel file with the given name.
func workbook(fileName string) (*xlsx.File, error) {
	workbooksOnce.Do(func() {
		workbooks = requestcache.NewCache(openWorkbook, runtime.GOMAXPROCS(-1), requestcache.Memory(100))
	})
	f, err := workbooks.NewRequest(context.Background(), fileName, fileName).Result()
	if err != nil {
		return nil, err
	}
	return f.(*xlsx.File), nil
}

// sheetLines returns the text of the non-header, non-blank rows of the
// given sheet.
func sheetLines(fileName, sheet string) ([][]string, error) {
	f, err := workbook(fileName)
	if err != nil {
		return nil, err
	}
	s, ok := f.Sheet[sheet]
	if !ok {
		return nil, fmt.Errorf("copertutil: %w: no sheet %q in %s", copert.ErrParse, sheet, fileName)
	}
	var o [][]string
	for _, row := range s.Rows {
		if row == nil {
			continue
		}
		fields := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			fields[j] = c.Value
		}
		if isHeader(fields) || isBlank(fields) {
			continue
		}
		o = append(o, fields)
	}
	return o, nil
}

// ReadLightDutyXLSX reads the light duty vehicle parameter source from
// the given sheet of a Microsoft Excel file. The sheet has the same
// column layout as the comma-separated source.
func ReadLightDutyXLSX(fileName, sheet string) ([]copert.LightDutyRecord, error) {
	lines, err := sheetLines(fileName, sheet)
	if err != nil {
		return nil, err
	}
	o := make([]copert.LightDutyRecord, len(lines))
	for i, l := range lines {
		if o[i], err = lightDutyRecord(l); err != nil {
			return nil, lineError(err, sheet, i+1)
		}
	}
	return o, nil
}

// ReadHeavyDutyXLSX reads the heavy duty vehicle and bus parameter
// source from the given sheet of a Microsoft Excel file.
func ReadHeavyDutyXLSX(fileName, sheet string) ([]copert.HeavyDutyRecord, error) {
	lines, err := sheetLines(fileName, sheet)
	if err != nil {
		return nil, err
	}
	o := make([]copert.HeavyDutyRecord, len(lines))
	for i, l := range lines {
		if o[i], err = heavyDutyRecord(l); err != nil {
			return nil, lineError(err, sheet, i+1)
		}
	}
	return o, nil
}
