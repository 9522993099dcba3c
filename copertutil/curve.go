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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GaryBoone/GoStats/stats"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/copert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Curve evaluates the hot emission factor of req at n evenly spaced
// speeds between vmin and vmax (inclusive) and writes the results to w
// as comma-separated speed, factor pairs. The speeds and factors
// are returned.
func Curve(m *copert.Model, req copert.Request, vmin, vmax float64, n int, w io.Writer) (speeds, efs []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("copertutil: curve needs at least 2 points, got %d", n)
	}
	if vmax <= vmin {
		return nil, nil, fmt.Errorf("copertutil: curve maximum speed %g must be greater than minimum speed %g", vmax, vmin)
	}
	speeds = floats.Span(make([]float64, n), vmin, vmax)
	efs = make([]float64, n)
	fmt.Fprintln(w, "Speed,EF")
	for i, v := range speeds {
		req.Speed = v
		if efs[i], err = m.HotEmissionFactor(req); err != nil {
			return nil, nil, err
		}
		fmt.Fprintf(w, "%g,%g\n", v, efs[i])
	}

	slope, intercept, r2, _, _, _ := stats.LinearRegression(speeds, efs)
	Log.WithFields(logrus.Fields{
		"pollutant": req.Pollutant,
		"category":  req.Category,
		"slope":     slope,
		"intercept": intercept,
		"r2":        r2,
	}).Info("linear trend of emission factor with speed")
	return speeds, efs, nil
}

// plotCurve saves a line plot of the given curve to fileName. The image
// format is determined by the file extension.
func plotCurve(fileName, title string, speeds, efs []float64) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "Speed (km/h)"
	p.Y.Label.Text = "Hot emission factor (g/km)"
	xy := make(plotter.XYs, len(speeds))
	for i, v := range speeds {
		xy[i].X = v
		xy[i].Y = efs[i]
	}
	if err = plotutil.AddLinePoints(p, xy); err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if format == "" {
		return fmt.Errorf("copertutil: plot file %s has no extension", fileName)
	}
	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, format)
	if err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("copertutil: creating plot file: %v", err)
	}
	if _, err = wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
