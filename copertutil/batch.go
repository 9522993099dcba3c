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
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/copert"
	"gopkg.in/yaml.v3"
)

// Scenario is one entry of a batch scenario file.
type Scenario struct {
	Name      string  `yaml:"name"`
	Pollutant string  `yaml:"pollutant"`
	Speed     float64 `yaml:"speed"`    // km/h
	Distance  float64 `yaml:"distance"` // km
	Category  string  `yaml:"category"`
	Engine    string  `yaml:"engine"`
	Class     string  `yaml:"class"`
	Capacity  float64 `yaml:"capacity"` // L
	HDVType   string  `yaml:"hdv_type"`
	HDVClass  string  `yaml:"hdv_class"`
	Load      string  `yaml:"load"`
	Slope     string  `yaml:"slope"`
}

func (s Scenario) vehicle() Vehicle {
	return Vehicle{
		Pollutant: s.Pollutant,
		Speed:     s.Speed,
		Category:  s.Category,
		Engine:    s.Engine,
		Class:     s.Class,
		Capacity:  s.Capacity,
		HDVType:   s.HDVType,
		HDVClass:  s.HDVClass,
		Load:      s.Load,
		Slope:     s.Slope,
	}
}

// ReadScenarios reads a TOML file holding an array of [[Scenario]]
// tables.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	var f struct {
		Scenario []Scenario
	}
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("copertutil: reading scenarios: %v", err)
	}
	return nameScenarios(f.Scenario), nil
}

// ReadScenariosYAML reads a YAML file holding a list of scenarios under
// the key "scenarios".
func ReadScenariosYAML(r io.Reader) ([]Scenario, error) {
	var f struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("copertutil: reading scenarios: %v", err)
	}
	return nameScenarios(f.Scenarios), nil
}

// ReadScenarioFile reads the scenarios in the given file. Files ending
// in .yaml or .yml are read as YAML and all others as TOML.
func ReadScenarioFile(fileName string) ([]Scenario, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("copertutil: opening scenario file: %v", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return ReadScenariosYAML(f)
	}
	return ReadScenarios(f)
}

// nameScenarios gives unnamed scenarios a name based on their position.
func nameScenarios(s []Scenario) []Scenario {
	for i := range s {
		if s[i].Name == "" {
			s[i].Name = fmt.Sprintf("scenario %d", i+1)
		}
	}
	return s
}

// requests converts the scenarios into model requests. All scenarios
// with invalid labels are reported together.
func requests(scenarios []Scenario) ([]copert.Request, error) {
	var mulErr *multierror.Error
	reqs := make([]copert.Request, len(scenarios))
	for i, s := range scenarios {
		var err error
		if reqs[i], err = s.vehicle().Request(); err != nil {
			mulErr = multierror.Append(mulErr, fmt.Errorf("scenario %q: %w", s.Name, err))
		}
	}
	return reqs, mulErr.ErrorOrNil()
}

// RunBatch evaluates each scenario and writes one comma-separated line
// per scenario to w, preceded by a header line. If any scenario has
// labels that cannot be parsed, nothing is evaluated. Scenarios that the
// model cannot evaluate are logged and written with NaN values.
func RunBatch(m *copert.Model, scenarios []Scenario, o *Outputter, w io.Writer) error {
	reqs, err := requests(scenarios)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"Name"}, o.Names()...)); err != nil {
		return err
	}
	var failed int
	for i, s := range scenarios {
		req := reqs[i]
		line := []string{s.Name}
		ef, err := m.HotEmissionFactor(req)
		if err != nil {
			failed++
			Log.WithFields(logrus.Fields{
				"scenario": s.Name,
				"error":    err,
			}).Warn("no hot emission factor")
			for range o.Names() {
				line = append(line, strconv.FormatFloat(math.NaN(), 'g', -1, 64))
			}
			if err := cw.Write(line); err != nil {
				return err
			}
			continue
		}
		out, err := o.Evaluate(map[string]float64{
			"EF":       ef,
			"Emission": ef * s.Distance,
			"Speed":    s.Speed,
			"Distance": s.Distance,
			"Capacity": s.Capacity,
		})
		if err != nil {
			return fmt.Errorf("copertutil: scenario %q: %v", s.Name, err)
		}
		for _, name := range o.Names() {
			line = append(line, strconv.FormatFloat(out[name], 'g', -1, 64))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	Log.WithFields(logrus.Fields{
		"scenarios": len(scenarios),
		"failed":    failed,
	}).Info("batch complete")
	return cw.Error()
}
