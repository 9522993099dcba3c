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
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/copert"
)

func testModel(t *testing.T) *copert.Model {
	cfg := viper.New()
	cfg.Set("LDVParameterFile", "testdata/ldv.csv")
	cfg.Set("HDVParameterFile", "testdata/hdv.csv")
	repo, err := LoadRepository(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return copert.NewModel(repo)
}

func TestReadScenarios(t *testing.T) {
	f, err := os.Open("testdata/scenarios.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s, err := ReadScenarios(f)
	if err != nil {
		t.Fatal(err)
	}
	want := Scenario{
		Name: "bus", Pollutant: "CO", Category: "Bus",
		HDVType: "Urban Buses Standard 15 - 18 t", HDVClass: "Euro V - EGR",
		Load: "0", Slope: "-2%", Speed: 16, Distance: 10,
	}
	if len(s) != 3 {
		t.Fatalf("have %d scenarios, want 3", len(s))
	}
	if diff := pretty.Diff(s[1], want); len(diff) != 0 {
		t.Errorf("scenario differs: %v", diff)
	}
}

func TestRunBatch(t *testing.T) {
	f, err := os.Open("testdata/scenarios.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s, err := ReadScenarios(f)
	if err != nil {
		t.Fatal(err)
	}
	o, err := NewOutputter(map[string]string{"EF": "EF", "EmissionKg": "Emission / 1000"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	b := new(bytes.Buffer)
	if err := RunBatch(testModel(t), s, o, b); err != nil {
		t.Fatal(err)
	}
	const want = `Name,EF,EmissionKg
van,2,0.2
bus,0.5,0.005
moped,NaN,NaN
`
	if b.String() != want {
		t.Errorf("have\n%s\nwant\n%s", b.String(), want)
	}
}

func TestReadScenariosYAML(t *testing.T) {
	want, err := ReadScenarioFile("testdata/scenarios.toml")
	if err != nil {
		t.Fatal(err)
	}
	have, err := ReadScenarioFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(have, want); len(diff) != 0 {
		t.Errorf("yaml and toml scenarios differ: %v", diff)
	}
}

func TestRunBatchBadLabels(t *testing.T) {
	o, err := NewOutputter(map[string]string{"EF": "EF"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s := []Scenario{
		{Name: "bad pollutant", Pollutant: "CO2", Category: "PassengerCar", Engine: "Gasoline", Class: "Euro_4"},
		{Name: "good", Pollutant: "CO", Category: "PassengerCar", Engine: "Gasoline", Class: "Euro_4", Speed: 50},
		{Name: "bad class", Pollutant: "CO", Category: "PassengerCar", Engine: "Gasoline", Class: "Euro_7"},
	}
	b := new(bytes.Buffer)
	err = RunBatch(testModel(t), s, o, b)
	if err == nil {
		t.Fatal("invalid labels should cause an error")
	}
	for _, name := range []string{"bad pollutant", "bad class"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention scenario %q", err, name)
		}
	}
	if b.Len() != 0 {
		t.Errorf("nothing should be written when labels are invalid, have %q", b.String())
	}
}
