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
	"reflect"
	"testing"

	"github.com/Knetic/govaluate"
)

func TestOutputter(t *testing.T) {
	o, err := NewOutputter(map[string]string{
		"EF":      "EF",
		"kg":      "Emission / 1000",
		"growth":  "exp(log(EF)) * 2",
		"capped":  "min(EF, 1)",
		"doubled": "double(Distance)",
	}, map[string]govaluate.ExpressionFunction{
		"double": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("got %d arguments for function 'double', but needs 1", len(args))
			}
			return 2 * args[0].(float64), nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	wantNames := []string{"EF", "capped", "doubled", "growth", "kg"}
	if !reflect.DeepEqual(o.Names(), wantNames) {
		t.Errorf("names: have %v, want %v", o.Names(), wantNames)
	}
	r, err := o.Evaluate(map[string]float64{"EF": 2.5, "Emission": 250, "Speed": 50, "Distance": 100, "Capacity": 0})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"EF": 2.5, "kg": 0.25, "growth": 5, "capped": 1, "doubled": 200}
	for k, v := range want {
		if math.Abs(r[k]-v) > 1.e-12 {
			t.Errorf("%s: have %g, want %g", k, r[k], v)
		}
	}
}

func TestOutputterFunctionArguments(t *testing.T) {
	o, err := NewOutputter(map[string]string{
		"a": "exp(EF > 1)",
		"b": "max(EF)",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Evaluate(map[string]float64{"EF": 2}); err == nil {
		t.Error("non-numeric or missing function arguments should cause an error")
	}
}

func TestOutputterErrors(t *testing.T) {
	tests := []map[string]string{
		nil,
		{"x": "Temperature * 2"},
		{"x": "EF *"},
	}
	for _, vars := range tests {
		if _, err := NewOutputter(vars, nil); err == nil {
			t.Errorf("%v: should cause an error", vars)
		}
	}
}
