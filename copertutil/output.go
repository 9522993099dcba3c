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
	"sort"

	"github.com/Knetic/govaluate"
)

// modelVariables are the variables available to output expressions:
// the hot emission factor EF (g/km), the total Emission (g), and the
// Speed (km/h), Distance (km) and engine Capacity (L) of the scenario.
var modelVariables = []string{"EF", "Emission", "Speed", "Distance", "Capacity"}

// Outputter calculates user-defined output variables from the results
// of a scenario.
//
// outputVariables maps the names of the variables to be returned to
// expressions that define how they are calculated. The expressions can
// use the model variables and functions.
type Outputter struct {
	names       []string
	expressions map[string]*govaluate.EvaluableExpression
}

// NewOutputter initializes a new Outputter and adds a set of default
// output functions. Default functions include:
//
// 'exp(x)' which applies the exponential function e^x.
//
// 'log(x)' which returns the natural logarithm of x.
//
// 'max(x, y)' and 'min(x, y)' which return the larger and smaller of
// two values.
func NewOutputter(outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			x, err := floatArgs("exp", 1, arg)
			if err != nil {
				return nil, err
			}
			return math.Exp(x[0]), nil
		},
		"log": func(arg ...interface{}) (interface{}, error) {
			x, err := floatArgs("log", 1, arg)
			if err != nil {
				return nil, err
			}
			return math.Log(x[0]), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			x, err := floatArgs("max", 2, args)
			if err != nil {
				return nil, err
			}
			return math.Max(x[0], x[1]), nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			x, err := floatArgs("min", 2, args)
			if err != nil {
				return nil, err
			}
			return math.Min(x[0], x[1]), nil
		},
	}
	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}

	vars, err := checkOutputVars(outputVariables)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, v := range modelVariables {
		known[v] = true
	}

	o := &Outputter{expressions: make(map[string]*govaluate.EvaluableExpression)}
	for name, expr := range vars {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(expr, defaultOutputFuncs)
		if err != nil {
			return nil, fmt.Errorf("copertutil: output variable %s: %v", name, err)
		}
		for _, v := range expression.Vars() {
			if !known[v] {
				return nil, fmt.Errorf("copertutil: output variable %s: unknown variable %q; valid variables are %v", name, v, modelVariables)
			}
		}
		o.expressions[name] = expression
		o.names = append(o.names, name)
	}
	sort.Strings(o.names)
	return o, nil
}

// floatArgs checks that a function received n numeric arguments.
func floatArgs(name string, n int, args []interface{}) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("copertutil: got %d arguments for function '%s', but needs %d", len(args), name, n)
	}
	o := make([]float64, n)
	for i, a := range args {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("copertutil: argument %d of function '%s' is %T, not a number", i+1, name, a)
		}
		o[i] = v
	}
	return o, nil
}

// Names returns the sorted names of the output variables.
func (o *Outputter) Names() []string { return o.names }

// Evaluate calculates the output variables from the given model
// variables.
func (o *Outputter) Evaluate(vars map[string]float64) (map[string]float64, error) {
	params := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		params[k] = v
	}
	out := make(map[string]float64, len(o.names))
	for _, name := range o.names {
		r, err := o.expressions[name].Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("copertutil: evaluating %s: %v", name, err)
		}
		v, ok := r.(float64)
		if !ok {
			return nil, fmt.Errorf("copertutil: output variable %s is %T, not a number", name, r)
		}
		out[name] = v
	}
	return out, nil
}
