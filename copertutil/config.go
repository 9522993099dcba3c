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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/copert"
	"github.com/spf13/cast"
)

// Log is the logger used by this package.
var Log logrus.FieldLogger = logrus.StandardLogger()

// splitSheet splits a parameter file location of the form
// "file.xlsx#sheet" into the file and sheet names. If there is no
// sheet name, defaultSheet is used.
func splitSheet(path, defaultSheet string) (file, sheet string) {
	if i := strings.LastIndex(path, "#"); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, defaultSheet
}

func isExcel(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// readLightDuty reads the light duty parameter source at path, which is
// either a comma-separated file or a sheet of an Excel file.
func readLightDuty(path string) ([]copert.LightDutyRecord, error) {
	file, sheet := splitSheet(path, "LDV")
	if isExcel(file) {
		return ReadLightDutyXLSX(file, sheet)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("copertutil: opening light duty parameter file: %v", err)
	}
	defer f.Close()
	return ReadLightDutyCSV(f)
}

// readHeavyDuty reads the heavy duty parameter source at path, which is
// either a comma-separated file or a sheet of an Excel file.
func readHeavyDuty(path string) ([]copert.HeavyDutyRecord, error) {
	file, sheet := splitSheet(path, "HDV")
	if isExcel(file) {
		return ReadHeavyDutyXLSX(file, sheet)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("copertutil: opening heavy duty parameter file: %v", err)
	}
	defer f.Close()
	return ReadHeavyDutyCSV(f)
}

// LoadRepository builds the coefficient repository from the parameter
// files named by the LDVParameterFile and HDVParameterFile configuration
// variables. Environment variables in the file names are expanded.
func LoadRepository(cfg *viper.Viper) (*copert.Repository, error) {
	ldvPath := os.ExpandEnv(cfg.GetString("LDVParameterFile"))
	hdvPath := os.ExpandEnv(cfg.GetString("HDVParameterFile"))
	if ldvPath == "" || hdvPath == "" {
		return nil, fmt.Errorf("copertutil: LDVParameterFile and HDVParameterFile must both be specified")
	}
	ldv, err := readLightDuty(ldvPath)
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"file":    ldvPath,
		"records": len(ldv),
	}).Info("read light duty parameters")

	hdv, err := readHeavyDuty(hdvPath)
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"file":    hdvPath,
		"records": len(hdv),
	}).Info("read heavy duty parameters")

	return copert.BuildRepository(ldv, hdv)
}

// Vehicle holds the text labels describing a vehicle and its driving
// conditions, as they are given on the command line or in a scenario
// file. Fields that do not apply to the vehicle category may be empty.
type Vehicle struct {
	Pollutant string
	Speed     float64
	Category  string
	Engine    string
	Class     string
	Capacity  float64
	HDVType   string
	HDVClass  string
	Load      string
	Slope     string
}

// Request converts v into a model request.
func (v Vehicle) Request() (copert.Request, error) {
	req := copert.Request{Speed: v.Speed, Capacity: v.Capacity}
	var err error
	if req.Pollutant, err = copert.ParsePollutant(v.Pollutant); err != nil {
		return req, err
	}
	if req.Category, err = copert.ParseVehicleCategory(v.Category); err != nil {
		return req, err
	}
	switch req.Category {
	case copert.HeavyDutyVehicle, copert.Bus:
		if req.HDVType, err = copert.ParseHDVType(v.HDVType); err != nil {
			return req, err
		}
		if req.HDVClass, err = copert.ParseHDVClass(v.HDVClass); err != nil {
			return req, err
		}
		if req.Load, err = copert.ParseLoad(v.Load); err != nil {
			return req, err
		}
		if req.Slope, err = copert.ParseSlope(v.Slope); err != nil {
			return req, err
		}
	default:
		if req.Engine, err = copert.ParseEngineType(v.Engine); err != nil {
			return req, err
		}
		if req.Class, err = copert.ParseClass(v.Class); err != nil {
			return req, err
		}
	}
	return req, nil
}

// vehicleFromConfig reads the vehicle description from cfg.
func vehicleFromConfig(cfg *viper.Viper) Vehicle {
	return Vehicle{
		Pollutant: cfg.GetString("pollutant"),
		Speed:     cfg.GetFloat64("speed"),
		Category:  cfg.GetString("category"),
		Engine:    cfg.GetString("engine"),
		Class:     cfg.GetString("class"),
		Capacity:  cfg.GetFloat64("capacity"),
		HDVType:   cfg.GetString("hdvtype"),
		HDVClass:  cfg.GetString("hdvclass"),
		Load:      cfg.GetString("load"),
		Slope:     cfg.GetString("slope"),
	}
}

// checkOutputVars removes end lines and expands environment
// variables in the output variables.
func checkOutputVars(vars map[string]string) (map[string]string, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("copertutil: there are no variables specified for output. Please fill in " +
			"the OutputVariables configuration and try again")
	}
	o := make(map[string]string, len(vars))
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		v = strings.Replace(v, "\n", " ", -1)
		o[os.ExpandEnv(k)] = os.ExpandEnv(v)
	}
	return o, nil
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		if v == "" {
			return make(map[string]string), nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("copertutil: parsing %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("copertutil: invalid type for map variable %s: %#v", varName, i)
	}
}
