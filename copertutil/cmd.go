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
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/skratchdot/open-golang/open"
	"github.com/spatialmodel/copert"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	vehicleSets := []*pflag.FlagSet{hefCmd.Flags(), emissionCmd.Flags(), curveCmd.Flags()}

	// Options are the configuration options available to COPERT.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LDVParameterFile",
			usage: `
              LDVParameterFile is the path to the light duty vehicle
              parameter source, either a comma-separated file or a sheet
              of an Excel file given as "file.xlsx#sheet". The sheet name
              defaults to "LDV". It can contain environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "HDVParameterFile",
			usage: `
              HDVParameterFile is the path to the heavy duty vehicle and
              bus parameter source, either a comma-separated file or a
              sheet of an Excel file given as "file.xlsx#sheet". The sheet
              name defaults to "HDV". It can contain environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "pollutant",
			usage: `
              pollutant is the pollutant to calculate emissions of:
              CO, HC, NOx, PM, FC or VOC.`,
			shorthand:  "p",
			defaultVal: "NOx",
			flagsets:   vehicleSets,
		},
		{
			name: "speed",
			usage: `
              speed is the average vehicle speed in km/h.`,
			shorthand:  "v",
			defaultVal: 50.,
			flagsets:   []*pflag.FlagSet{hefCmd.Flags(), emissionCmd.Flags()},
		},
		{
			name: "category",
			usage: `
              category is the vehicle category: PassengerCar,
              LightCommercialVehicle, HeavyDutyVehicle or Bus.`,
			defaultVal: "PassengerCar",
			flagsets:   vehicleSets,
		},
		{
			name: "engine",
			usage: `
              engine is the engine type of passenger cars and light
              commercial vehicles, for example Gasoline or Diesel.`,
			defaultVal: "Gasoline",
			flagsets:   vehicleSets,
		},
		{
			name: "class",
			usage: `
              class is the emission standard of passenger cars and light
              commercial vehicles, from PRE_ECE to Euro_6c.`,
			defaultVal: "Euro_4",
			flagsets:   vehicleSets,
		},
		{
			name: "capacity",
			usage: `
              capacity is the engine capacity of passenger cars in liters.`,
			defaultVal: 1.6,
			flagsets:   vehicleSets,
		},
		{
			name: "hdvtype",
			usage: `
              hdvtype is the segment of heavy duty vehicles and buses,
              for example "Rigid 14 - 20 t" or "Urban Buses Standard 15 - 18 t".`,
			defaultVal: "",
			flagsets:   vehicleSets,
		},
		{
			name: "hdvclass",
			usage: `
              hdvclass is the emission standard of heavy duty vehicles and
              buses, from Conventional to "Euro VI".`,
			defaultVal: "",
			flagsets:   vehicleSets,
		},
		{
			name: "load",
			usage: `
              load is the load of heavy duty vehicles in percent: 0, 50 or 100.`,
			defaultVal: "50",
			flagsets:   vehicleSets,
		},
		{
			name: "slope",
			usage: `
              slope is the road slope for heavy duty vehicles in percent,
              from -6% to 6% in steps of 2%.`,
			defaultVal: "0%",
			flagsets:   vehicleSets,
		},
		{
			name: "distance",
			usage: `
              distance is the total distance traveled in km.`,
			shorthand:  "d",
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{emissionCmd.Flags()},
		},
		{
			name: "vmin",
			usage: `
              vmin is the lowest speed of the curve in km/h.`,
			defaultVal: 10.,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "vmax",
			usage: `
              vmax is the highest speed of the curve in km/h.`,
			defaultVal: 130.,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "n",
			usage: `
              n is the number of speeds in the curve.`,
			defaultVal: 25,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "plot",
			usage: `
              plot is the path of an image file where a plot of the curve
              should be saved. The format is determined by the extension
              (for example .png, .svg or .pdf). If empty, no plot is made.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "open",
			usage: `
              open specifies whether to open the plot with the default
              viewer after it is saved.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{curveCmd.Flags()},
		},
		{
			name: "scenarios",
			usage: `
              scenarios is the path to a TOML file holding [[Scenario]]
              tables, or a YAML file holding a "scenarios" list, to be
              evaluated. It can contain environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies which output variables the batch
              writes. It maps output names to expressions of the variables
              EF (g/km), Emission (g), Speed (km/h), Distance (km) and
              Capacity (L). The functions exp, log, max and min are
              available. On the command line, give it as a JSON object.`,
			defaultVal: map[string]string{"EF": "EF", "Emission": "Emission"},
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("COPERT")
	Cfg.AutomaticEnv()

	for _, option := range options {
		first := option.flagsets[0]
		switch v := option.defaultVal.(type) {
		case string:
			first.StringP(option.name, option.shorthand, v, option.usage)
		case bool:
			first.BoolP(option.name, option.shorthand, v, option.usage)
		case int:
			first.IntP(option.name, option.shorthand, v, option.usage)
		case float64:
			first.Float64P(option.name, option.shorthand, v, option.usage)
		case map[string]string:
			// Maps are given on the command line as JSON objects.
			b, err := json.Marshal(v)
			if err != nil {
				panic(err)
			}
			first.StringP(option.name, option.shorthand, string(b), option.usage)
		default:
			panic(fmt.Errorf("copert: invalid type %T for option %s", v, option.name))
		}
		flag := first.Lookup(option.name)
		Cfg.BindPFlag(option.name, flag)
		for _, set := range option.flagsets[1:] {
			set.AddFlag(flag)
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(hefCmd)
	Root.AddCommand(emissionCmd)
	Root.AddCommand(curveCmd)
	Root.AddCommand(batchCmd)

	for _, cmd := range []*cobra.Command{Root, versionCmd, hefCmd, emissionCmd, curveCmd, batchCmd} {
		cmd.SilenceUsage = true
	}
}

// setConfig reads in the configuration file.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("copert: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "copert",
	Short: "Road vehicle hot emission factors.",
	Long: `copert calculates hot exhaust emission factors of road vehicles following
the EMEP/EEA COPERT methodology, for gasoline and diesel passenger cars,
light commercial vehicles, heavy duty vehicles and buses.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'COPERT_var' where 'var' is the
name of the variable to be set. File names are additionally allowed to contain
environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of COPERT.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("COPERT v%s\n", copert.Version)
	},
	DisableAutoGenTag: true,
}

// loadModel creates a model from the configured parameter files.
func loadModel() (*copert.Model, error) {
	repo, err := LoadRepository(Cfg)
	if err != nil {
		return nil, err
	}
	return copert.NewModel(repo), nil
}

// configRequest loads the model and reads the vehicle description from
// the configuration.
func configRequest() (*copert.Model, copert.Request, error) {
	req, err := vehicleFromConfig(Cfg).Request()
	if err != nil {
		return nil, req, err
	}
	m, err := loadModel()
	return m, req, err
}

var hefCmd = &cobra.Command{
	Use:   "hef",
	Short: "Calculate a hot emission factor.",
	Long: `hef calculates the hot emission factor, in g/km, of the vehicle described
by the configuration options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, req, err := configRequest()
		if err != nil {
			return err
		}
		ef, err := m.HotEmissionFactor(req)
		if err != nil {
			return err
		}
		cmd.Printf("%g g/km\n", ef)
		return nil
	},
	DisableAutoGenTag: true,
}

var emissionCmd = &cobra.Command{
	Use:   "emission",
	Short: "Calculate hot emissions over a distance.",
	Long: `emission calculates the hot emissions, in g, of the vehicle described
by the configuration options over the given distance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, req, err := configRequest()
		if err != nil {
			return err
		}
		e, err := m.Emission(req, Cfg.GetFloat64("distance"))
		if err != nil {
			return err
		}
		cmd.Printf("%g g\n", e)
		return nil
	},
	DisableAutoGenTag: true,
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Calculate hot emission factors over a range of speeds.",
	Long: `curve calculates the hot emission factor of the vehicle described by the
configuration options at evenly spaced speeds and prints them as
comma-separated values. Optionally, the curve is plotted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, req, err := configRequest()
		if err != nil {
			return err
		}
		speeds, efs, err := Curve(m, req, Cfg.GetFloat64("vmin"), Cfg.GetFloat64("vmax"),
			Cfg.GetInt("n"), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		plotFile := os.ExpandEnv(Cfg.GetString("plot"))
		if plotFile == "" {
			return nil
		}
		title := fmt.Sprintf("%v %v %v", req.Pollutant, req.Category, req.Engine)
		if err := plotCurve(plotFile, title, speeds, efs); err != nil {
			return err
		}
		if Cfg.GetBool("open") {
			return open.Run(plotFile)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a file of scenarios.",
	Long: `batch evaluates each scenario in a TOML scenario file and prints one
line of comma-separated output variables per scenario. Scenario files
ending in .yaml or .yml are read as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := GetStringMapString("OutputVariables", Cfg)
		if err != nil {
			return err
		}
		o, err := NewOutputter(vars, nil)
		if err != nil {
			return err
		}
		scenarios, err := ReadScenarioFile(os.ExpandEnv(Cfg.GetString("scenarios")))
		if err != nil {
			return err
		}
		m, err := loadModel()
		if err != nil {
			return err
		}
		return RunBatch(m, scenarios, o, cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}
