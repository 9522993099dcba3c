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

// Package copert calculates hot emission factors of road vehicles, in grams
// per kilometer, following the COPERT methodology of the EMEP/EEA air
// pollutant emission inventory guidebook. Factors are available for
// gasoline and diesel passenger cars, light commercial vehicles, heavy duty
// vehicles and buses.
package copert

import (
	"github.com/ctessum/unit"
)

// Version gives the version number.
const Version = "0.1.0"

// Model calculates hot emission factors from the coefficients in a
// Repository. It holds no mutable state and is safe for concurrent use.
type Model struct {
	repo *Repository
}

// NewModel returns a model that uses the coefficients in repo.
func NewModel(repo *Repository) *Model {
	return &Model{repo: repo}
}

// Request describes the vehicle and driving conditions for which a hot
// emission factor is needed. Fields that do not apply to the vehicle
// category are ignored.
type Request struct {
	Pollutant Pollutant
	Speed     float64 // km/h
	Category  VehicleCategory
	Engine    EngineType

	// Class is the emission standard of passenger cars and light
	// commercial vehicles.
	Class    Class
	Capacity float64 // engine capacity of passenger cars in liters

	// HDVType, HDVClass, Load and Slope only apply to heavy duty
	// vehicles and buses.
	HDVType  HDVType
	HDVClass HDVClass
	Load     Load
	Slope    Slope
}

// HotEmissionFactor returns the hot emission factor of req in g/km.
func (m *Model) HotEmissionFactor(req Request) (float64, error) {
	switch req.Category {
	case PassengerCar:
		switch req.Engine {
		case Gasoline:
			return m.GasolinePassengerCar(req.Pollutant, req.Speed, req.Class, req.Capacity)
		case Diesel:
			return m.DieselPassengerCar(req.Pollutant, req.Speed, req.Class, req.Capacity)
		}
		return 0, undefinedf("only gasoline and diesel passenger cars have hot emission factors, not %v", req.Engine)
	case LightCommercialVehicle:
		return m.LightCommercialVehicle(req.Pollutant, req.Speed, req.Engine, req.Class)
	case HeavyDutyVehicle, Bus:
		return m.HeavyDutyVehicle(req.Pollutant, req.Speed, req.Category, req.HDVType, req.HDVClass, req.Load, req.Slope)
	}
	return 0, undefinedf("no hot emission factors for vehicle category %v", req.Category)
}

// Emission returns the hot emissions, in grams, of vehicles described by
// req covering a total of distance kilometers.
func (m *Model) Emission(req Request, distance float64) (float64, error) {
	ef, err := m.HotEmissionFactor(req)
	if err != nil {
		return 0, err
	}
	return ef * distance, nil
}

// HotEmissionFactorUnit returns the hot emission factor of req with units
// of kg/m.
func (m *Model) HotEmissionFactorUnit(req Request) (*unit.Unit, error) {
	ef, err := m.HotEmissionFactor(req)
	if err != nil {
		return nil, err
	}
	const gPerKmToKgPerM = 1.e-6
	return unit.Div(unit.New(ef*gPerKmToKgPerM, unit.Kilogram), unit.New(1, unit.Meter)), nil
}

// EmissionUnit returns the hot emissions, in kg, of vehicles described by
// req covering a total distance d, which must have dimensions of length.
func (m *Model) EmissionUnit(req Request, d *unit.Unit) (*unit.Unit, error) {
	if d == nil {
		return nil, domainf("no distance given")
	}
	if err := d.Check(unit.Meter); err != nil {
		return nil, domainf("distance: %v", err)
	}
	ef, err := m.HotEmissionFactorUnit(req)
	if err != nil {
		return nil, err
	}
	return unit.Mul(ef, d), nil
}
