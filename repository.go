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

package copert

import "fmt"

// pcKey identifies a passenger car row. Gasoline rows always use
// CapacityLess1_4.
type pcKey struct {
	pollutant Pollutant
	class     Class
	band      CapacityBand
}

// lcvKey identifies a light commercial vehicle or light duty row.
type lcvKey struct {
	engine    EngineType
	class     Class
	pollutant Pollutant
}

type ldvKey = lcvKey

type hdvKey struct {
	category  VehicleCategory
	hdvType   HDVType
	class     HDVClass
	pollutant Pollutant
	load      Load
	slope     Slope
}

// Repository holds the coefficients of all hot emission factor formulas.
// It cannot be modified once built and is safe for concurrent use.
// The lookup methods never fail: they return the undefined Row when
// there is no data for the requested combination.
type Repository struct {
	gasolinePC   map[pcKey]Row
	dieselPC     map[pcKey]Row
	lcvPreEuro1  map[lcvKey]Row
	lcvReduction map[lcvKey]float64
	ldv          map[ldvKey]Row
	hdv          map[hdvKey]Row
}

// BuildRepository creates a repository from the records of the light duty
// and heavy duty parameter sources, merged with the passenger car and
// light commercial vehicle tables of the EMEP/EEA guidebook, which are
// compiled into this package. Either slice may be empty. Unknown labels,
// invalid values and duplicate records return an error wrapping ErrParse.
func BuildRepository(ldv []LightDutyRecord, hdv []HeavyDutyRecord) (*Repository, error) {
	r := &Repository{
		gasolinePC:   make(map[pcKey]Row),
		dieselPC:     make(map[pcKey]Row),
		lcvPreEuro1:  make(map[lcvKey]Row),
		lcvReduction: make(map[lcvKey]float64),
		ldv:          make(map[ldvKey]Row),
		hdv:          make(map[hdvKey]Row),
	}
	r.addReferenceTables()

	for i, rec := range ldv {
		k, err := rec.key()
		if err != nil {
			return nil, withRecord(err, "light duty", i)
		}
		if _, ok := r.ldv[k]; ok {
			return nil, parsef("light duty record %d: duplicate record for %v %v %v", i, k.engine, k.class, k.pollutant)
		}
		row, err := rec.row()
		if err != nil {
			return nil, withRecord(err, "light duty", i)
		}
		r.ldv[k] = row
	}

	// Records without an equation are kept as undefined rows so that
	// duplicates of them are still detected.
	for i, rec := range hdv {
		k, err := rec.key()
		if err != nil {
			return nil, withRecord(err, "heavy duty", i)
		}
		if _, ok := r.hdv[k]; ok {
			return nil, parsef("heavy duty record %d: duplicate record for %v %v %v %v %v %v",
				i, k.category, k.hdvType, k.class, k.pollutant, k.load, k.slope)
		}
		row, err := rec.row()
		if err != nil {
			return nil, withRecord(err, "heavy duty", i)
		}
		r.hdv[k] = row
	}
	return r, nil
}

// withRecord adds the position of a record to err, which already wraps
// ErrParse.
func withRecord(err error, source string, i int) error {
	return fmt.Errorf("%w (%s record %d)", err, source, i)
}

func (r *Repository) addReferenceTables() {
	for p, byClass := range gasolinePassengerCarCoefficients {
		for i, c := range byClass {
			if c == nil {
				continue
			}
			class := euroLadder[i]
			r.gasolinePC[pcKey{Pollutant(p), class, CapacityLess1_4}] = mustRow(
				gasolineEuroFormula(Pollutant(p), class), minPassengerCarSpeed, maxPassengerCarSpeed, c...)
		}
	}
	for p, byClass := range dieselPassengerCarCoefficients {
		for i, byBand := range byClass {
			class := euroLadder[i]
			for b, c := range byBand {
				if c == nil {
					continue
				}
				r.dieselPC[pcKey{Pollutant(p), class, CapacityBand(b)}] = mustRow(
					dieselEuroFormula(Pollutant(p), class), minPassengerCarSpeed, maxPassengerCarSpeed, c...)
			}
		}
	}
	for e, byPollutant := range lcvPreEuro1Coefficients {
		for p, byClass := range byPollutant {
			for class, c := range byClass {
				r.lcvPreEuro1[lcvKey{e, class, p}] = mustRow(Quadratic, c[0], c[1], c[2:]...)
			}
		}
	}
	for e, byClass := range lcvReductionPercentages {
		for class, byPollutant := range byClass {
			for p, pct := range byPollutant {
				r.lcvReduction[lcvKey{e, class, p}] = pct
			}
		}
	}
}

// GasolinePassengerCar returns the row of a gasoline passenger car of
// Euro 1 or later.
func (r *Repository) GasolinePassengerCar(p Pollutant, c Class) Row {
	return r.gasolinePC[pcKey{p, c, CapacityLess1_4}]
}

// DieselPassengerCar returns the row of a diesel passenger car of Euro 1
// or later.
func (r *Repository) DieselPassengerCar(p Pollutant, c Class, b CapacityBand) Row {
	return r.dieselPC[pcKey{p, c, b}]
}

// LightCommercialPreEuro1 returns the quadratic row of a conventional or
// Euro 1 light commercial vehicle.
func (r *Repository) LightCommercialPreEuro1(e EngineType, p Pollutant, c Class) Row {
	return r.lcvPreEuro1[lcvKey{e, c, p}]
}

// LightCommercialReduction returns the reduction, in percent, of the
// emissions of a Euro 2 to Euro 4 light commercial vehicle relative to
// Euro 1. ok is false if there is none.
func (r *Repository) LightCommercialReduction(e EngineType, c Class, p Pollutant) (pct float64, ok bool) {
	pct, ok = r.lcvReduction[lcvKey{e, c, p}]
	return
}

// LightDuty returns the row of a Euro 5 or later light commercial vehicle.
func (r *Repository) LightDuty(e EngineType, c Class, p Pollutant) Row {
	return r.ldv[ldvKey{e, c, p}]
}

// HeavyDuty returns the row of a heavy duty vehicle or bus.
func (r *Repository) HeavyDuty(cat VehicleCategory, t HDVType, c HDVClass, p Pollutant, l Load, s Slope) Row {
	return r.hdv[hdvKey{cat, t, c, p, l, s}]
}

// Len returns the number of light duty and heavy duty rows loaded from
// external sources, including heavy duty rows without a formula.
func (r *Repository) Len() (ldv, hdv int) { return len(r.ldv), len(r.hdv) }
