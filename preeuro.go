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

// preEuroRule selects between two literal formulas by speed: below is
// used when V < split and above otherwise. Rules without a speed split
// have split == 0.
type preEuroRule struct {
	split        float64
	below, above Row
}

func (r preEuroRule) row(v float64) Row {
	if v < r.split {
		return r.below
	}
	return r.above
}

type preEuroKey struct {
	class     Class
	pollutant Pollutant
	band      CapacityBand
}

func pcRow(f FormulaID, coefficients ...float64) Row {
	return mustRow(f, minPassengerCarSpeed, maxPassengerCarSpeed, coefficients...)
}

func bySpeed(split float64, below, above Row) preEuroRule {
	return preEuroRule{split: split, below: below, above: above}
}

func always(r Row) preEuroRule { return preEuroRule{above: r} }

// gasolinePreEuro holds the hot emission factors of gasoline passenger
// cars older than Euro 1 (Tables 3-35 to 3-39). Only CO, VOC and NOx
// are available.
var gasolinePreEuro = func() map[preEuroKey]preEuroRule {
	t := make(map[preEuroKey]preEuroRule)
	allBands := func(c Class, p Pollutant, r preEuroRule) {
		for b := CapacityLess1_4; b <= CapacityMore2_0; b++ {
			t[preEuroKey{c, p, b}] = r
		}
	}
	// small applies below 1.4 l and large from 1.4 l.
	twoBands := func(c Class, p Pollutant, small, large preEuroRule) {
		t[preEuroKey{c, p, CapacityLess1_4}] = small
		t[preEuroKey{c, p, Capacity1_4To2_0}] = large
		t[preEuroKey{c, p, CapacityMore2_0}] = large
	}
	threeBands := func(c Class, p Pollutant, rules ...preEuroRule) {
		for b, r := range rules {
			t[preEuroKey{c, p, CapacityBand(b)}] = r
		}
	}

	earlyNOx := []preEuroRule{
		always(pcRow(Quadratic, -0.00014, 0.0225, 1.173)),
		always(pcRow(Quadratic, -0.00004, 0.0217, 1.360)),
		always(pcRow(Quadratic, 0.0001, 0.03, 1.5)),
	}
	lateVOC := bySpeed(60, pcRow(Power, 25.75, -0.714), pcRow(Quadratic, 0.00009, -0.019, 1.95))

	allBands(PreECE, CO, bySpeed(100, pcRow(Power, 281, -0.63), pcRow(Linear, 0.112, 4.32)))
	allBands(PreECE, VOC, bySpeed(100, pcRow(Power, 30.34, -0.693), pcRow(Constant, 1.247)))
	threeBands(PreECE, NOx, earlyNOx...)

	allBands(ECE1500Or01, CO, bySpeed(50, pcRow(Power, 313, -0.76), pcRow(Quadratic, 0.0032, -0.406, 27.22)))
	allBands(ECE1500Or01, VOC, bySpeed(50, pcRow(Power, 24.99, -0.704), pcRow(Power, 4.85, -0.318)))
	threeBands(ECE1500Or01, NOx, earlyNOx...)

	allBands(ECE1502, CO, bySpeed(60, pcRow(Power, 300, -0.797), pcRow(Quadratic, 0.0026, -0.44, 26.26)))
	allBands(ECE1502, VOC, lateVOC)
	threeBands(ECE1502, NOx,
		always(pcRow(Quadratic, 0.00018, -0.0037, 1.479)),
		always(pcRow(Quadratic, 0.0002, -0.0038, 1.663)),
		always(pcRow(Quadratic, 0.00022, -0.0039, 1.87)))

	allBands(ECE1503, CO, bySpeed(20, pcRow(Logarithm, 161.36, -45.62), pcRow(Quadratic, 0.00377, -0.68, 37.92)))
	allBands(ECE1503, VOC, lateVOC)
	threeBands(ECE1503, NOx,
		always(pcRow(Quadratic, 0.00025, -0.0084, 1.616)),
		always(pcRow(Exponential, 1.29, 0.0099)),
		always(pcRow(Quadratic, 0.000294, -0.0112, 2.784)))

	allBands(ECE1504, CO, bySpeed(60, pcRow(Power, 260.788, -0.91), pcRow(Quadratic, 0.001163, -0.22, 14.653)))
	allBands(ECE1504, VOC, bySpeed(60, pcRow(Power, 19.079, -0.693), pcRow(Quadratic, 0.000179, -0.037, 2.608)))
	threeBands(ECE1504, NOx,
		always(pcRow(Quadratic, 0.000097, 0.003, 1.432)),
		always(pcRow(Quadratic, 0.000074, 0.013, 1.484)),
		always(pcRow(Quadratic, 0.000266, -0.014, 2.427)))

	// Improved conventional and open loop cars only go up to 2.0 l. The
	// large rules are also stored for CapacityMore2_0, which holds
	// engines of exactly 2.0 l.
	twoBands(ImprovedConventional, CO,
		always(pcRow(Quadratic, 0.002478, -0.294, 14.577)),
		always(pcRow(Quadratic, 0.000957, -0.151, 8.273)))
	twoBands(ImprovedConventional, VOC,
		always(pcRow(Quadratic, 0.000201, -0.034, 2.189)),
		always(pcRow(Quadratic, 0.000214, -0.034, 1.999)))
	twoBands(ImprovedConventional, NOx,
		always(pcRow(Logarithm, -0.926, 0.719)),
		always(pcRow(Quadratic, 0.000247, 0.0014, 1.387)))

	twoBands(OpenLoop, CO,
		always(pcRow(Quadratic, 0.002825, -0.377, 17.882)),
		always(pcRow(Quadratic, 0.002029, -0.230, 9.446)))
	twoBands(OpenLoop, VOC,
		always(pcRow(Quadratic, 0.000256, -0.0423, 2.185)),
		always(pcRow(Quadratic, 0.000099, -0.016, 0.808)))
	twoBands(OpenLoop, NOx,
		always(pcRow(Logarithm, -0.921, 0.616)),
		always(pcRow(Logarithm, -0.761, 0.515)))
	return t
}()

// Engine capacity limits, in liters, of the pre-Euro gasoline formulas.
const (
	minPreEuroGasolineCapacity = 0.8
	maxImprovedCapacity        = 2.0
)

// dieselPreEuro holds the hot emission factors of diesel passenger cars
// older than Euro 1 (Table 3-44), for engines of up to 2.0 l (index 0)
// and above 2.0 l (index 1). HC is not available.
var dieselPreEuro = map[Pollutant][2]Row{
	CO: sameCapacity(pcRow(Power, 5.41301, -0.574)),
	NOx: {
		pcRow(Quadratic, 0.000101, -0.014, 0.918),
		pcRow(Quadratic, 0.000133, -0.018, 1.331),
	},
	VOC: sameCapacity(pcRow(Power, 4.61, -0.937)),
	PM:  sameCapacity(pcRow(Quadratic, 0.000058, -0.0086, 0.45)),
	FC:  sameCapacity(pcRow(Quadratic, 0.014, -2.084, 118.489)),
}

// dieselPreEuroSplit is the largest engine capacity, in liters, using
// the first row of dieselPreEuro.
const dieselPreEuroSplit = 2.0

func sameCapacity(r Row) [2]Row { return [2]Row{r, r} }

// dieselEuro4CO is used for Euro 4 diesel cars of every capacity instead
// of the rows of Table 3-47.
var dieselEuro4CO = pcRow(Logistic, 17.5e-3, 86.42, 117.67, -21.99)

// Bracket constants for the PM emissions of gasoline cars from Euro 1 to
// Euro 4, in g/km, for urban, rural and highway speeds.
var (
	gasolinePMEuro1 = [3]float64{3.22e-3, 1.84e-3, 1.90e-3}
	gasolinePMGDI   = [3]float64{6.6e-3, 2.96e-3, 6.95e-3}
	gasolinePMEuro3 = [3]float64{1.28e-3, 8.36e-4, 1.19e-3}
)

// bracket returns the value of b for speed v.
func bracket(b [3]float64, v float64) float64 {
	switch {
	case v <= speedUrban:
		return b[0]
	case v <= speedRural:
		return b[1]
	default:
		return b[2]
	}
}
