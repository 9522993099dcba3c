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

// The reference coefficients below are transcribed from the EMEP/EEA air
// pollutant emission inventory guidebook 2013, part 1.A.3.b Road
// transportation, updated September 2014. A nil entry means the guidebook
// gives no formula for that combination. Repeated rows are repeated in
// the guidebook as well.

// Speeds, in km/h, separating urban, rural and highway driving.
const (
	speedUrban   = 60.
	speedRural   = 90.
	speedHighway = 130.
)

// Speed domain, in km/h, of the passenger car formulas.
const (
	minPassengerCarSpeed = 10.
	maxPassengerCarSpeed = speedHighway
)

// gasolinePassengerCarCoefficients holds coefficients a to f for gasoline
// passenger cars of Euro 1 and later (Table 3-41), by pollutant and
// position in the Euro ladder.
var gasolinePassengerCarCoefficients = [PM + 1][numEuro][]float64{
	CO: {
		{1.12e1, 1.29e-1, -1.02e-1, -9.47e-4, 6.77e-4, 0.0},        // Euro 1
		{6.05e1, 3.50e0, 1.52e-1, -2.52e-2, -1.68e-4, 0.0},         // Euro 2
		{7.17e1, 3.54e1, 1.14e1, -2.48e-1, 0.0, 0.0},               // Euro 3
		{1.36e-1, -1.41e-2, -8.91e-4, 4.99e-5, 0.0, 0.0},           // Euro 4
		{-1.35e-10, 7.86e-8, -1.22e-5, 7.75e-4, -1.97e-2, 3.98e-1}, // Euro 5
		{-6.5e-11, 4.78e-8, -7.79e-6, 5.06e-4, -1.38e-2, 3.54e-1},  // Euro 6
		{-4.42e-11, 4.04e-8, -6.73e-6, 4.34e-4, -1.17e-2, 3.38e-1}, // Euro 6c
	},
	HC: {
		{1.35, 1.78e-1, -6.77e-3, -1.27e-3, 0.0, 0.0},               // Euro 1
		{4.11e6, 1.66e6, -1.45e4, -1.03e4, 0.0, 0.0},                // Euro 2
		{5.57e-2, 3.65e-2, -1.1e-3, -1.88e-4, 1.25e-5, 0.0},         // Euro 3
		{1.18e-2, 0.0, -3.47e-5, 0.0, 8.84e-7, 0.0},                 // Euro 4
		{2.87e-16, 6.43, 2.17e-2, -3.42e-1, 0.0, 0.0},               // Euro 5
		{-1.73e-12, 7.45e-10, -9.59e-8, 5.32e-6, -1.61e-4, 8.98e-3}, // Euro 6
		{4.44e-13, -1.8e-10, 5.08e-8, -5.31e-6, 1.91e-4, 5.3e-3},    // Euro 6c
	},
	NOx: {
		{5.25e-1, 0.0, -1e-2, 0.0, 9.36e-5, 0.0},                // Euro 1
		{2.84e-1, -2.34e-2, -8.69e-3, 4.43e-4, 1.14e-4, 0.0},    // Euro 2
		{9.29e-2, -1.22e-2, -1.49e-3, 3.97e-5, 6.53e-6, 0.0},    // Euro 3
		{1.06e-1, 0.0, -1.58e-3, 0.0, 7.1e-6, 0.0},              // Euro 4
		{1.89e-1, 1.57, 8.15e-2, 2.73e-2, -2.49e-4, -2.68e-1},   // Euro 5
		{4.74e-1, 5.62, 3.41e-1, 8.38e-2, -1.52e-3, -1.19},      // Euro 6
		{9.99e14, 1.89e16, 1.31e15, 2.9e14, -6.34e12, -4.03e15}, // Euro 6c
	},
	PM: {
		nil,                                                       // Euro 1
		nil,                                                       // Euro 2
		nil,                                                       // Euro 3
		nil,                                                       // Euro 4
		{1.44e-13, 1.16e-10, -3.37e-8, 3.11e-6, -1.25e-4, 3.3e-3}, // Euro 5
		{2.31e-13, 1.26e-11, -1.1e-8, 1.23e-6, -6.29e-5, 2.72e-3}, // Euro 6
		{2.65e-13, -4.07e-11, 1.55e-9, 1.43e-7, -2.5e-5, 2.45e-3}, // Euro 6c
	},
}

// dieselPassengerCarCoefficients holds coefficients a to f for diesel
// passenger cars of Euro 1 and later (Table 3-47), by pollutant, position
// in the Euro ladder and engine capacity band.
var dieselPassengerCarCoefficients = [PM + 1][numEuro][CapacityMore2_0 + 1][]float64{
	CO: {
		{ // Euro 1
			nil,
			{9.96e-1, 0.0, -1.88e-2, 0.0, 1.09e-4, 0.0},
			{9.96e-1, 0.0, -1.88e-2, 0.0, 1.09e-4, 0.0},
		},
		{ // Euro 2
			nil,
			{9.00e-1, 0.0, -1.74e-2, 0.0, 8.77e-5, 0.0},
			{9.00e-1, 0.0, -1.74e-2, 0.0, 8.77e-5, 0.0},
		},
		{ // Euro 3
			nil,
			{1.69e-1, 0.0, -2.92e-3, 0.0, 1.25e-5, 1.1},
			{1.69e-1, 0.0, -2.92e-3, 0.0, 1.25e-5, 1.1},
		},
		{ // Euro 4
			nil,
			nil,
			nil,
		},
		{ // Euro 5
			{-8.66e13, 1.76e14, 2.47e13, 3.18e12, -1.94e11, 8.33e13},
			{-8.66e13, 1.76e14, 2.47e13, 3.18e12, -1.94e11, 8.33e13},
			{-8.66e13, 1.76e14, 2.47e13, 3.18e12, -1.94e11, 8.33e13},
		},
		{ // Euro 6
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
		},
		{ // Euro 6c
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
			{-3.58e-11, 1.23e-8, -1.49e-6, 8.58e-5, -2.94e-3, 1.03e-1},
		},
	},
	HC: {
		{ // Euro 1
			nil,
			{1.42e-1, 1.38e-2, -2.01e-3, -1.90e-5, 1.15e-5, 0.0},
			{1.59e-1, 0.0, -2.46e-3, 0.0, 1.21e-5, 0.0},
		},
		{ // Euro 2
			nil,
			{1.61e-1, 7.46e-2, -1.21e-3, -3.35e-4, 3.63e-6, 0.0},
			{5.01e4, 3.80e4, 8.03e3, 1.15e3, -2.66e1, 0.0},
		},
		{ // Euro 3
			nil,
			{9.65e-2, 1.03e-1, -2.38e-4, -7.24e-5, 1.93e-6, 0.0},
			{9.12e-2, 0.0, -1.68e-3, 0.0, 8.94e-6, 0.0},
		},
		{ // Euro 4
			{3.47e-2, 2.69e-2, -6.41e-4, 1.59e-3, 1.12e-5, 0.0},
			{3.47e-2, 2.69e-2, -6.41e-4, 1.59e-3, 1.12e-5, 0.0},
			{3.47e-2, 2.69e-2, -6.41e-4, 1.59e-3, 1.12e-5, 0.0},
		},
		{ // Euro 5
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
		},
		{ // Euro 6
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
		},
		{ // Euro 6c
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
			{1.04e32, 4.60e33, 1.53e32, 2.92e32, -3.83e28, 1.96e32},
		},
	},
	NOx: {
		{ // Euro 1
			nil,
			{3.1, 1.41e-1, -6.18e-3, -5.03e-4, 4.22e-4, 0.0},
			{3.1, 1.41e-1, -6.18e-3, -5.03e-4, 4.22e-4, 0.0},
		},
		{ // Euro 2
			nil,
			{2.4, 7.67e-2, -1.16e-2, -5.0e-4, 1.2e-4, 0.0},
			{2.4, 7.67e-2, -1.16e-2, -5.0e-4, 1.2e-4, 0.0},
		},
		{ // Euro 3
			nil,
			{2.82, 1.98e-1, 6.69e-2, -1.43e-3, -4.63e-4, 0.0},
			{2.82, 1.98e-1, 6.69e-2, -1.43e-3, -4.63e-4, 0.0},
		},
		{ // Euro 4
			{1.11, 0.0, -2.02e-2, 0.0, 1.48e-4, 0.0},
			{1.11, 0.0, -2.02e-2, 0.0, 1.48e-4, 0.0},
			{1.11, 0.0, -2.02e-2, 0.0, 1.48e-4, 0.0},
		},
		{ // Euro 5
			{9.46e-1, 4.26e-3, -1.14e-2, -5.15e-5, 6.67e-5, 1.92},
			{9.46e-1, 4.26e-3, -1.14e-2, -5.15e-5, 6.67e-5, 1.92},
			{9.46e-1, 4.26e-3, -1.14e-2, -5.15e-5, 6.67e-5, 1.92},
		},
		{ // Euro 6
			{4.36e-1, 1.0e-2, -5.39e-3, -1.02e-4, 2.90e-5, -4.61e-1},
			{4.36e-1, 1.0e-2, -5.39e-3, -1.02e-4, 2.90e-5, -4.61e-1},
			{4.36e-1, 1.0e-2, -5.39e-3, -1.02e-4, 2.90e-5, -4.61e-1},
		},
		{ // Euro 6c
			{2.33e-1, 1.00e-2, -2.88e-3, -1.02e-4, 1.55e-5, -2.46e-1},
			{2.33e-1, 1.00e-2, -2.88e-3, -1.02e-4, 1.55e-5, -2.46e-1},
			{2.33e-1, 1.00e-2, -2.88e-3, -1.02e-4, 1.55e-5, -2.46e-1},
		},
	},
	PM: {
		{ // Euro 1
			nil,
			{1.14e-1, 0.0, -2.33e-3, 0.0, 2.26e-5, 0.0},
			{1.14e-1, 0.0, -2.33e-3, 0.0, 2.26e-5, 0.0},
		},
		{ // Euro 2
			nil,
			{8.66e-2, 0.0, -1.42e-3, 0.0, 1.06e-5, 0.0},
			{8.66e-2, 0.0, -1.42e-3, 0.0, 1.06e-5, 0.0},
		},
		{ // Euro 3
			nil,
			{5.15e-2, 0.0, -8.8e-4, 0.0, 8.12e-6, 0.0},
			{5.15e-2, 0.0, -8.8e-4, 0.0, 8.12e-6, 0.0},
		},
		{ // Euro 4
			{4.50e-2, 0.0, -5.39e-4, 0.0, 3.48e-6, 0.0},
			{4.50e-2, 0.0, -5.39e-4, 0.0, 3.48e-6, 0.0},
			{4.50e-2, 0.0, -5.39e-4, 0.0, 3.48e-6, 0.0},
		},
		{ // Euro 5
			{1.17e-3, 1.06e1, -6.48, 5.67e-1, 1.23e-2, 0.0},
			{1.17e-3, 1.06e1, -6.48, 5.67e-1, 1.23e-2, 0.0},
			{1.17e-3, 1.06e1, -6.48, 5.67e-1, 1.23e-2, 0.0},
		},
		{ // Euro 6
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
		},
		{ // Euro 6c
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
			{-1.21e18, 1.63e20, 1.79e18, 2.89e19, 1.17e16, 4.09e18},
		},
	},
}

// lcvPreEuro1Coefficients holds the speed domain and the quadratic
// coefficients {Vmin, Vmax, a, b, c} for light commercial vehicles of the
// conventional and Euro 1 standards (merged from Tables 3-59 and 3-62).
var lcvPreEuro1Coefficients = map[EngineType]map[Pollutant]map[Class][]float64{
	Gasoline: {
		CO: {
			ImprovedConventional: {10.0, 110.0, 0.01104, -1.5132, 57.789},
			Euro1:                {10.0, 120.0, 0.0037, -0.5215, 19.127},
		},
		NOx: {
			ImprovedConventional: {10.0, 110.0, 0.0, 0.0179, 1.9547},
			Euro1:                {10.0, 120.0, 7.55e-5, -0.009, 0.666},
		},
		VOC: {
			ImprovedConventional: {10.0, 110.0, 67.7e-5, -0.117, 5.4734},
			Euro1:                {10.0, 120.0, 5.77e-5, -0.01047, 0.54734},
		},
		FC: {
			ImprovedConventional: {10.0, 110.0, 0.0167, -2.649, 161.51},
			Euro1:                {10.0, 120.0, 0.0195, -3.09, 188.85},
		},
	},
	Diesel: {
		CO: {
			ImprovedConventional: {10.0, 110.0, 20e-5, -0.0256, 1.8281},
			Euro1:                {10.0, 110.0, 22.3e-5, -0.026, 1.076},
		},
		NOx: {
			ImprovedConventional: {10.0, 110.0, 81.6e-5, -0.1189, 5.1234},
			Euro1:                {10.0, 110.0, 24.1e-5, -0.03181, 2.0247},
		},
		VOC: {
			ImprovedConventional: {10.0, 110.0, 1.75e-5, -0.00284, 0.2162},
			Euro1:                {10.0, 110.0, 1.75e-5, -0.00284, 0.2162},
		},
		PM: {
			ImprovedConventional: {10.0, 110.0, 1.25e-5, -0.000577, 0.288},
			Euro1:                {10.0, 110.0, 4.5e-5, -0.004885, 0.1932},
		},
		FC: {
			ImprovedConventional: {10.0, 110.0, 0.02113, -2.65, 148.91},
			Euro1:                {10.0, 110.0, 0.0198, -2.506, 137.42},
		},
	},
}

// lcvReductionPercentages holds the emission reduction, in percent,
// of Euro 2 to Euro 4 light commercial vehicles relative to Euro 1
// (merged from Tables 3-60 and 3-63).
var lcvReductionPercentages = map[EngineType]map[Class]map[Pollutant]float64{
	Gasoline: {
		Euro2: {CO: 39.0, NOx: 66.0, VOC: 76.0},
		Euro3: {CO: 48.0, NOx: 79.0, VOC: 86.0},
		Euro4: {CO: 72.0, NOx: 90.0, VOC: 94.0},
	},
	Diesel: {
		Euro2: {CO: 0.0, NOx: 0.0, VOC: 0.0, PM: 0.0},
		Euro3: {CO: 18.0, NOx: 16.0, VOC: 38.0, PM: 33.0},
		Euro4: {CO: 35.0, NOx: 32.0, VOC: 77.0, PM: 65.0},
	},
}
