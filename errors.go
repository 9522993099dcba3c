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

import (
	"errors"
	"fmt"
)

// Every error returned by this package wraps one of the following,
// so callers can tell them apart with errors.Is.
var (
	// ErrUndefinedCombination means that the COPERT methodology has no
	// formula for the requested combination of vehicle, emission standard
	// and pollutant.
	ErrUndefinedCombination = errors.New("no formula for the requested combination")

	// ErrOutOfDomain means that the speed, or the engine capacity, is
	// outside of the range supported by the selected formula.
	ErrOutOfDomain = errors.New("outside of the supported domain")

	// ErrMissingClassification means that a categorical value has no
	// mapping in the table required by the requested calculation.
	ErrMissingClassification = errors.New("missing classification")

	// ErrParse means that an external coefficient source could not be
	// understood. It is only returned while building a Repository.
	ErrParse = errors.New("parse error")
)

func wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("copert: %w: %s", kind, fmt.Sprintf(format, args...))
}

func undefinedf(format string, args ...interface{}) error {
	return wrapf(ErrUndefinedCombination, format, args...)
}

func domainf(format string, args ...interface{}) error {
	return wrapf(ErrOutOfDomain, format, args...)
}

func missingf(format string, args ...interface{}) error {
	return wrapf(ErrMissingClassification, format, args...)
}

func parsef(format string, args ...interface{}) error {
	return wrapf(ErrParse, format, args...)
}
