/*
 * json.go, part of gomo.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package mojson

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	mo "github.com/rmera/gomo"
)

//An easily JSON-serializable error type.
type Error struct {
	IsError     bool //If this is false (no error) all the other fields will be at their zero-values.
	InGeometry  bool
	InBasis     bool
	InOrbitals  bool
	InDensities bool
	InSurfaces  bool
	InProcess   bool
	Function    string //which go function gave the error
	Message     string //the error itself
	Hint        string `json:",omitempty"`
	cause       error
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Unwrap returns the original error, so errors.Is works through an *Error.
func (J *Error) Unwrap() error {
	return J.cause
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error.
//where is the part of the job that was being processed: "geometry", "basis",
//"orbitals", "densities" or "surfaces". Anything else counts as processing.
func NewError(where, function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error(), cause: err}
	switch where {
	case "geometry":
		jerr.InGeometry = true
	case "basis":
		jerr.InBasis = true
	case "orbitals":
		jerr.InOrbitals = true
	case "densities":
		jerr.InDensities = true
	case "surfaces":
		jerr.InSurfaces = true
	default:
		jerr.InProcess = true
	}
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		jerr.Hint = strings.Join(hints, "; ")
	}
	return jerr
}

//GridInfo describes one evaluated grid.
type GridInfo struct {
	Type     string     `json:"type"`
	File     string     `json:"file,omitempty"`
	Origin   [3]float64 `json:"origin"`
	Step     float64    `json:"step"`
	Points   [3]int     `json:"points"`
	Min      float64    `json:"min"`
	Max      float64    `json:"max"`
	Complete bool       `json:"complete"`
}

//NewGridInfo summarizes grid, which was written to file.
func NewGridInfo(grid *mo.GridData, file string) GridInfo {
	s := grid.Size()
	min, max := grid.MinMax()
	return GridInfo{
		Type:     grid.Type().String(),
		File:     file,
		Origin:   [3]float64{s.Origin.X, s.Origin.Y, s.Origin.Z},
		Step:     s.Step,
		Points:   [3]int{s.NX, s.NY, s.NZ},
		Min:      min,
		Max:      max,
		Complete: grid.Complete(),
	}
}

//Result is the information passed back to the calling program.
type Result struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Grids     []GridInfo `json:"grids"`
	Unmatched []string   `json:"unmatched,omitempty"`
	Error     *Error     `json:"error,omitempty"`
}

//Send Marshals the result and writes it to out.
func (J *Result) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Result.Send", err)
	}
	return nil
}
