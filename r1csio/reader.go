// Copyright 2026 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package r1csio reads the circom-style ".r1cs" binary format: a little
// endian file carrying a magic header, a modulus-and-counts Header section,
// a Constraints section (three term-lists per constraint encoding
// A * B = C), and a WireId<->LabelId map, discoverable by section type tag
// in any order. It is peripheral to the opening aggregator — included only
// so a constraint system can be loaded into the oracles the rest of this
// module groups and opens.
package r1csio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// ErrDeserializationFailure wraps every malformed- or truncated-input
// condition this reader detects. Per the error-handling policy, a failed
// read returns this to the caller with no partial state retained.
var ErrDeserializationFailure = errors.New("r1csio: deserialization failure")

var magic = [4]byte{'r', '1', 'c', 's'}

// SectionType tags a section discoverable within the file, independent of
// its physical position.
type SectionType uint32

const (
	SectionHeader            SectionType = 0x1
	SectionConstraints       SectionType = 0x2
	SectionWireIDToLabelID   SectionType = 0x3
	SectionCustomGatesList   SectionType = 0x4
	SectionCustomGatesApply  SectionType = 0x5
)

// Header carries the field modulus and every count needed to size the
// Constraints and WireIDToLabelID sections.
type Header struct {
	Modulus           []byte
	NumWires          uint32
	NumPublicOutputs  uint32
	NumPublicInputs   uint32
	NumPrivateInputs  uint32
	NumLabels         uint64
	NumConstraints    uint32
}

// Term is one (wire_id, coefficient) pair inside a constraint's term list.
type Term struct {
	WireID      uint32
	Coefficient []byte
}

// Constraint is one row of A * B = C, each side a term list.
type Constraint struct {
	A, B, C []Term
}

// R1CS is the fully parsed constraint system.
type R1CS struct {
	Header             Header
	Constraints        []Constraint
	WireIDToLabelID    []uint64
}

// NumInstanceVariables is 1 (the constant wire) plus every public
// output/input wire.
func (r *R1CS) NumInstanceVariables() int {
	return 1 + int(r.Header.NumPublicOutputs) + int(r.Header.NumPublicInputs)
}

// Read parses an R1CS file from data. Sections may appear in any file
// order; Read locates Header, Constraints and WireIDToLabelID by their type
// tag before parsing each, and fails deserialization (with no partial
// *R1CS returned) if the magic header is wrong, a section is missing, or any
// section is truncated.
func Read(data []byte) (*R1CS, error) {
	buf := bytes.NewReader(data)

	var gotMagic [4]byte
	if err := binary.Read(buf, binary.LittleEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrDeserializationFailure, err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrDeserializationFailure, gotMagic)
	}

	var version uint32
	if err := binary.Read(buf, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrDeserializationFailure, err)
	}

	var numSections uint32
	if err := binary.Read(buf, binary.LittleEndian, &numSections); err != nil {
		return nil, fmt.Errorf("%w: reading section count: %v", ErrDeserializationFailure, err)
	}

	sections := make(map[SectionType][]byte, numSections)
	for i := uint32(0); i < numSections; i++ {
		var sectionType uint32
		var sectionSize uint64
		if err := binary.Read(buf, binary.LittleEndian, &sectionType); err != nil {
			return nil, fmt.Errorf("%w: reading section %d type: %v", ErrDeserializationFailure, i, err)
		}
		if err := binary.Read(buf, binary.LittleEndian, &sectionSize); err != nil {
			return nil, fmt.Errorf("%w: reading section %d size: %v", ErrDeserializationFailure, i, err)
		}
		payload := make([]byte, sectionSize)
		if _, err := io.ReadFull(buf, payload); err != nil {
			return nil, fmt.Errorf("%w: reading section %d payload: %v", ErrDeserializationFailure, i, err)
		}
		sections[SectionType(sectionType)] = payload
	}

	headerBytes, ok := sections[SectionHeader]
	if !ok {
		return nil, fmt.Errorf("%w: missing header section", ErrDeserializationFailure)
	}
	header, fieldSize, err := readHeader(headerBytes)
	if err != nil {
		return nil, err
	}

	// Constraints and the wire/label map only depend on the header, so they
	// can be parsed concurrently once it is known.
	var constraints []Constraint
	var wireIDToLabelID []uint64
	var g errgroup.Group
	g.Go(func() error {
		constraintsBytes, ok := sections[SectionConstraints]
		if !ok {
			return fmt.Errorf("%w: missing constraints section", ErrDeserializationFailure)
		}
		var err error
		constraints, err = readConstraints(constraintsBytes, header.NumConstraints, fieldSize)
		return err
	})
	g.Go(func() error {
		mapBytes, ok := sections[SectionWireIDToLabelID]
		if !ok {
			return fmt.Errorf("%w: missing wire-id/label-id map section", ErrDeserializationFailure)
		}
		var err error
		wireIDToLabelID, err = readWireIDToLabelIDMap(mapBytes, header.NumWires)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &R1CS{Header: header, Constraints: constraints, WireIDToLabelID: wireIDToLabelID}, nil
}

func readHeader(data []byte) (Header, int, error) {
	buf := bytes.NewReader(data)

	var fieldSize uint32
	if err := binary.Read(buf, binary.LittleEndian, &fieldSize); err != nil {
		return Header{}, 0, fmt.Errorf("%w: reading field size: %v", ErrDeserializationFailure, err)
	}
	modulus := make([]byte, fieldSize)
	if _, err := io.ReadFull(buf, modulus); err != nil {
		return Header{}, 0, fmt.Errorf("%w: reading modulus: %v", ErrDeserializationFailure, err)
	}

	var h Header
	h.Modulus = modulus
	for _, field := range []interface{}{
		&h.NumWires, &h.NumPublicOutputs, &h.NumPublicInputs,
		&h.NumPrivateInputs, &h.NumLabels, &h.NumConstraints,
	} {
		if err := binary.Read(buf, binary.LittleEndian, field); err != nil {
			return Header{}, 0, fmt.Errorf("%w: reading header field: %v", ErrDeserializationFailure, err)
		}
	}
	return h, int(fieldSize), nil
}

func readConstraints(data []byte, numConstraints uint32, fieldSize int) ([]Constraint, error) {
	buf := bytes.NewReader(data)
	constraints := make([]Constraint, numConstraints)
	for i := range constraints {
		var err error
		if constraints[i].A, err = readTermList(buf, fieldSize); err != nil {
			return nil, fmt.Errorf("%w: constraint %d side A: %v", ErrDeserializationFailure, i, err)
		}
		if constraints[i].B, err = readTermList(buf, fieldSize); err != nil {
			return nil, fmt.Errorf("%w: constraint %d side B: %v", ErrDeserializationFailure, i, err)
		}
		if constraints[i].C, err = readTermList(buf, fieldSize); err != nil {
			return nil, fmt.Errorf("%w: constraint %d side C: %v", ErrDeserializationFailure, i, err)
		}
	}
	return constraints, nil
}

func readTermList(buf *bytes.Reader, fieldSize int) ([]Term, error) {
	var n uint32
	if err := binary.Read(buf, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	terms := make([]Term, n)
	for k := range terms {
		if err := binary.Read(buf, binary.LittleEndian, &terms[k].WireID); err != nil {
			return nil, err
		}
		terms[k].Coefficient = make([]byte, fieldSize)
		if _, err := io.ReadFull(buf, terms[k].Coefficient); err != nil {
			return nil, err
		}
	}
	return terms, nil
}

func readWireIDToLabelIDMap(data []byte, numWires uint32) ([]uint64, error) {
	buf := bytes.NewReader(data)
	ids := make([]uint64, numWires)
	for i := range ids {
		if err := binary.Read(buf, binary.LittleEndian, &ids[i]); err != nil {
			return nil, fmt.Errorf("%w: wire %d: %v", ErrDeserializationFailure, i, err)
		}
	}
	return ids, nil
}
