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

package opening

import "github.com/vivianjeng/tachyon/internal/poly"

// PolyOracle is the prover-side Oracle: a named, dense polynomial. Identity
// is by name, matching the "deep reference" requirement that two handles to
// the same logical polynomial compare equal regardless of storage address;
// two PolyOracles naming the same polynomial under different backing slices
// still group together.
type PolyOracle struct {
	Name string
	Poly poly.Polynomial
}

// NewPolyOracle wraps a dense polynomial under a stable name.
func NewPolyOracle(name string, p poly.Polynomial) PolyOracle {
	return PolyOracle{Name: name, Poly: p}
}

// Equal compares by name, not by the address of the backing slice.
func (o PolyOracle) Equal(other Oracle) bool {
	oo, ok := other.(PolyOracle)
	return ok && oo.Name == o.Name
}

// Less gives a stable total order over oracle names for canonicalization.
func (o PolyOracle) Less(other Oracle) bool {
	oo, ok := other.(PolyOracle)
	return ok && o.Name < oo.Name
}

// CommitmentOracle is the verifier-side Oracle: an opaque commitment handle
// identified by name. The same Grouper serves both sides because grouping
// only ever calls Equal/Less on the Oracle interface.
type CommitmentOracle struct {
	Name string
}

// Equal compares by name.
func (o CommitmentOracle) Equal(other Oracle) bool {
	oo, ok := other.(CommitmentOracle)
	return ok && oo.Name == o.Name
}

// Less gives a stable total order over commitment names.
func (o CommitmentOracle) Less(other Oracle) bool {
	oo, ok := other.(CommitmentOracle)
	return ok && o.Name < oo.Name
}
