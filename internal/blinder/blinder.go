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

// Package blinder generates the random blinding scalars that the lookup
// prover attaches to the permuted lookup polynomials and the grand-product
// polynomial. The prover stores each scalar beside its polynomial; the
// committed evaluations are not modified by it.
package blinder

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Blinder is the single logical owner of blinding-scalar generation for one
// proof. Like the transcript, it is mutated by exactly one owner at a time;
// Generate is safe to call concurrently from the intra-operation worker
// pools, serialized behind an internal mutex.
type Blinder struct {
	mu sync.Mutex
}

// New returns a fresh Blinder.
func New() *Blinder { return &Blinder{} }

// Generate draws a fresh uniformly random field element via fr.Element's
// crypto/rand-backed source, matching the blindPoly pattern of sampling one
// scalar per blinded coefficient.
func (b *Blinder) Generate() (fr.Element, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var x fr.Element
	if _, err := x.SetRandom(); err != nil {
		return fr.Element{}, err
	}
	return x, nil
}
