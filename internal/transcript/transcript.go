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

// Package transcript wraps github.com/consensys/gnark-crypto/fiat-shamir
// behind the total order the aggregator and lookup prover need: every
// challenge (theta, beta, gamma, x, r) is a synchronization point, and all
// commitments/evaluations bound before it must be absorbed in a
// deterministic sequence first.
package transcript

import (
	"crypto/sha256"
	"hash"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"
)

// Transcript is the single logical owner of the Fiat-Shamir state for one
// proof. Binds and challenge draws are serialized behind a mutex so that
// parallel commit/evaluate work can safely append to it once resolved to a
// deterministic order by its caller.
type Transcript struct {
	mu sync.Mutex
	fs *fiatshamir.Transcript
}

// New creates a transcript that will be asked to derive exactly the
// challenges named, in the order they are later computed. hFunc defaults to
// sha256, matching the hash the PLONK backend seeds Fiat-Shamir with.
func New(challenges ...string) *Transcript {
	return NewWithHash(sha256.New(), challenges...)
}

// NewWithHash is like New but lets the caller pick the underlying hash.
func NewWithHash(hFunc hash.Hash, challenges ...string) *Transcript {
	return &Transcript{fs: fiatshamir.NewTranscript(hFunc, challenges...)}
}

// Bind appends data to challenge's running hash. Call once per commitment
// or evaluation that must be absorbed before that challenge is drawn.
func (t *Transcript) Bind(challenge string, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fs.Bind(challenge, data)
}

// ComputeChallenge finalizes challenge's hash and interprets the digest as
// a field element.
func (t *Transcript) ComputeChallenge(challenge string) (fr.Element, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, err := t.fs.ComputeChallenge(challenge)
	if err != nil {
		return fr.Element{}, err
	}
	var r fr.Element
	r.SetBytes(b)
	return r, nil
}
