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

// Package pcs adapts github.com/consensys/gnark-crypto/ecc/bn254/kzg to
// the narrow PcsBackend contract the lookup prover and the opening
// aggregator consume: commit (immediate or batch-queued), and
// evaluate-and-write into the shared transcript.
package pcs

import (
	"errors"
	"runtime"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	"github.com/vivianjeng/tachyon/internal/transcript"
	"github.com/vivianjeng/tachyon/logger"
)

// ErrUnfilledSlot is returned by FlushBatch if a commit_idx slot was
// reserved (the caller's monotonic counter advanced past it) but
// BatchCommitAt was never called to fill it — a caller bug, not a
// cryptographic failure.
var ErrUnfilledSlot = errors.New("pcs: reserved batch slot was never committed")

// Backend is the PCS contract consumed by the lookup prover: commit to
// evaluation-form polynomials and evaluate-and-write claimed values into the
// transcript. KZG over bn254, via gnark-crypto, is the concrete instance;
// SupportsBatchMode lets callers pick the Commit-or-enqueue branch the spec
// requires to produce the same verifier-visible byte sequence either way.
type Backend struct {
	SRS *kzg.SRS
	t   *transcript.Transcript

	mu          sync.Mutex
	queue       map[int][]fr.Element
	filledSlots *bitset.BitSet
}

// New returns a Backend bound to srs and the proof's shared transcript.
func New(srs *kzg.SRS, t *transcript.Transcript) *Backend {
	return &Backend{
		SRS:         srs,
		t:           t,
		queue:       make(map[int][]fr.Element),
		filledSlots: bitset.New(0),
	}
}

// SupportsBatchMode reports whether BatchCommitAt may be used instead of
// CommitAndWriteToProof. gnark-crypto's KZG has no multi-polynomial MSM
// batching API, so this backend always runs the immediate branch, but the
// flag keeps callers branch-compatible with a PCS that does.
const SupportsBatchMode = false

// CommitAndWriteToProof commits evals immediately and binds the digest into
// challenge's running transcript hash.
func (b *Backend) CommitAndWriteToProof(evals []fr.Element, challenge string) (kzg.Digest, error) {
	digest, err := kzg.Commit(evals, b.SRS.Pk, runtime.NumCPU())
	if err != nil {
		logger.Logger(logger.ComponentPCS).Warn().Err(err).Msg("pcs: commit failed")
		return kzg.Digest{}, err
	}
	raw := digest.RawBytes()
	if err := b.t.Bind(challenge, raw[:]); err != nil {
		return kzg.Digest{}, err
	}
	return digest, nil
}

// BatchCommitAt enqueues evals at a caller-assigned sequential slot. The
// slot is reserved (by the caller advancing a monotonic commit_idx before
// any parallel work begins) so that out-of-order completion across
// inter-instance parallelism never reorders the eventual commitments.
func (b *Backend) BatchCommitAt(evals []fr.Element, slot int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queue[slot] = evals
	b.filledSlots.Set(uint(slot))
}

// FlushBatch commits every queued slot in ascending slot order and binds
// each digest into challenge's transcript hash, resolving the batch to the
// deterministic sequential append sequence the transcript requires before
// the next challenge may be drawn.
func (b *Backend) FlushBatch(challenge string) ([]kzg.Digest, error) {
	b.mu.Lock()
	n := len(b.queue)
	slots := make([]int, 0, n)
	maxSlot := -1
	for slot := range b.queue {
		slots = append(slots, slot)
		if slot > maxSlot {
			maxSlot = slot
		}
	}
	for i := 0; i <= maxSlot; i++ {
		if !b.filledSlots.Test(uint(i)) {
			b.mu.Unlock()
			return nil, ErrUnfilledSlot
		}
	}
	b.mu.Unlock()

	// insertion sort is fine: n is the number of polynomials in one round,
	// bounded by circuit size, not by domain size.
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j-1] > slots[j]; j-- {
			slots[j-1], slots[j] = slots[j], slots[j-1]
		}
	}

	logger.Logger(logger.ComponentPCS).Debug().Int("count", len(slots)).Str("challenge", challenge).Msg("pcs: flushing batch")

	digests := make([]kzg.Digest, len(slots))
	for i, slot := range slots {
		d, err := kzg.Commit(b.queue[slot], b.SRS.Pk, runtime.NumCPU())
		if err != nil {
			return nil, err
		}
		digests[i] = d
		raw := d.RawBytes()
		if err := b.t.Bind(challenge, raw[:]); err != nil {
			return nil, err
		}
	}

	b.mu.Lock()
	b.queue = make(map[int][]fr.Element)
	b.filledSlots = bitset.New(0)
	b.mu.Unlock()

	return digests, nil
}

// EvaluateAndWriteToProof evaluates p at x and binds the claimed value into
// challenge's running transcript hash.
func (b *Backend) EvaluateAndWriteToProof(p []fr.Element, x fr.Element, challenge string) (fr.Element, error) {
	var value fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		value.Mul(&value, &x).Add(&value, &p[i])
	}
	raw := value.Bytes()
	if err := b.t.Bind(challenge, raw[:]); err != nil {
		return fr.Element{}, err
	}
	return value, nil
}
