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

package lookup

import "github.com/vivianjeng/tachyon/internal/pcs"

// BatchCommitPermutedPairs commits the permuted pairs of every prover in an
// aggregated proof. commitIdx is a monotonic counter advanced as slots are
// assigned; callers that parallelize across instances must slot-assign
// before dispatching any parallel work so the eventual transcript append
// order stays deterministic regardless of completion order.
func BatchCommitPermutedPairs(provers []*Prover, backend *pcs.Backend, challenge string) error {
	if len(provers) == 0 {
		return nil
	}
	commitIdx := 0
	for _, p := range provers {
		if err := p.CommitPermutedPairs(backend, challenge, &commitIdx); err != nil {
			return err
		}
	}
	if pcs.SupportsBatchMode {
		_, err := backend.FlushBatch(challenge)
		return err
	}
	return nil
}

// BatchCommitGrandProductPolys is BatchCommitPermutedPairs' counterpart for
// the grand-product polynomials.
func BatchCommitGrandProductPolys(provers []*Prover, backend *pcs.Backend, challenge string) error {
	if len(provers) == 0 {
		return nil
	}
	commitIdx := 0
	for _, p := range provers {
		if err := p.CommitGrandProductPolys(backend, challenge, &commitIdx); err != nil {
			return err
		}
	}
	if pcs.SupportsBatchMode {
		_, err := backend.FlushBatch(challenge)
		return err
	}
	return nil
}
