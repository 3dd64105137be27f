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

// Package plonk wires the opening-claim aggregator together: it groups the
// claims a proof round produced, builds one combined quotient per group
// under a transcript-derived challenge, and reports the super point set the
// PCS needs for its own bookkeeping.
//
// See also
//
// https://zcash.github.io/halo2/design/proving-system/lookup.html
package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vivianjeng/tachyon/internal/poly"
	"github.com/vivianjeng/tachyon/opening"
	"github.com/vivianjeng/tachyon/quotient"
)

// AggregatedOpenings is the result of grouping one batch of claims and
// building every group's combined quotient.
type AggregatedOpenings struct {
	Groups        []opening.OpeningGroup
	Quotients     []*quotient.Result
	SuperPointSet *opening.SuperPointSet
}

// Aggregate groups claims by shared point sets and builds the combined
// quotient for every resulting group under challenge r. polyOf resolves a
// group's opaque Oracle back to the dense polynomial it names; it is only
// ever called on prover-side oracles, since only the prover holds
// polynomials to divide.
func Aggregate(claims []opening.OpeningClaim, r fr.Element, polyOf func(opening.Oracle) poly.Polynomial) (*AggregatedOpenings, error) {
	grouper := opening.NewGrouper()
	groups, err := grouper.GroupByPolyAndPoints(claims)
	if err != nil {
		return nil, err
	}

	quotients := make([]*quotient.Result, len(groups))
	for i, group := range groups {
		q, err := quotient.Build(group, r, polyOf)
		if err != nil {
			return nil, err
		}
		quotients[i] = q
	}

	return &AggregatedOpenings{
		Groups:        groups,
		Quotients:     quotients,
		SuperPointSet: grouper.SuperPointSet(),
	}, nil
}
