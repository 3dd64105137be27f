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

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/vivianjeng/tachyon/internal/blinder"
	"github.com/vivianjeng/tachyon/internal/pcs"
	"github.com/vivianjeng/tachyon/opening"
)

// state is the LookupProver's pipeline position. Transitions are strict and
// one-directional: Uninitialized -> Compressed -> Permuted -> GrandProduct
// -> Transformed -> Evaluated. Calling a step out of order is a programmer
// error.
type state int

const (
	stateUninitialized state = iota
	stateCompressed
	statePermuted
	stateGrandProduct
	stateTransformed
	stateEvaluated
)

// BlindedPoly pairs a polynomial (Evals in evaluation form; Coeffs filled in
// by TransformEvalsToPoly) with the blinding scalar attached to it. The scalar
// is stored alongside the polynomial; it is not added into Evals or Coeffs.
type BlindedPoly struct {
	Evals  []fr.Element
	Coeffs []fr.Element
	Blind  fr.Element
}

// OpeningPointSet is the challenge point x together with its two rotations,
// the three points the lookup prover's polynomials are opened at.
type OpeningPointSet struct {
	X     fr.Element
	XPrev fr.Element
	XNext fr.Element
}

// Prover runs the per-circuit-row pipeline for the lookup arguments of one
// circuit instance, holding one compressed/permuted pair and one grand
// product per argument; BatchCompressPairs and
// BatchCommitPermutedPairs/BatchCommitGrandProductPolys are the
// inter-instance entry points used when several Provers (one per circuit
// instance) feed a single aggregated proof.
type Prover struct {
	domainSize int

	state state

	compressedPairs []Pair
	permutedPairs   []LookupPair
	grandProduct    []BlindedPoly
}

// LookupPair is a permuted (input, table) pair together with the blinding
// scalar attached to each half independently — CommitAndWriteToProof (or
// BatchCommitAt) commits Input and Table as two separate polynomials.
type LookupPair struct {
	Input BlindedPoly
	Table BlindedPoly
}

// NewProver returns a Prover for lookup arguments over a domain of the given
// size.
func NewProver(domainSize int) *Prover {
	return &Prover{domainSize: domainSize, state: stateUninitialized}
}

// ErrWrongState reports a pipeline step invoked out of its required order.
var ErrWrongState = errors.New("lookup: prover invoked out of pipeline order")

// CompressPairs runs the Compress state for every argument: each argument
// contributes one compressed (input, table) pair, compressed along theta.
func (p *Prover) CompressPairs(domainSize int, arguments []Argument, theta fr.Element) error {
	if p.state != stateUninitialized {
		return fmt.Errorf("%w: CompressPairs", ErrWrongState)
	}
	p.compressedPairs = make([]Pair, len(arguments))
	for i, arg := range arguments {
		p.compressedPairs[i] = CompressPair(domainSize, arg, theta)
	}
	p.state = stateCompressed
	return nil
}

// PermutePairs runs the Permute state: each compressed pair is permuted,
// and a fresh blinding scalar is attached to each half.
func (p *Prover) PermutePairs(b *blinder.Blinder) error {
	if p.state != stateCompressed {
		return fmt.Errorf("%w: PermutePairs", ErrWrongState)
	}
	p.permutedPairs = make([]LookupPair, len(p.compressedPairs))
	for i, cp := range p.compressedPairs {
		permuted, err := PermuteExpressionPair(cp)
		if err != nil {
			return err
		}
		inputBlind, err := b.Generate()
		if err != nil {
			return err
		}
		tableBlind, err := b.Generate()
		if err != nil {
			return err
		}
		p.permutedPairs[i] = LookupPair{
			Input: BlindedPoly{Evals: permuted.Input, Blind: inputBlind},
			Table: BlindedPoly{Evals: permuted.Table, Blind: tableBlind},
		}
	}
	p.state = statePermuted
	return nil
}

// CommitPermutedPairs commits every permuted input/table polynomial, either
// via the immediate CommitAndWriteToProof path or via BatchCommitAt
// followed by the caller's later FlushBatch — both produce the same
// verifier-visible byte sequence once the batch is flushed in slot order.
func (p *Prover) CommitPermutedPairs(backend *pcs.Backend, challenge string, commitIdx *int) error {
	if p.state != statePermuted {
		return fmt.Errorf("%w: CommitPermutedPairs", ErrWrongState)
	}
	for _, pp := range p.permutedPairs {
		if pcs.SupportsBatchMode {
			backend.BatchCommitAt(pp.Input.Evals, *commitIdx)
			*commitIdx++
			backend.BatchCommitAt(pp.Table.Evals, *commitIdx)
			*commitIdx++
		} else {
			if _, err := backend.CommitAndWriteToProof(pp.Input.Evals, challenge); err != nil {
				return err
			}
			if _, err := backend.CommitAndWriteToProof(pp.Table.Evals, challenge); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateGrandProductPolys runs the Grand-product state: for each argument,
// builds Z via the grand-product argument over the compressed/permuted
// pair, attaches a fresh blinding scalar, then discards the compressed
// pairs — they are not needed past this point (see the open question on
// whether proof composition would need them retained; this pipeline
// assumes not).
func (p *Prover) CreateGrandProductPolys(b *blinder.Blinder, beta, gamma fr.Element) error {
	if p.state != statePermuted {
		return fmt.Errorf("%w: CreateGrandProductPolys", ErrWrongState)
	}
	if len(p.compressedPairs) != len(p.permutedPairs) {
		return errors.New("lookup: compressed/permuted pair count mismatch")
	}

	p.grandProduct = make([]BlindedPoly, len(p.compressedPairs))
	for i, cp := range p.compressedPairs {
		permuted := Pair{Input: p.permutedPairs[i].Input.Evals, Table: p.permutedPairs[i].Table.Evals}
		z := CreateGrandProductPoly(
			p.domainSize,
			CreateNumeratorCallback(cp, beta, gamma),
			CreateDenominatorCallback(permuted, beta, gamma),
		)
		blind, err := b.Generate()
		if err != nil {
			return err
		}
		p.grandProduct[i] = BlindedPoly{Evals: z, Blind: blind}
	}
	p.compressedPairs = nil
	p.state = stateGrandProduct
	return nil
}

// CommitGrandProductPolys commits every argument's Z polynomial, via the
// same immediate-or-batch choice as CommitPermutedPairs.
func (p *Prover) CommitGrandProductPolys(backend *pcs.Backend, challenge string, commitIdx *int) error {
	if p.state != stateGrandProduct {
		return fmt.Errorf("%w: CommitGrandProductPolys", ErrWrongState)
	}
	for _, z := range p.grandProduct {
		if pcs.SupportsBatchMode {
			backend.BatchCommitAt(z.Evals, *commitIdx)
			*commitIdx++
		} else {
			if _, err := backend.CommitAndWriteToProof(z.Evals, challenge); err != nil {
				return err
			}
		}
	}
	return nil
}

// TransformEvalsToPoly interpolates every evaluation-form polynomial held
// by this prover (permuted input/table, grand-product Z) to coefficient
// form via inverse FFT over domain.
func (p *Prover) TransformEvalsToPoly(domain *fft.Domain) {
	for i := range p.permutedPairs {
		p.permutedPairs[i].Input.Coeffs = toCoeffs(p.permutedPairs[i].Input.Evals, domain)
		p.permutedPairs[i].Table.Coeffs = toCoeffs(p.permutedPairs[i].Table.Evals, domain)
	}
	for i := range p.grandProduct {
		p.grandProduct[i].Coeffs = toCoeffs(p.grandProduct[i].Evals, domain)
	}
	p.state = stateTransformed
}

func toCoeffs(evals []fr.Element, domain *fft.Domain) []fr.Element {
	c := make([]fr.Element, len(evals))
	copy(c, evals)
	domain.FFTInverse(c, fft.DIF)
	fft.BitReverse(c)
	return c
}

// Evaluate evaluates the three polynomial families at the challenge points
// and writes each claimed value into the transcript: Z at (x, x_next), A'
// at (x, x_prev), S' at x.
func (p *Prover) Evaluate(backend *pcs.Backend, points OpeningPointSet, challenge string) error {
	if p.state != stateTransformed {
		return fmt.Errorf("%w: Evaluate", ErrWrongState)
	}
	if len(p.grandProduct) != len(p.permutedPairs) {
		return errors.New("lookup: grand-product/permuted pair count mismatch")
	}
	for i := range p.grandProduct {
		if _, err := backend.EvaluateAndWriteToProof(p.grandProduct[i].Coeffs, points.X, challenge); err != nil {
			return err
		}
		if _, err := backend.EvaluateAndWriteToProof(p.grandProduct[i].Coeffs, points.XNext, challenge); err != nil {
			return err
		}
		if _, err := backend.EvaluateAndWriteToProof(p.permutedPairs[i].Input.Coeffs, points.X, challenge); err != nil {
			return err
		}
		if _, err := backend.EvaluateAndWriteToProof(p.permutedPairs[i].Input.Coeffs, points.XPrev, challenge); err != nil {
			return err
		}
		if _, err := backend.EvaluateAndWriteToProof(p.permutedPairs[i].Table.Coeffs, points.X, challenge); err != nil {
			return err
		}
	}
	p.state = stateEvaluated
	return nil
}

// Open emits the 5*N OpeningClaims (N = number of lookup arguments) that
// the Grouper consumes: Z at (x, x_next), A' at (x, x_prev), S' at x.
func (p *Prover) Open(namePrefix string, points OpeningPointSet) ([]opening.OpeningClaim, error) {
	if p.state != stateEvaluated && p.state != stateTransformed {
		return nil, fmt.Errorf("%w: Open", ErrWrongState)
	}
	if len(p.grandProduct) != len(p.permutedPairs) {
		return nil, errors.New("lookup: grand-product/permuted pair count mismatch")
	}

	claims := make([]opening.OpeningClaim, 0, 5*len(p.grandProduct))
	for i := range p.grandProduct {
		zOracle := opening.NewPolyOracle(fmt.Sprintf("%s/z/%d", namePrefix, i), p.grandProduct[i].Coeffs)
		aOracle := opening.NewPolyOracle(fmt.Sprintf("%s/a/%d", namePrefix, i), p.permutedPairs[i].Input.Coeffs)
		sOracle := opening.NewPolyOracle(fmt.Sprintf("%s/s/%d", namePrefix, i), p.permutedPairs[i].Table.Coeffs)

		claims = append(claims,
			claim(zOracle, points.X, zOracle.Poly),
			claim(zOracle, points.XNext, zOracle.Poly),
			claim(aOracle, points.X, aOracle.Poly),
			claim(aOracle, points.XPrev, aOracle.Poly),
			claim(sOracle, points.X, sOracle.Poly),
		)
	}
	return claims, nil
}

func claim(oracle opening.PolyOracle, point fr.Element, p []fr.Element) opening.OpeningClaim {
	var value fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		value.Mul(&value, &point).Add(&value, &p[i])
	}
	return opening.OpeningClaim{Oracle: oracle, Point: opening.NewPoint(point), Value: value}
}
