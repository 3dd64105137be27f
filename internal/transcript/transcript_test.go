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

package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeChallengeIsDeterministicGivenSameBinds(t *testing.T) {
	run := func() string {
		tr := New("theta", "beta")
		require.NoError(t, tr.Bind("theta", []byte("commitment-a")))
		theta, err := tr.ComputeChallenge("theta")
		require.NoError(t, err)
		require.NoError(t, tr.Bind("beta", []byte("commitment-b")))
		beta, err := tr.ComputeChallenge("beta")
		require.NoError(t, err)
		return theta.String() + beta.String()
	}

	require.Equal(t, run(), run())
}

func TestComputeChallengeDiffersOnDifferentBinds(t *testing.T) {
	tr1 := New("x")
	require.NoError(t, tr1.Bind("x", []byte("a")))
	c1, err := tr1.ComputeChallenge("x")
	require.NoError(t, err)

	tr2 := New("x")
	require.NoError(t, tr2.Bind("x", []byte("b")))
	c2, err := tr2.ComputeChallenge("x")
	require.NoError(t, err)

	require.NotEqual(t, c1.String(), c2.String())
}
