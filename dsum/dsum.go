/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package dsum implements the distributed, label-keyed, zero-sum mask
// protocol that lets a cohort of mutually untrusting clients agree on
// per-round masks that cancel on summation without a trusted third
// party. dmcfe builds its partial decryption keys directly on State.
package dsum

import (
	"crypto/sha256"
	"sort"

	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
	"github.com/fentec-go/funcenc/internal/xhash"
)

// KeyPair is a client's DSum keypair: a random secret scalar and its
// public point dsk*g1.
type KeyPair struct {
	Priv *big.Int
	Pub  *bn256.G1
}

// Setup samples a fresh DSum keypair.
func Setup() (*KeyPair, error) {
	priv, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Priv: priv,
		Pub:  new(bn256.G1).ScalarMult(curve.G1Gen, priv),
	}, nil
}

// Index returns pub's rank in the bytewise-lexicographic sort of allPub.
// Every client in a cohort computes the same indices from the same set
// of public keys without a central registrar (spec.md's "client indexing
// without a central registrar").
func Index(pub *bn256.G1, allPub []*bn256.G1) int {
	target := pub.Marshal()
	rank := 0
	for _, p := range allPub {
		if lessBytes(p.Marshal(), target) {
			rank++
		}
	}
	return rank
}

// SortPublicKeys returns a copy of allPub in the canonical lexicographic
// order that Index assumes.
func SortPublicKeys(allPub []*bn256.G1) []*bn256.G1 {
	sorted := make([]*bn256.G1, len(allPub))
	copy(sorted, allPub)
	sort.Slice(sorted, func(i, j int) bool {
		return lessBytes(sorted[i].Marshal(), sorted[j].Marshal())
	})
	return sorted
}

func lessBytes(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// State holds one client's view of the cohort after setup: its index,
// its DH shared secret with every other client, and the derived
// zero-sum scalar s_i = sum_{j != i} T_{i,j}, where T_{i,j} = -T_{j,i} is
// the already-signed pair value from xhash.PairScalar.
type State struct {
	idx    int
	shared []*bn256.G1 // shared[j] is nil for j == idx
	s      *big.Int
}

// NewState runs DSum setup for client idx given its own secret key and
// the full, index-ordered list of cohort public keys (allPub[idx] must
// be this client's own public key). The cohort must have at least two
// clients.
func NewState(idx int, priv *big.Int, allPub []*bn256.G1) (*State, error) {
	if len(allPub) < 2 {
		return nil, ferr.ErrConfigError
	}
	if idx < 0 || idx >= len(allPub) {
		return nil, ferr.ErrConfigError
	}

	shared := make([]*bn256.G1, len(allPub))
	s := big.NewInt(0)
	for j, pubJ := range allPub {
		if j == idx {
			continue
		}
		shared[j] = new(bn256.G1).ScalarMult(pubJ, priv)
		t := xhash.PairScalar(idx, j, shared[j])
		s.Add(s, t)
	}
	s.Mod(s, curve.Order)

	return &State{idx: idx, shared: shared, s: s}, nil
}

// DeterministicKeyPair derives a reproducible DSum keypair from a fixed
// 32-byte seed instead of the system RNG, using the same
// data.NewRandomDetVector (salsa20-keystream) generator the teacher uses
// for repeatable test vectors. Only meant for tests that need a stable
// cohort across runs; production code should use Setup.
func DeterministicKeyPair(seed *[32]byte) (*KeyPair, error) {
	v, err := data.NewRandomDetVector(1, curve.Order, seed)
	if err != nil {
		return nil, err
	}
	priv := v[0]
	return &KeyPair{
		Priv: priv,
		Pub:  new(bn256.G1).ScalarMult(curve.G1Gen, priv),
	}, nil
}

// Scalar returns this client's zero-sum mask s_i. Summing Scalar() over
// every client in the cohort yields 0 (mod q) (invariant I1 / P4).
func (st *State) Scalar() *big.Int {
	return new(big.Int).Set(st.s)
}

// Contribute emits this round's masked contribution
// c_i = v + hash_to_scalar(label)*s_i. Once every client's contribution
// is summed (Combine), the masks cancel and the sum of the v's remains.
func (st *State) Contribute(label []byte, v *big.Int) *big.Int {
	h := xhash.ToScalar(xhash.DSTRound, label)
	c := new(big.Int).Mul(h, st.s)
	c.Add(c, v)
	return c.Mod(c, curve.Order)
}

// Combine sums a round's contributions mod q.
func Combine(contributions []*big.Int) *big.Int {
	sum := big.NewInt(0)
	for _, c := range contributions {
		sum.Add(sum, c)
	}
	return sum.Mod(sum, curve.Order)
}

// MaskMatrix derives a rows*cols matrix of zero-summing scalars from the
// same pairwise shared secrets as Scalar, generalizing it to more than
// one channel per pair. dmcfe uses this to build the 2x2 masking matrix
// behind its partial decryption keys, instead of re-deriving pairwise
// hashes inline.
func (st *State) MaskMatrix(rows, cols int) (data.Matrix, error) {
	sum := data.NewConstantMatrix(rows, cols, big.NewInt(0))
	var err error
	for j, sharedJ := range st.shared {
		if sharedJ == nil {
			continue
		}
		key := sha256.Sum256(sharedJ.Marshal())
		add, derr := data.NewRandomDetMatrix(rows, cols, curve.Order, &key)
		if derr != nil {
			return nil, derr
		}
		if j < st.idx {
			sum, err = sum.Add(add)
		} else {
			sum, err = sum.Sub(add)
		}
		if err != nil {
			return nil, err
		}
		sum = sum.Mod(curve.Order)
	}
	return sum, nil
}
