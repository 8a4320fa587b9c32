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

// Package mcfe implements multi-client functional encryption for inner
// products with a trusted authority: the authority runs Setup once and
// distributes one ClientKey per client, after which clients encrypt
// independently under a shared label and any holder of a derived
// decryption key recovers the aggregate inner product across all
// clients' vectors.
package mcfe

import (
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
	"github.com/fentec-go/funcenc/internal/xhash"
)

// ClientKey is the per-client secret the authority distributes: an
// IPFE-style m_i*2 secret matrix, plus (when the IPFE layer is enabled)
// nothing further - the DSum state belongs to dmcfe, not mcfe, since
// trusted-authority MCFE has no need for inter-client cancellation.
type ClientKey struct {
	Idx    int
	S      data.Matrix // m_i x 2; the single row (0, s1) when NoIPFE is set
	NoIPFE bool
}

// Setup runs the trusted authority: dims[i] gives client i's vector
// dimension m_i. When noIPFE is true, every dims[i] must be 1 and the
// degenerate single-component encryption path is used instead.
func Setup(dims []int, noIPFE bool) ([]*ClientKey, error) {
	if len(dims) == 0 {
		return nil, ferr.ErrConfigError
	}
	keys := make([]*ClientKey, len(dims))
	for i, m := range dims {
		if m <= 0 {
			return nil, ferr.ErrConfigError
		}
		if noIPFE && m != 1 {
			return nil, ferr.ErrConfigError
		}
		if noIPFE {
			s1, err := curve.RandomScalar()
			if err != nil {
				return nil, err
			}
			keys[i] = &ClientKey{Idx: i, NoIPFE: true, S: data.Matrix{data.NewVector([]*big.Int{big.NewInt(0), s1})}}
			continue
		}

		rows := make([]data.Vector, m)
		for k := 0; k < m; k++ {
			s0, err := curve.RandomScalar()
			if err != nil {
				return nil, err
			}
			s1, err := curve.RandomScalar()
			if err != nil {
				return nil, err
			}
			rows[k] = data.NewVector([]*big.Int{s0, s1})
		}
		S, err := data.NewMatrix(rows)
		if err != nil {
			return nil, err
		}
		keys[i] = &ClientKey{Idx: i, S: S}
	}
	return keys, nil
}

// Encrypt encrypts client i's vector x_i under a label. When the
// ClientKey was built with NoIPFE, x must have exactly one component and
// the ciphertext degenerates to x*g1 + s1*hash_to_G1(label).
func (ck *ClientKey) Encrypt(x data.Vector, label []byte) (data.VectorG1, error) {
	if len(x) != ck.S.Rows() {
		return nil, ferr.ErrDimensionMismatch
	}

	if ck.NoIPFE {
		// Reuses the second basis point of the full two-point label
		// basis (rather than a third, independent hash call) so that
		// Decrypt's dk . u(label) term is identical whether or not the
		// IPFE layer was disabled at Setup.
		u, err := xhash.LabelBasis(label)
		if err != nil {
			return nil, err
		}
		s1 := ck.S[0][1]
		c := new(bn256.G1).ScalarMult(u[1], s1)
		c.Add(c, new(bn256.G1).ScalarBaseMult(x[0]))
		return data.VectorG1{c}, nil
	}

	u, err := xhash.LabelBasis(label)
	if err != nil {
		return nil, err
	}
	uVec := data.VectorG1{u[0], u[1]}

	c := make(data.VectorG1, len(x))
	for k := range x {
		mask := ck.S[k].MulVecG1(uVec).Sum()
		mask.Add(mask, new(bn256.G1).ScalarBaseMult(x[k]))
		c[k] = mask
	}
	return c, nil
}

// DecKey is a decryption key derived by the authority for a partitioned
// target vector y = (y_1, ..., y_n).
type DecKey struct {
	Dk data.Vector // length 2
}

// DKeyGen derives the decryption key for y, partitioned one slice per
// client in the same order as Setup's dims.
func DKeyGen(keys []*ClientKey, y []data.Vector) (*DecKey, error) {
	if len(keys) != len(y) {
		return nil, ferr.ErrDimensionMismatch
	}
	dk := data.NewVector([]*big.Int{big.NewInt(0), big.NewInt(0)})
	for i, ck := range keys {
		if len(y[i]) != ck.S.Rows() {
			return nil, ferr.ErrDimensionMismatch
		}
		contrib, err := ck.S.Transpose().MulVec(y[i])
		if err != nil {
			return nil, err
		}
		dk = dk.Add(contrib)
	}
	return &DecKey{Dk: dk.Mod(curve.Order)}, nil
}

// Decrypt recovers g1^<x,y> given every client's ciphertext (in Setup
// order), the decryption key, the same partitioned y used in DKeyGen,
// and the label the ciphertexts were encrypted under.
func Decrypt(ciphers []data.VectorG1, dk *DecKey, y []data.Vector, label []byte) (*bn256.G1, error) {
	if len(ciphers) != len(y) {
		return nil, errors.Wrapf(ferr.ErrMissingContribution, "decrypt: want %d ciphertexts, got %d", len(y), len(ciphers))
	}

	sum := new(bn256.G1).ScalarBaseMult(big.NewInt(0))
	for i := range ciphers {
		if len(ciphers[i]) != len(y[i]) {
			return nil, ferr.ErrDimensionMismatch
		}
		sum.Add(sum, y[i].MulVecG1(ciphers[i]).Sum())
	}

	u, err := xhash.LabelBasis(label)
	if err != nil {
		return nil, err
	}
	uVec := data.VectorG1{u[0], u[1]}
	blind := dk.Dk.MulVecG1(uVec).Sum()

	result := new(bn256.G1).Neg(blind)
	result.Add(result, sum)
	return result, nil
}
