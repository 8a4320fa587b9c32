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

// Package dmcfe implements decentralized multi-client functional
// encryption for inner products: it removes mcfe's trusted authority by
// having each client derive its own partial decryption key, masked by a
// dsum.State so that summing every client's partial key cancels the
// masks and reproduces a legitimate mcfe-style decryption key. The
// ciphertext space stays G1; the decryption key space is G2, related to
// G1 through the pairing.
package dmcfe

import (
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/dsum"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
	"github.com/fentec-go/funcenc/internal/xhash"
)

// Client holds one participant's full secret state after Setup: its
// index in the cohort, its own encryption secret s (a 2-vector, mirroring
// mcfe's per-client m=1 IPFE row), and the dsum.State deriving its
// zero-sum mask from every other client's DSum public key.
type Client struct {
	Idx   int
	s     data.Vector // length 2
	state *dsum.State
}

// Setup derives a Client's secret state from its own DSum keypair and
// the full, index-ordered list of cohort DSum public keys (as returned
// by dsum.SortPublicKeys - every client must use the same order). The
// cohort must have at least two clients.
func Setup(idx int, priv *big.Int, allPub []*bn256.G1) (*Client, error) {
	if len(allPub) < 2 {
		return nil, ferr.ErrConfigError
	}

	s0, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	s1, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	state, err := dsum.NewState(idx, priv, allPub)
	if err != nil {
		return nil, err
	}

	return &Client{
		Idx:   idx,
		s:     data.NewVector([]*big.Int{s0, s1}),
		state: state,
	}, nil
}

// Encrypt produces this client's ciphertext for scalar x_i under label,
// shaped identically to mcfe's m_i=1 client ciphertext.
func (c *Client) Encrypt(x *big.Int, label []byte) (*bn256.G1, error) {
	u, err := xhash.LabelBasis(label)
	if err != nil {
		return nil, err
	}
	ct := c.s.MulVecG1(data.VectorG1{u[0], u[1]}).Sum()
	ct.Add(ct, new(bn256.G1).ScalarBaseMult(new(big.Int).Mod(x, curve.Order)))
	return ct, nil
}

// PartialDecryptionKey is one client's contribution to a combined
// decryption key for a target vector y.
type PartialDecryptionKey struct {
	Pdk data.VectorG2 // length 2
}

// PartialKeyGen derives this client's partial decryption key for the
// cohort's target vector y (y[Idx] is this client's own component). The
// DSum mask matrix added here cancels once every client's share is
// summed by KeyComb.
func (c *Client) PartialKeyGen(y data.Vector) (*PartialDecryptionKey, error) {
	if c.Idx < 0 || c.Idx >= len(y) {
		return nil, ferr.ErrDimensionMismatch
	}

	own := c.s.MulScalar(y[c.Idx]).Mod(curve.Order).MulG2()

	mask, err := c.state.MaskMatrix(2, 2)
	if err != nil {
		return nil, err
	}
	v, err := xhash.LabelBasisG2(encodeVector(y))
	if err != nil {
		return nil, err
	}
	vVec := data.VectorG2{v[0], v[1]}
	maskTerm, err := mask.MatMulVecG2(vVec)
	if err != nil {
		return nil, err
	}

	return &PartialDecryptionKey{Pdk: own.Add(maskTerm)}, nil
}

// KeyComb sums partial decryption keys from every cohort client into a
// single decryption key. If any client's share is missing, the masks no
// longer cancel and the resulting key is indistinguishable from random.
func KeyComb(shares []*PartialDecryptionKey) data.VectorG2 {
	dk := data.VectorG2{
		new(bn256.G2).ScalarBaseMult(big.NewInt(0)),
		new(bn256.G2).ScalarBaseMult(big.NewInt(0)),
	}
	for _, s := range shares {
		dk = dk.Add(s.Pdk)
	}
	return dk
}

// Decrypt recovers g_T^<x,y> from every client's ciphertext, the
// combined decryption key, the target vector y and the label the
// ciphertexts were encrypted under. The caller runs bsgs.SolveGT to
// recover the integer inner product.
func Decrypt(ciphers []*bn256.G1, dk data.VectorG2, y data.Vector, label []byte) (*bn256.GT, error) {
	if len(ciphers) != len(y) {
		return nil, errors.Wrapf(ferr.ErrMissingContribution, "decrypt: want %d ciphertexts, got %d", len(y), len(ciphers))
	}

	sum := new(bn256.G1).ScalarBaseMult(big.NewInt(0))
	for i, ci := range ciphers {
		term := new(bn256.G1).ScalarMult(ci, y[i])
		sum.Add(sum, term)
	}

	u, err := xhash.LabelBasis(label)
	if err != nil {
		return nil, err
	}
	uVec := data.VectorG1{u[0], u[1]}

	left := curve.Pair(sum, curve.G2Gen)
	right := curve.Pair(uVec[0], dk[0])
	right2 := curve.Pair(uVec[1], dk[1])
	right.Add(right, right2)

	result := new(bn256.GT).Neg(right)
	result.Add(result, left)
	return result, nil
}

func encodeVector(y data.Vector) []byte {
	var out []byte
	for _, yi := range y {
		out = append(out, curve.ScalarToBytes(yi)...)
	}
	return out
}
