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

// Package ipfe implements single-authority functional encryption for
// inner products: a master authority holding msk can derive a key sk_y
// for any vector y, and anyone holding mpk can encrypt a vector x, such
// that sk_y applied to Encrypt(x) recovers g1^<x,y> without revealing x.
package ipfe

import (
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/pkg/errors"

	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
)

// MasterSecretKey is the authority's secret m*2 matrix S.
type MasterSecretKey struct {
	S data.Matrix
}

// MasterPublicKey is g1*S, published to encryptors.
type MasterPublicKey struct {
	G1S data.MatrixG1
}

// CipherText is an IPFE encryption of a vector x: U holds the two
// randomizer components, V holds one masked component per entry of x.
type CipherText struct {
	U data.VectorG1
	V data.VectorG1
}

// Setup samples a fresh master secret/public keypair for vectors of
// dimension m.
func Setup(m int) (*MasterSecretKey, *MasterPublicKey, error) {
	if m <= 0 {
		return nil, nil, ferr.ErrConfigError
	}

	rows := make([]data.Vector, m)
	for i := 0; i < m; i++ {
		s0, err := curve.RandomScalar()
		if err != nil {
			return nil, nil, err
		}
		s1, err := curve.RandomScalar()
		if err != nil {
			return nil, nil, err
		}
		rows[i] = data.NewVector([]*big.Int{s0, s1})
	}
	S, err := data.NewMatrix(rows)
	if err != nil {
		return nil, nil, err
	}

	return &MasterSecretKey{S: S}, &MasterPublicKey{G1S: S.MulG1()}, nil
}

// KeyGen derives the functional decryption key sk_y = y^T * S for a
// vector y of dimension m.
func KeyGen(msk *MasterSecretKey, y data.Vector) (data.Vector, error) {
	if len(y) != msk.S.Rows() {
		return nil, errors.Wrapf(ferr.ErrDimensionMismatch, "key_gen: want len(y) = %d, got %d", msk.S.Rows(), len(y))
	}
	sky, err := msk.S.Transpose().MulVec(y)
	if err != nil {
		return nil, err
	}
	return sky.Mod(curve.Order), nil
}

// Encrypt encrypts a vector x of dimension m under the master public key.
func Encrypt(mpk *MasterPublicKey, x data.Vector) (*CipherText, error) {
	if len(x) != mpk.G1S.Rows() {
		return nil, errors.Wrapf(ferr.ErrDimensionMismatch, "encrypt: want len(x) = %d, got %d", mpk.G1S.Rows(), len(x))
	}

	r0, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	r1, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}
	r := data.NewVector([]*big.Int{r0, r1})

	U := r.MulG1()
	V := x.MulG1().Add(mpk.G1S.MulVector(r))

	return &CipherText{U: U, V: V}, nil
}

// Decrypt recovers g1^<x,y> from a ciphertext, the functional key sk_y
// and the vector y it was derived for. The caller runs BSGS (package
// bsgs) over G1 to recover the integer inner product.
func Decrypt(ct *CipherText, sky data.Vector, y data.Vector) (*bn256.G1, error) {
	if len(y) != len(ct.V) || len(sky) != len(ct.U) {
		return nil, ferr.ErrDimensionMismatch
	}

	masked := y.MulVecG1(ct.V).Sum()
	blind := sky.MulVecG1(ct.U).Sum()

	result := new(bn256.G1).Neg(blind)
	result.Add(result, masked)
	return result, nil
}
