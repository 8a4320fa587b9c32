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

// Package curve is the thin typed adapter over the pairing-friendly curve
// supplied by github.com/fentec-project/bn256. It provides the fixed
// generators, the group order, scalar sampling, the pairing and the
// scalar/point encodings; other packages use bn256's G1/G2/GT types
// directly or through the data package's vector/matrix wrappers.
package curve

import (
	"crypto/rand"
	"math/big"

	"github.com/fentec-project/bn256"
)

// ScalarByteLen is the canonical big-endian encoding length of an F_q
// scalar for this curve: bn256's base field is 256 bits wide.
const ScalarByteLen = 32

// G1ByteLen and G2ByteLen are the encoding lengths github.com/fentec-project/bn256's
// Marshal produces for G1/G2 points: two field elements for G1 (2*32
// bytes) and two degree-2 extension-field elements for G2 (4*32 bytes).
// bn256 does not support point compression.
const (
	G1ByteLen = 64
	G2ByteLen = 128
)

// Order is the prime order q of G1, G2 and GT.
var Order = bn256.Order

// G1Gen, G2Gen and GTGen are the fixed generators g1, g2 and g_T = e(g1,g2).
var (
	G1Gen = new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	G2Gen = new(bn256.G2).ScalarBaseMult(big.NewInt(1))
	GTGen = bn256.Pair(G1Gen, G2Gen)
)

// RandomScalar samples a uniform element of F_q using a cryptographic RNG.
func RandomScalar() (*big.Int, error) {
	return rand.Int(rand.Reader, Order)
}

// Pair evaluates the bilinear pairing e(p, q).
func Pair(p *bn256.G1, q *bn256.G2) *bn256.GT {
	return bn256.Pair(p, q)
}

// ScalarToBytes encodes a scalar in canonical big-endian form, zero-padded
// to ScalarByteLen bytes.
func ScalarToBytes(x *big.Int) []byte {
	out := make([]byte, ScalarByteLen)
	b := new(big.Int).Mod(x, Order).Bytes()
	copy(out[ScalarByteLen-len(b):], b)
	return out
}

// ScalarFromBytes decodes a canonical scalar encoding, rejecting inputs of
// the wrong length or that do not represent a reduced element of F_q.
func ScalarFromBytes(b []byte) (*big.Int, error) {
	if len(b) != ScalarByteLen {
		return nil, errInvalidScalarLen
	}
	x := new(big.Int).SetBytes(b)
	if x.Cmp(Order) >= 0 {
		return nil, errScalarOutOfRange
	}
	return x, nil
}

// G1ToBytes returns the uncompressed encoding of a G1 point.
func G1ToBytes(p *bn256.G1) []byte {
	return p.Marshal()
}

// G1FromBytes decodes an uncompressed G1 point and verifies it lies in
// the prime-order subgroup.
func G1FromBytes(b []byte) (*bn256.G1, error) {
	if len(b) != G1ByteLen {
		return nil, errInvalidG1Len
	}
	p := new(bn256.G1)
	if _, err := p.Unmarshal(b); err != nil {
		return nil, errInvalidG1Encoding
	}
	if !onCurveG1(p) {
		return nil, errSubgroupG1
	}
	return p, nil
}

// G2ToBytes returns the uncompressed encoding of a G2 point.
func G2ToBytes(p *bn256.G2) []byte {
	return p.Marshal()
}

// G2FromBytes decodes an uncompressed G2 point and verifies it lies in
// the prime-order subgroup.
func G2FromBytes(b []byte) (*bn256.G2, error) {
	if len(b) != G2ByteLen {
		return nil, errInvalidG2Len
	}
	p := new(bn256.G2)
	if _, err := p.Unmarshal(b); err != nil {
		return nil, errInvalidG2Encoding
	}
	if !onCurveG2(p) {
		return nil, errSubgroupG2
	}
	return p, nil
}

// onCurveG1 re-derives the point from its own order-scaled multiple to
// confirm subgroup membership: since bn256's G1 has prime order q, any
// successfully-unmarshaled point already lies in the subgroup, but we
// keep the multiplication-by-order check explicit (it returns the
// identity iff membership holds) so a future curve swap that introduces
// cofactors does not silently skip the check.
func onCurveG1(p *bn256.G1) bool {
	id := new(bn256.G1).ScalarMult(p, Order)
	return id.String() == new(bn256.G1).ScalarBaseMult(big.NewInt(0)).String()
}

func onCurveG2(p *bn256.G2) bool {
	id := new(bn256.G2).ScalarMult(p, Order)
	return id.String() == new(bn256.G2).ScalarBaseMult(big.NewInt(0)).String()
}
