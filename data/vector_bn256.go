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

package data

import (
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
)

var zeroInt = big.NewInt(0)

// VectorG1 wraps a slice of elements from elliptic curve BN256.G1 group.
type VectorG1 []*bn256.G1

// TODO add error handling

// Add sums vectors v1 and v2 (also v1 * v2 in multiplicative notation).
// It returns the result in a new VectorG1 instance.
func (v VectorG1) Add(other VectorG1) VectorG1 {
	sum := make(VectorG1, len(v))
	for i := range sum {
		sum[i] = new(bn256.G1).Add(v[i], other[i])
	}

	return sum
}

// Sub subtracts other from v componentwise.
// It returns the result in a new VectorG1 instance.
func (v VectorG1) Sub(other VectorG1) VectorG1 {
	diff := make(VectorG1, len(v))
	for i := range diff {
		neg := new(bn256.G1).Neg(other[i])
		diff[i] = new(bn256.G1).Add(v[i], neg)
	}

	return diff
}

// Neg negates every element of v.
// It returns the result in a new VectorG1 instance.
func (v VectorG1) Neg() VectorG1 {
	neg := make(VectorG1, len(v))
	for i := range neg {
		neg[i] = new(bn256.G1).Neg(v[i])
	}

	return neg
}

// MulScalar multiplies every element of v by scalar s.
// It returns the result in a new VectorG1 instance.
func (v VectorG1) MulScalar(s *big.Int) VectorG1 {
	out := make(VectorG1, len(v))
	for i := range out {
		out[i] = new(bn256.G1).ScalarMult(v[i], s)
	}

	return out
}

// Sum adds every element of v together, returning the identity element
// if v is empty.
func (v VectorG1) Sum() *bn256.G1 {
	sum := new(bn256.G1).ScalarBaseMult(zeroInt)
	for _, p := range v {
		sum.Add(sum, p)
	}

	return sum
}

// Marshal encodes v as the concatenation of each element's canonical
// uncompressed encoding.
func (v VectorG1) Marshal() []byte {
	out := make([]byte, 0, len(v)*curve.G1ByteLen)
	for _, p := range v {
		out = append(out, curve.G1ToBytes(p)...)
	}
	return out
}

// UnmarshalVectorG1 decodes a byte string produced by VectorG1.Marshal
// into a VectorG1 of the given length.
func UnmarshalVectorG1(b []byte, length int) (VectorG1, error) {
	if len(b) != length*curve.G1ByteLen {
		return nil, ferr.ErrInvalidEncoding
	}
	out := make(VectorG1, length)
	for i := 0; i < length; i++ {
		p, err := curve.G1FromBytes(b[i*curve.G1ByteLen : (i+1)*curve.G1ByteLen])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// VectorG2 wraps a slice of elements from elliptic curve BN256.G2 group.
type VectorG2 []*bn256.G2

// TODO add error handling

// Add sums vectors v1 and v2 (also v1 * v2 in multiplicative notation).
// It returns the result in a new VectorG2 instance.
func (v VectorG2) Add(other VectorG2) VectorG2 {
	sum := make(VectorG2, len(v))
	for i := range sum {
		sum[i] = new(bn256.G2).Add(v[i], other[i])
	}

	return sum
}

// Sub subtracts other from v componentwise.
// It returns the result in a new VectorG2 instance.
func (v VectorG2) Sub(other VectorG2) VectorG2 {
	diff := make(VectorG2, len(v))
	for i := range diff {
		neg := new(bn256.G2).Neg(other[i])
		diff[i] = new(bn256.G2).Add(v[i], neg)
	}

	return diff
}

// Neg negates every element of v.
// It returns the result in a new VectorG2 instance.
func (v VectorG2) Neg() VectorG2 {
	neg := make(VectorG2, len(v))
	for i := range neg {
		neg[i] = new(bn256.G2).Neg(v[i])
	}

	return neg
}

// MulScalar multiplies every element of v by scalar s.
// It returns the result in a new VectorG2 instance.
func (v VectorG2) MulScalar(s *big.Int) VectorG2 {
	out := make(VectorG2, len(v))
	for i := range out {
		out[i] = new(bn256.G2).ScalarMult(v[i], s)
	}

	return out
}

// Sum adds every element of v together, returning the identity element
// if v is empty.
func (v VectorG2) Sum() *bn256.G2 {
	sum := new(bn256.G2).ScalarBaseMult(zeroInt)
	for _, p := range v {
		sum.Add(sum, p)
	}

	return sum
}

// Marshal encodes v as the concatenation of each element's canonical
// uncompressed encoding.
func (v VectorG2) Marshal() []byte {
	out := make([]byte, 0, len(v)*curve.G2ByteLen)
	for _, p := range v {
		out = append(out, curve.G2ToBytes(p)...)
	}
	return out
}

// UnmarshalVectorG2 decodes a byte string produced by VectorG2.Marshal
// into a VectorG2 of the given length.
func UnmarshalVectorG2(b []byte, length int) (VectorG2, error) {
	if len(b) != length*curve.G2ByteLen {
		return nil, ferr.ErrInvalidEncoding
	}
	out := make(VectorG2, length)
	for i := 0; i < length; i++ {
		p, err := curve.G2FromBytes(b[i*curve.G2ByteLen : (i+1)*curve.G2ByteLen])
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
