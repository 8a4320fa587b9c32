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

// Package xhash implements the hash-to-scalar and hash-to-curve routines
// used across dsum, mcfe and dmcfe to derive per-label and per-pair
// randomness. Every use site is domain-separated by a distinct tag so
// that, e.g., a label hash can never collide with a vector hash.
package xhash

import (
	"crypto/sha512"
	"math/big"
	"strconv"

	"github.com/fentec-project/bn256"

	"github.com/fentec-go/funcenc/internal/curve"
)

// Domain-separation tags. Each use site of hash_to_scalar / hash_to_G1 /
// hash_to_G2 in the module uses exactly one of these, and they are never
// reused for another purpose.
const (
	DSTLabel = "funcenc/label/g1/v1"
	DSTY     = "funcenc/vector/g2/v1"
	DSTPair  = "funcenc/dsum/pair/v1"
	DSTRound = "funcenc/dsum/round/v1"
)

// ToScalar reduces a 512-bit hash of dst and msg mod q, producing a
// uniform-looking element of F_q with negligible bias.
func ToScalar(dst string, msg []byte) *big.Int {
	h := sha512.New()
	h.Write([]byte(dst))
	h.Write(msg)
	sum := h.Sum(nil)
	return new(big.Int).Mod(new(big.Int).SetBytes(sum), curve.Order)
}

// ToG1 maps dst||msg to a point in G1.
func ToG1(dst string, msg []byte) (*bn256.G1, error) {
	return bn256.HashG1(dst + string(msg))
}

// ToG2 maps dst||msg to a point in G2.
func ToG2(dst string, msg []byte) (*bn256.G2, error) {
	return bn256.HashG2(dst + string(msg))
}

// LabelBasis derives the two-dimensional G1 basis u(label) = (u_0, u_1)
// used by the embedded-IPFE layer inside mcfe and by dmcfe's ciphertext
// masking, by hashing the label under two independent indices.
func LabelBasis(label []byte) ([2]*bn256.G1, error) {
	var u [2]*bn256.G1
	var err error
	for i := 0; i < 2; i++ {
		u[i], err = ToG1(DSTLabel, append([]byte(strconv.Itoa(i)+" "), label...))
		if err != nil {
			return u, err
		}
	}
	return u, nil
}

// LabelBasisG2 is LabelBasis's G2 analogue, used by dmcfe's partial
// decryption keys.
func LabelBasisG2(msg []byte) ([2]*bn256.G2, error) {
	var u [2]*bn256.G2
	var err error
	for i := 0; i < 2; i++ {
		u[i], err = ToG2(DSTY, append([]byte(strconv.Itoa(i)+" "), msg...))
		if err != nil {
			return u, err
		}
	}
	return u, nil
}

// PairScalar computes the signed shared value T_{i,j} = ±hash_to_scalar(
// DST‖min(i,j)‖max(i,j)‖shared), where shared is the Diffie-Hellman term
// dsk_i·dpk_j (or equivalently dsk_j·dpk_i). The sign flips with ordering
// so that T_{i,j} = -T_{j,i}, giving DSum its cancellation property.
func PairScalar(i, j int, shared *bn256.G1) *big.Int {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	msg := append([]byte(strconv.Itoa(lo)+"|"+strconv.Itoa(hi)+"|"), shared.Marshal()...)
	t := ToScalar(DSTPair, msg)
	if i > j {
		t.Neg(t)
		t.Mod(t, curve.Order)
	}
	return t
}
