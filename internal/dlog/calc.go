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

// Package dlog implements the bounded baby-step/giant-step discrete
// logarithm search shared by bsgs.SolveG1 and bsgs.SolveGT. It keeps the
// teacher's shape: a baby-step table keyed by a compressed hash of the
// group element, a giant-step loop that updates the running element by a
// single group operation, and negative answers are found by also
// searching the ladder from -h.
package dlog

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/fentec-project/bn256"
)

// MaxBound limits the interval of values that are checked when computing
// discrete logarithms, to bound time and memory for a misconfigured
// caller. A Calc asked to use a larger bound is silently clamped to it.
var MaxBound = big.NewInt(1 << 40)

func stepCount(bound *big.Int) int64 {
	b := bound
	if b.Cmp(MaxBound) > 0 {
		b = MaxBound
	}
	m := new(big.Int).Mul(b, big.NewInt(2))
	m.Add(m, big.NewInt(1))
	m.Sqrt(m)
	m.Add(m, big.NewInt(1))
	return m.Int64()
}

// CalcG1 computes bounded discrete logarithms in bn256.G1.
type CalcG1 struct {
	m     int64
	bound *big.Int
}

// NewCalcG1 configures a solver for an answer known to lie in
// [-bound, bound].
func NewCalcG1(bound *big.Int) *CalcG1 {
	return &CalcG1{m: stepCount(bound), bound: bound}
}

// BabyStepGiantStep finds x such that h = x*g, for |x| <= bound, or
// returns an error if no such x exists within the bound.
func (c *CalcG1) BabyStepGiantStep(h, g *bn256.G1) (*big.Int, error) {
	baby := make(map[[sha256.Size]byte]int64, c.m)
	x := new(bn256.G1).ScalarBaseMult(big.NewInt(0))
	for j := int64(0); j < c.m; j++ {
		baby[sha256.Sum256(x.Marshal())] = j
		x = new(bn256.G1).Add(x, g)
	}

	giantStep := new(bn256.G1).Neg(new(bn256.G1).ScalarMult(g, big.NewInt(c.m)))

	if n, ok := searchG1(h, giantStep, c.m, baby); ok && n.CmpAbs(c.bound) <= 0 {
		return n, nil
	}
	// the negative half: if h = -x*g for x > 0 then -h = x*g, so
	// searching the ladder from -h recovers |x|.
	if n, ok := searchG1(new(bn256.G1).Neg(h), giantStep, c.m, baby); ok && n.CmpAbs(c.bound) <= 0 {
		return n.Neg(n), nil
	}

	return nil, fmt.Errorf("failed to find discrete logarithm within bound")
}

func searchG1(h, giantStep *bn256.G1, m int64, baby map[[sha256.Size]byte]int64) (*big.Int, bool) {
	running := new(bn256.G1).Set(h)
	for i := int64(0); i < m; i++ {
		if j, ok := baby[sha256.Sum256(running.Marshal())]; ok {
			return big.NewInt(i*m + j), true
		}
		running = new(bn256.G1).Add(running, giantStep)
	}
	return nil, false
}

// CalcGT computes bounded discrete logarithms in bn256.GT.
type CalcGT struct {
	m     int64
	bound *big.Int
}

// NewCalcGT configures a solver for an answer known to lie in
// [-bound, bound].
func NewCalcGT(bound *big.Int) *CalcGT {
	return &CalcGT{m: stepCount(bound), bound: bound}
}

// BabyStepGiantStep finds x such that h = x*g (additive GT notation for
// the usual h = g^x), for |x| <= bound, or returns an error if none
// exists.
func (c *CalcGT) BabyStepGiantStep(h, g *bn256.GT) (*big.Int, error) {
	baby := make(map[[sha256.Size]byte]int64, c.m)
	x := new(bn256.GT).ScalarBaseMult(big.NewInt(0))
	for j := int64(0); j < c.m; j++ {
		baby[sha256.Sum256(x.Marshal())] = j
		x = new(bn256.GT).Add(x, g)
	}

	giantStep := new(bn256.GT).Neg(new(bn256.GT).ScalarMult(g, big.NewInt(c.m)))

	if n, ok := searchGT(h, giantStep, c.m, baby); ok && n.CmpAbs(c.bound) <= 0 {
		return n, nil
	}
	if n, ok := searchGT(new(bn256.GT).Neg(h), giantStep, c.m, baby); ok && n.CmpAbs(c.bound) <= 0 {
		return n.Neg(n), nil
	}

	return nil, fmt.Errorf("failed to find discrete logarithm within bound")
}

func searchGT(h, giantStep *bn256.GT, m int64, baby map[[sha256.Size]byte]int64) (*big.Int, bool) {
	running := new(bn256.GT).Add(h, new(bn256.GT).ScalarBaseMult(big.NewInt(0)))
	for i := int64(0); i < m; i++ {
		if j, ok := baby[sha256.Sum256(running.Marshal())]; ok {
			return big.NewInt(i*m + j), true
		}
		running = new(bn256.GT).Add(running, giantStep)
	}
	return nil, false
}
