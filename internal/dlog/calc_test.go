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

package dlog

import (
	"math/big"
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/stretchr/testify/assert"
)

func TestCalcG1_BabyStepGiantStep(t *testing.T) {
	g := new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	bound := big.NewInt(200)
	calc := NewCalcG1(bound)

	for _, n := range []int64{0, 1, 32, 199, -199, -1} {
		h := new(bn256.G1).ScalarMult(g, new(big.Int).Mod(big.NewInt(n), bn256.Order))
		got, err := calc.BabyStepGiantStep(h, g)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, big.NewInt(n), got)

		want, err := bruteForceG1(h, g, bound)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCalcG1_OutOfRange(t *testing.T) {
	g := new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	h := new(bn256.G1).ScalarMult(g, big.NewInt(500))
	calc := NewCalcG1(big.NewInt(100))
	_, err := calc.BabyStepGiantStep(h, g)
	assert.Error(t, err)
}

func TestCalcGT_BabyStepGiantStep(t *testing.T) {
	g1 := new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	g2 := new(bn256.G2).ScalarBaseMult(big.NewInt(1))
	g := bn256.Pair(g1, g2)
	bound := big.NewInt(150)
	calc := NewCalcGT(bound)

	for _, n := range []int64{0, 1, 18, -18, 149, -149} {
		h := new(bn256.GT).ScalarMult(g, new(big.Int).Mod(big.NewInt(n), bn256.Order))
		got, err := calc.BabyStepGiantStep(h, g)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, big.NewInt(n), got)

		want, err := bruteForceGT(h, g, bound)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCalcGT_OutOfRange(t *testing.T) {
	g1 := new(bn256.G1).ScalarBaseMult(big.NewInt(1))
	g2 := new(bn256.G2).ScalarBaseMult(big.NewInt(1))
	g := bn256.Pair(g1, g2)
	h := new(bn256.GT).ScalarMult(g, big.NewInt(1000))
	calc := NewCalcGT(big.NewInt(100))
	_, err := calc.BabyStepGiantStep(h, g)
	assert.Error(t, err)
}
