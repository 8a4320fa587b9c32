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
	"fmt"
	"math/big"

	"github.com/fentec-project/bn256"
)

// bruteForceG1 simply tries every candidate in [-bound, bound]; used by
// the test suite to cross-check CalcG1 on small instances.
func bruteForceG1(h, g *bn256.G1, bound *big.Int) (*big.Int, error) {
	for i := new(big.Int).Neg(bound); i.Cmp(bound) <= 0; i.Add(i, big.NewInt(1)) {
		if new(bn256.G1).ScalarMult(g, new(big.Int).Mod(i, bn256.Order)).String() == h.String() {
			return new(big.Int).Set(i), nil
		}
	}
	return nil, fmt.Errorf("failed to find discrete logarithm within bound")
}

// bruteForceGT is bruteForceG1's GT analogue.
func bruteForceGT(h, g *bn256.GT, bound *big.Int) (*big.Int, error) {
	for i := new(big.Int).Neg(bound); i.Cmp(bound) <= 0; i.Add(i, big.NewInt(1)) {
		if new(bn256.GT).ScalarMult(g, new(big.Int).Mod(i, bn256.Order)).String() == h.String() {
			return new(big.Int).Set(i), nil
		}
	}
	return nil, fmt.Errorf("failed to find discrete logarithm within bound")
}
