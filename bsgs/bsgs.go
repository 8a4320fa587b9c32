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

// Package bsgs exposes the bounded baby-step/giant-step discrete-log
// solver that every scheme in this module (ipfe, mcfe over G1; dmcfe
// over GT) uses to recover the scalar inner product from its group
// encoding. The search range is the caller's responsibility: an n
// outside [-bound, bound] is reported as ferr.ErrDlpOutOfRange, never
// approximated.
package bsgs

import (
	"math/big"

	"github.com/fentec-project/bn256"

	"github.com/fentec-go/funcenc/feconfig"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/dlog"
)

// SolveG1 finds n such that target = n*gen, for n in [-bound, bound].
func SolveG1(target, gen *bn256.G1, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() < 0 {
		return nil, ferr.ErrConfigError
	}
	n, err := dlog.NewCalcG1(bound).BabyStepGiantStep(target, gen)
	if err != nil {
		return nil, ferr.ErrDlpOutOfRange
	}
	return n, nil
}

// SolveGT finds n such that target = n*gen (additive notation for
// target = gen^n), for n in [-bound, bound].
func SolveGT(target, gen *bn256.GT, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() < 0 {
		return nil, ferr.ErrConfigError
	}
	n, err := dlog.NewCalcGT(bound).BabyStepGiantStep(target, gen)
	if err != nil {
		return nil, ferr.ErrDlpOutOfRange
	}
	return n, nil
}

// SolveG1WithParams is SolveG1 plus an opt-in diagnostic log line (label
// length and cohort size only, never the target point or the recovered
// scalar), for callers that decrypt through a scheme's dmcfe/mcfe-style
// multi-party pipeline and want to record that a solve ran.
func SolveG1WithParams(target, gen *bn256.G1, params *feconfig.Params, scheme string, cohortSize, labelLen int) (*big.Int, error) {
	if params == nil {
		return nil, ferr.ErrConfigError
	}
	params.LogDecrypt(scheme, cohortSize, labelLen)
	return SolveG1(target, gen, params.Bound)
}

// SolveGTWithParams is the GT analogue of SolveG1WithParams.
func SolveGTWithParams(target, gen *bn256.GT, params *feconfig.Params, scheme string, cohortSize, labelLen int) (*big.Int, error) {
	if params == nil {
		return nil, ferr.ErrConfigError
	}
	params.LogDecrypt(scheme, cohortSize, labelLen)
	return SolveGT(target, gen, params.Bound)
}
