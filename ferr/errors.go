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

// Package ferr collects the error kinds shared by every scheme package
// (ipfe, dsum, mcfe, dmcfe, bsgs). Callers distinguish kinds with
// errors.Is; package internals add call-site context with
// github.com/pkg/errors.Wrap before returning.
package ferr

import (
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

var (
	// ErrDimensionMismatch reports vector/matrix length disagreements.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrInvalidEncoding reports a malformed curve point or out-of-range
	// scalar encountered on deserialization.
	ErrInvalidEncoding = fmt.Errorf("encoding %s", malformedStr)
	// ErrSubgroupViolation reports a point that decodes but does not lie
	// in the prime-order subgroup.
	ErrSubgroupViolation = errors.New("point is not in the prime-order subgroup")
	// ErrDlpOutOfRange reports that BSGS exhausted its search bound
	// without finding a solution.
	ErrDlpOutOfRange = errors.New("discrete logarithm not found within bound")
	// ErrMissingContribution reports decrypt called with fewer
	// ciphertexts or partial keys than the cohort size.
	ErrMissingContribution = errors.New("missing ciphertext or partial key contribution")
	// ErrConfigError reports an invalid scheme configuration (cohort
	// size < 2, dimension 0, ...).
	ErrConfigError = errors.New("invalid scheme configuration")
)
