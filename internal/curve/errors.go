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

package curve

import "errors"

// These mirror ferr's InvalidEncoding/SubgroupViolation kinds but live
// here to keep curve free of a dependency on ferr. They are returned as
// they are, so errors.Is against the ferr kinds does not match them.
var (
	errInvalidScalarLen  = errors.New("curve: scalar encoding has wrong length")
	errScalarOutOfRange  = errors.New("curve: scalar encoding is not reduced mod q")
	errInvalidG1Len      = errors.New("curve: G1 encoding has wrong length")
	errInvalidG1Encoding = errors.New("curve: G1 encoding does not decode to a valid point")
	errSubgroupG1        = errors.New("curve: G1 point is not in the prime-order subgroup")
	errInvalidG2Len      = errors.New("curve: G2 encoding has wrong length")
	errInvalidG2Encoding = errors.New("curve: G2 encoding does not decode to a valid point")
	errSubgroupG2        = errors.New("curve: G2 point is not in the prime-order subgroup")
)
