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

package ipfe_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-go/funcenc/bsgs"
	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
	"github.com/fentec-go/funcenc/ipfe"
)

func vec(xs ...int64) data.Vector {
	v := make(data.Vector, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

func TestEndToEnd(t *testing.T) {
	msk, mpk, err := ipfe.Setup(3)
	require.NoError(t, err)

	x := vec(1, 2, 3)
	y := vec(4, 5, 6)

	ct, err := ipfe.Encrypt(mpk, x)
	require.NoError(t, err)

	sky, err := ipfe.KeyGen(msk, y)
	require.NoError(t, err)

	target, err := ipfe.Decrypt(ct, sky, y)
	require.NoError(t, err)

	got, err := bsgs.SolveG1(target, curve.G1Gen, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(32), got)
}

func TestDimensionMismatch(t *testing.T) {
	msk, mpk, err := ipfe.Setup(3)
	require.NoError(t, err)

	_, err = ipfe.Encrypt(mpk, vec(1, 2))
	assert.ErrorIs(t, err, ferr.ErrDimensionMismatch)

	_, err = ipfe.KeyGen(msk, vec(1, 2))
	assert.ErrorIs(t, err, ferr.ErrDimensionMismatch)
}

func TestOutOfRangeFails(t *testing.T) {
	msk, mpk, err := ipfe.Setup(2)
	require.NoError(t, err)

	x := vec(50, 50)
	y := vec(50, 50)

	ct, err := ipfe.Encrypt(mpk, x)
	require.NoError(t, err)
	sky, err := ipfe.KeyGen(msk, y)
	require.NoError(t, err)

	target, err := ipfe.Decrypt(ct, sky, y)
	require.NoError(t, err)

	_, err = bsgs.SolveG1(target, curve.G1Gen, big.NewInt(100))
	assert.ErrorIs(t, err, ferr.ErrDlpOutOfRange)
}
