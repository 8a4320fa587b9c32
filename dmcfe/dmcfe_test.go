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

package dmcfe_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/bn256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-go/funcenc/bsgs"
	"github.com/fentec-go/funcenc/data"
	"github.com/fentec-go/funcenc/dmcfe"
	"github.com/fentec-go/funcenc/dsum"
	"github.com/fentec-go/funcenc/ferr"
	"github.com/fentec-go/funcenc/internal/curve"
)

func vec(xs ...int64) data.Vector {
	v := make(data.Vector, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

// cohort sets up n DSum keypairs, sorts the public keys once so every
// client agrees on indices, and returns each client's dmcfe.Client in
// index order.
func cohort(t *testing.T, n int) []*dmcfe.Client {
	t.Helper()

	kps := make([]*dsum.KeyPair, n)
	pubs := make([]*bn256.G1, n)
	for i := 0; i < n; i++ {
		kp, err := dsum.Setup()
		require.NoError(t, err)
		kps[i] = kp
		pubs[i] = kp.Pub
	}
	sorted := dsum.SortPublicKeys(pubs)

	clients := make([]*dmcfe.Client, n)
	for i := 0; i < n; i++ {
		idx := dsum.Index(pubs[i], sorted)
		c, err := dmcfe.Setup(idx, kps[i].Priv, sorted)
		require.NoError(t, err)
		clients[idx] = c
	}
	return clients
}

func TestEndToEnd(t *testing.T) {
	clients := cohort(t, 3)

	x := vec(5, -3, 7)
	y := vec(2, 2, 2)
	label := []byte("round-1")

	ciphers := make([]*bn256.G1, len(clients))
	pdks := make([]*dmcfe.PartialDecryptionKey, len(clients))
	for i, c := range clients {
		ct, err := c.Encrypt(x[i], label)
		require.NoError(t, err)
		ciphers[i] = ct

		pdk, err := c.PartialKeyGen(y)
		require.NoError(t, err)
		pdks[i] = pdk
	}

	dk := dmcfe.KeyComb(pdks)

	target, err := dmcfe.Decrypt(ciphers, dk, y, label)
	require.NoError(t, err)

	got, err := bsgs.SolveGT(target, curve.GTGen, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(18), got)
}

func TestMissingPartialKeyFails(t *testing.T) {
	clients := cohort(t, 3)

	x := vec(5, -3, 7)
	y := vec(2, 2, 2)
	label := []byte("round-1")

	ciphers := make([]*bn256.G1, len(clients))
	pdks := make([]*dmcfe.PartialDecryptionKey, 0, len(clients)-1)
	for i, c := range clients {
		ct, err := c.Encrypt(x[i], label)
		require.NoError(t, err)
		ciphers[i] = ct

		if i == 1 {
			continue // simulate a missing contribution
		}
		pdk, err := c.PartialKeyGen(y)
		require.NoError(t, err)
		pdks = append(pdks, pdk)
	}

	dk := dmcfe.KeyComb(pdks)

	target, err := dmcfe.Decrypt(ciphers, dk, y, label)
	require.NoError(t, err)

	_, err = bsgs.SolveGT(target, curve.GTGen, big.NewInt(100))
	assert.ErrorIs(t, err, ferr.ErrDlpOutOfRange)
}

func TestSetupRejectsSmallCohort(t *testing.T) {
	_, err := dmcfe.Setup(0, big.NewInt(1), []*bn256.G1{curve.G1Gen})
	assert.ErrorIs(t, err, ferr.ErrConfigError)
}
