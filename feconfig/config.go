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

// Package feconfig holds the decryption tunables that bsgs's
// SolveG1WithParams/SolveGTWithParams accept: the BSGS search bound and an
// optional diagnostic logger. The ipfe, mcfe and dmcfe packages do not
// use it.
// There is no file or environment-variable loading here - the library
// takes no ambient configuration sources, only values the caller passes
// in directly, matching the "no filesystem, no environment variables"
// external-interface rule.
package feconfig

import (
	"io"
	"log"
	"math/big"
)

// Params bundles the tunables a decryptor needs to recover an inner
// product: the bound on the search range and an optional logger for
// diagnostic events. Params never carries secret material, so logging
// from it can never leak a secret scalar or ciphertext.
type Params struct {
	// Bound is the half-width L of the admissible range [-L, L] for the
	// recovered inner product. The caller must ensure the true inner
	// product lies within it; BSGS never widens it automatically.
	Bound *big.Int

	// Log receives only public diagnostic events (cohort sizes, label
	// lengths, scheme names). NewParams sets it to a logger that discards
	// its output, and a zero Params leaves it nil - diagnostics are opt-in.
	Log *log.Logger
}

// NewParams returns Params with the given bound and logging disabled.
func NewParams(bound *big.Int) *Params {
	return &Params{Bound: bound, Log: log.New(io.Discard, "", 0)}
}

// WithLogger attaches a logger, returning the same Params for chaining.
func (p *Params) WithLogger(out *log.Logger) *Params {
	p.Log = out
	return p
}

// logEvent is a small helper so call sites that carry a possibly-nil
// *Params don't need a nil check at every log line.
func (p *Params) logEvent(format string, args ...interface{}) {
	if p == nil || p.Log == nil {
		return
	}
	p.Log.Printf(format, args...)
}

// LogDecrypt records that a decrypt pipeline ran, naming only the public
// quantities (label length, cohort size) - never x, y or any key
// material.
func (p *Params) LogDecrypt(scheme string, cohortSize int, labelLen int) {
	p.logEvent("decrypt scheme=%s cohort=%d label_len=%d", scheme, cohortSize, labelLen)
}
