// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// SymbolFor returns the decoration symbol "sα" for basis index α
func SymbolFor(alpha int) string {
	return "s" + strconv.Itoa(alpha)
}

// AlphaFromSymbol parses a basis index α out of a "sα" symbol. Called
// exactly once per embedding slot during embedding generation,
// never repeatedly from free-form strings elsewhere.
func AlphaFromSymbol(symbol string) (int, error) {
	if !strings.HasPrefix(symbol, "s") {
		return 0, chk.Err("malformed basis symbol %q: must start with 's'", symbol)
	}
	alpha, err := strconv.Atoi(symbol[1:])
	if err != nil {
		return 0, chk.Err("malformed basis symbol %q: %v", symbol, err)
	}
	return alpha, nil
}
