// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_binary_basis_exact(tst *testing.T) {

	chk.PrintTitle("binary_basis_exact")

	b := New(2)
	chk.Scalar(tst, "phi1(0)", 1e-12, b.Evaluate(1, 0), 1.0)
	chk.Scalar(tst, "phi1(1)", 1e-12, b.Evaluate(1, 1), -1.0)
}

func Test_ternary_basis_orthonormal(tst *testing.T) {

	chk.PrintTitle("ternary_basis_orthonormal")

	k := 3
	b := New(k)
	// every row, plus the implicit constant row, must be orthonormal under
	// the uniform measure (1/k) Σ f(σ)g(σ).
	rows := make([][]float64, k)
	rows[0] = make([]float64, k)
	for σ := 0; σ < k; σ++ {
		rows[0][σ] = 1
	}
	for a := 1; a < k; a++ {
		rows[a] = b.M[a-1]
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			ip := innerProduct(rows[i], rows[j], k)
			want := 0.0
			if i == j {
				want = 1.0
			}
			chk.Scalar(tst, "ip", 1e-10, ip, want)
		}
	}
}

func Test_basis_panics_on_bad_k(tst *testing.T) {

	chk.PrintTitle("basis_panics_on_bad_k")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("New(1) must panic")
		}
	}()
	New(1)
}

func Test_alpha_from_symbol(tst *testing.T) {

	chk.PrintTitle("alpha_from_symbol")

	a, err := AlphaFromSymbol("s2")
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.IntAssert(a, 2)
}
