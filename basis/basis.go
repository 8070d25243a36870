// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package basis implements the orthonormal site-operator (Chebyshev-like)
// basis over the uniform measure on {0,...,k-1} used by the cluster-product
// energy calculator and the correlation-function sampler.
package basis

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gocvm/geom"
)

// SiteOperatorBasis holds the (k-1) x k matrix M where M[α-1][σ] = φ_α(σ),
// for a k-component system. Rows are orthonormal under the uniform measure
// (1/k) Σ_σ f(σ)g(σ); the constant row (the empty-cluster basis function,
// φ_0 ≡ 1) is not stored since it is implicit everywhere.
type SiteOperatorBasis struct {
	K int
	M [][]float64
}

// New builds the site-operator basis for k components via Gram-Schmidt on
// the power basis {1, σ, σ², ..., σ^(k-1)}, as required by .6.
// Panics with a NumericInstability-class error if a Gram-
// Schmidt norm collapses to (near) zero, which should never happen for any
// reasonable component count.
func New(k int) *SiteOperatorBasis {
	if k < 2 {
		chk.Panic("basis.New: k must be >= 2, got %d", k)
	}
	rows := la.MatAlloc(k, k)
	// row 0: constant basis function, already orthonormal under the
	// uniform measure since (1/k) Σ 1*1 = 1
	for σ := 0; σ < k; σ++ {
		rows[0][σ] = 1
	}
	for a := 1; a < k; a++ {
		v := make([]float64, k)
		for σ := 0; σ < k; σ++ {
			v[σ] = math.Pow(float64(σ), float64(a))
		}
		for prev := 0; prev < a; prev++ {
			p := innerProduct(v, rows[prev], k)
			for σ := 0; σ < k; σ++ {
				v[σ] -= p * rows[prev][σ]
			}
		}
		norm := math.Sqrt(innerProduct(v, v, k))
		if norm < 1e-12 {
			chk.Panic("basis.New: Gram-Schmidt norm collapsed to zero at component index %d (k=%d)", a, k)
		}
		for σ := 0; σ < k; σ++ {
			rows[a][σ] = v[σ] / norm
		}
		canonicalizeSign(rows[a])
	}
	M := make([][]float64, k-1)
	for a := 1; a < k; a++ {
		M[a-1] = rows[a]
	}
	return &SiteOperatorBasis{K: k, M: M}
}

// innerProduct computes the uniform-measure inner product (1/k) Σ f(σ)g(σ)
func innerProduct(f, g []float64, k int) float64 {
	sum := 0.0
	for σ := 0; σ < k; σ++ {
		sum += f[σ] * g[σ]
	}
	return sum / float64(k)
}

// canonicalizeSign flips the sign of row so its first non-zero entry
// (reading from σ=0 upward) is positive; this pins a deterministic sign
// convention matching the required special cases (k=2: φ_1(0) =
// +1; k=3: φ_1 = [+1,0,-1]-shaped, φ_2 = [+1,-2,+1]-shaped).
func canonicalizeSign(row []float64) {
	for _, x := range row {
		if math.Abs(x) < 1e-12 {
			continue
		}
		if x < 0 {
			for i := range row {
				row[i] = -row[i]
			}
		}
		return
	}
}

// Evaluate returns φ_α(σ); α ranges over [1, k-1]
func (b *SiteOperatorBasis) Evaluate(alpha, σ int) float64 {
	if alpha < 1 || alpha > b.K-1 {
		chk.Panic("SiteOperatorBasis.Evaluate: alpha=%d out of range [1,%d]", alpha, b.K-1)
	}
	if σ < 0 || σ >= b.K {
		chk.Panic("SiteOperatorBasis.Evaluate: sigma=%d out of range [0,%d)", σ, b.K)
	}
	return b.M[alpha-1][σ]
}

// EvaluateEmpty returns the constant empty-cluster basis function, always 1
func (b *SiteOperatorBasis) EvaluateEmpty(σ int) float64 {
	return 1
}

// AlphaFromSymbol parses the basis index encoded in a "sα" decoration
// symbol, delegating to geom.
func AlphaFromSymbol(symbol string) (int, error) {
	return geom.AlphaFromSymbol(symbol)
}
