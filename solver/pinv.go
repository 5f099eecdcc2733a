package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/goml-kit/goml/pkg/errors"
)

// PInv is the closed-form solver for (possibly ridge-regularised) least
// squares: w = pinv(XᵀX + αI) Xᵀ y. The Moore-Penrose pseudoinverse keeps
// rank-deficient and ill-conditioned problems well defined, returning the
// minimum-norm-consistent solution instead of failing. alpha = 0 recovers
// ordinary least squares.
type PInv struct {
	alpha float64
}

// NewPInv creates a PInv solver with the given L2 regularisation strength.
func NewPInv(alpha float64) (*PInv, error) {
	if alpha < 0 {
		return nil, errors.NewValidationError("alpha", "must be non-negative", alpha)
	}
	return &PInv{alpha: alpha}, nil
}

// Solve computes the normal-equation solution. No iteration is involved,
// so the result always reports Converged with zero iterations.
func (s *PInv) Solve(X, y mat.Matrix) (*Result, error) {
	const op = "PInv.Solve"

	if err := validateInputs(op, X, y); err != nil {
		return nil, err
	}

	_, d := X.Dims()

	var gram mat.Dense
	gram.Mul(X.T(), X)
	if s.alpha > 0 {
		for i := 0; i < d; i++ {
			gram.Set(i, i, gram.At(i, i)+s.alpha)
		}
	}

	pinv, err := PseudoInverse(&gram)
	if err != nil {
		return nil, err
	}

	var xty mat.Dense
	xty.Mul(X.T(), y)

	var w mat.Dense
	w.Mul(pinv, &xty)

	return &Result{Weights: &w, Converged: true, Iterations: 0}, nil
}

// PseudoInverse computes the Moore-Penrose pseudoinverse via thin SVD,
// zeroing reciprocals of singular values below a relative cutoff.
// Rank-deficient inputs are fine; the result is always defined.
func PseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.NewModelError("PseudoInverse", "SVD factorization failed", nil)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	var maxS float64
	for _, si := range s {
		if si > maxS {
			maxS = si
		}
	}

	r, c := a.Dims()
	cutoff := 1e-15 * math.Max(float64(r), float64(c)) * maxS

	sInv := mat.NewDense(len(s), len(s), nil)
	for i, si := range s {
		if si > cutoff {
			sInv.Set(i, i, 1.0/si)
		}
	}

	var vsInv mat.Dense
	vsInv.Mul(&v, sInv)

	var pinv mat.Dense
	pinv.Mul(&vsInv, u.T())

	return &pinv, nil
}
