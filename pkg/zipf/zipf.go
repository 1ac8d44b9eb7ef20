// Package zipf draws Zipf-distributed integers using the method from
// "Quickly Generating Billion-Record Synthetic Databases" (Gray et al.).
//
// Rank 1 is the most popular value. theta controls the skew and must be in
// [0, 1): 0 is close to uniform, values near 1 concentrate on the first ranks.
package zipf

import (
	"math"
	"math/rand/v2"

	srvErrors "github.com/kubev2v/workpool/pkg/errors"
)

// Zeta returns the generalized harmonic number of order theta of n.
func Zeta(theta float64, n int) float64 {
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += 1 / math.Pow(float64(i), theta)
	}
	return sum
}

// Variate returns a value in [1, n]. zetaN must be Zeta(theta, n).
func Variate(rnd *rand.Rand, n int64, zetaN, theta float64) (int64, error) {
	if err := validate(n, theta); err != nil {
		return 0, err
	}
	if zetaN < 1 {
		return 0, srvErrors.NewInvalidArgumentError("zipf zeta must be at least 1, got %v", zetaN)
	}
	return variate(rnd.Float64(), n, zetaN, theta, alpha(theta), eta(n, zetaN, theta)), nil
}

func validate(n int64, theta float64) error {
	if n < 1 {
		return srvErrors.NewInvalidArgumentError("zipf population must be at least 1, got %d", n)
	}
	if theta < 0 || theta >= 1 {
		return srvErrors.NewInvalidArgumentError("zipf theta must be in [0, 1), got %v", theta)
	}
	return nil
}

func alpha(theta float64) float64 {
	return 1 / (1 - theta)
}

func eta(n int64, zetaN, theta float64) float64 {
	return (1 - math.Pow(2.0/float64(n), 1-theta)) / (1 - Zeta(theta, 2)/zetaN)
}

func variate(u float64, n int64, zetaN, theta, alpha, eta float64) int64 {
	if n <= 1 {
		return 1
	}

	uz := u * zetaN
	if uz < 1 {
		return 1
	}
	if uz < 1+math.Pow(0.5, theta) {
		return 2
	}

	v := 1 + int64(float64(n)*math.Pow(eta*u-eta+1, alpha))
	return min(max(v, 1), n)
}

// Generator draws values in [1, n] from a seeded source. It is not safe for
// concurrent use.
type Generator struct {
	n     int64
	theta float64
	zetaN float64
	alpha float64
	eta   float64
	rnd   *rand.Rand
}

func NewGenerator(n int64, theta float64, seed uint64) (*Generator, error) {
	if err := validate(n, theta); err != nil {
		return nil, err
	}

	zetaN := Zeta(theta, int(n))
	return &Generator{
		n:     n,
		theta: theta,
		zetaN: zetaN,
		alpha: alpha(theta),
		eta:   eta(n, zetaN, theta),
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (g *Generator) N() int64 {
	return g.n
}

func (g *Generator) Next() int64 {
	return variate(g.rnd.Float64(), g.n, g.zetaN, g.theta, g.alpha, g.eta)
}
