package scoring

import (
	"math/rand/v2"
)

// DisqualifyReason is the fixed explanation recorded when a lead is rejected.
const DisqualifyReason = "Website looks good / High Performance"

// qualificationThreshold is the score below which a TLS-enabled site still
// counts as a weak web presence.
const qualificationThreshold = 50

// PerformanceEstimator produces a 0-100 performance score for a website.
// The default implementation is a stand-in for a real page-speed audit, so the
// estimator is pluggable and tests can substitute a deterministic one.
type PerformanceEstimator interface {
	Estimate(websiteURL string, hasSSL bool) int
}

// RandomEstimator reproduces the reference score distribution: sites without
// TLS (or without a website at all) land in a low band, TLS sites in a high
// band.
type RandomEstimator struct {
	rng *rand.Rand
}

// NewRandomEstimator builds an estimator. A nil source uses the shared global
// generator.
func NewRandomEstimator(src rand.Source) *RandomEstimator {
	if src == nil {
		return &RandomEstimator{}
	}
	return &RandomEstimator{rng: rand.New(src)}
}

// Estimate draws a score from the band matching the site's TLS posture.
func (e *RandomEstimator) Estimate(websiteURL string, hasSSL bool) int {
	if websiteURL == "" || !hasSSL {
		return e.intN(40)
	}
	return 60 + e.intN(40)
}

func (e *RandomEstimator) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}

// FixedEstimator always returns the same score. Useful as a test double and
// as an explicit "unscored" stand-in.
type FixedEstimator int

// Estimate returns the fixed score.
func (e FixedEstimator) Estimate(websiteURL string, hasSSL bool) int { return int(e) }

// Result is the outcome of scoring one lead.
type Result struct {
	Score     int
	Qualified bool
	Reason    string
}

// Qualify applies the inverted qualification funnel: the product targets
// businesses with a weak technical presence, so a low score or missing TLS
// QUALIFIES a lead, while a fast TLS-enabled site disqualifies it.
func Qualify(hasWebsite, hasSSL bool, score int) Result {
	qualified := score < qualificationThreshold || !hasSSL || !hasWebsite

	result := Result{Score: score, Qualified: qualified}
	if !qualified {
		result.Reason = DisqualifyReason
	}
	return result
}
