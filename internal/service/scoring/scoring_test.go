package scoring

import (
	"math/rand/v2"
	"testing"
)

func TestQualify_InvertedFunnel(t *testing.T) {
	cases := []struct {
		name       string
		hasWebsite bool
		hasSSL     bool
		score      int
		qualified  bool
	}{
		{"no website always qualifies", false, false, 95, true},
		{"no ssl always qualifies", true, false, 95, true},
		{"ssl with weak score qualifies", true, true, 49, true},
		{"ssl at threshold disqualifies", true, true, 50, false},
		{"ssl with strong score disqualifies", true, true, 88, false},
		{"ssl with zero score qualifies", true, true, 0, true},
	}

	for _, tc := range cases {
		result := Qualify(tc.hasWebsite, tc.hasSSL, tc.score)
		if result.Qualified != tc.qualified {
			t.Fatalf("%s: expected qualified=%v, got %v", tc.name, tc.qualified, result.Qualified)
		}
	}
}

func TestQualify_ReasonInvariant(t *testing.T) {
	// Reason is set iff the lead is disqualified.
	for _, score := range []int{0, 25, 49, 50, 75, 100} {
		for _, hasSSL := range []bool{true, false} {
			result := Qualify(true, hasSSL, score)
			if result.Qualified && result.Reason != "" {
				t.Fatalf("qualified lead carries reason %q (score=%d ssl=%v)", result.Reason, score, hasSSL)
			}
			if !result.Qualified && result.Reason != DisqualifyReason {
				t.Fatalf("disqualified lead missing reason (score=%d ssl=%v)", score, hasSSL)
			}
		}
	}
}

func TestRandomEstimator_Bands(t *testing.T) {
	est := NewRandomEstimator(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		if score := est.Estimate("", false); score < 0 || score >= 40 {
			t.Fatalf("no-website score %d outside [0,40)", score)
		}
		if score := est.Estimate("http://weak.example", false); score < 0 || score >= 40 {
			t.Fatalf("no-ssl score %d outside [0,40)", score)
		}
		if score := est.Estimate("https://fast.example", true); score < 60 || score >= 100 {
			t.Fatalf("ssl score %d outside [60,100)", score)
		}
	}
}

func TestFixedEstimator(t *testing.T) {
	if FixedEstimator(42).Estimate("https://any.example", true) != 42 {
		t.Fatalf("expected fixed estimate")
	}
}
