package offer

import (
	"testing"

	"github.com/nolimit-nexus/nexus/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSynthesize_ServiceB2C(t *testing.T) {
	p := domain.ProjectProfile{Type: domain.TypeService, Audience: domain.AudienceB2C}
	got := Synthesize(p, domain.ScoreTriple{Profit: 5})

	// 150 * 0.85 = 127.5 -> 128; cost 15% of 128 = 19.2 -> 19.
	assert.Equal(t, domain.Offer{Price: 128, Cost: 19}, got)
}

func TestSynthesize_B2BUsesB2BAnchor(t *testing.T) {
	p := domain.ProjectProfile{Type: domain.TypeService, Audience: domain.AudienceB2B}
	got := Synthesize(p, domain.ScoreTriple{Profit: 5})

	// 900 * 0.85 = 765; the "both" audience still uses the b2c anchor.
	assert.Equal(t, 765, got.Price)

	both := Synthesize(domain.ProjectProfile{Type: domain.TypeService, Audience: domain.AudienceBoth},
		domain.ScoreTriple{Profit: 5})
	assert.Equal(t, 128, both.Price)
}

func TestSynthesize_ProfitScoreScalesPrice(t *testing.T) {
	p := domain.ProjectProfile{Type: domain.TypeSubscription, Audience: domain.AudienceB2B}

	// 99 * (0.85 + 3*0.04) = 96.03 -> 96; cost 20% -> 19.
	high := Synthesize(p, domain.ScoreTriple{Profit: 8})
	assert.Equal(t, domain.Offer{Price: 96, Cost: 19}, high)

	low := Synthesize(p, domain.ScoreTriple{Profit: 1})
	assert.Less(t, low.Price, high.Price)
}

func TestSynthesize_PriceFloor(t *testing.T) {
	p := domain.ProjectProfile{Type: domain.TypeAudience, Audience: domain.AudienceB2C}

	// 9 * (0.85 - 4*0.04) = 6.21 -> 6, floored to 9.
	got := Synthesize(p, domain.ScoreTriple{Profit: 1})
	assert.Equal(t, 9, got.Price)
	assert.GreaterOrEqual(t, got.Price, 9)
}

func TestSynthesize_CostPercentages(t *testing.T) {
	tests := []struct {
		projType domain.ProjectType
		pct      float64
	}{
		{domain.TypeService, 0.15},
		{domain.TypeDigital, 0.10},
		{domain.TypeSubscription, 0.20},
		{domain.TypePhysical, 0.45},
		{domain.TypeAudience, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.projType), func(t *testing.T) {
			got := Synthesize(
				domain.ProjectProfile{Type: tt.projType, Audience: domain.AudienceB2C},
				domain.ScoreTriple{Profit: 5},
			)
			if tt.pct == 0 {
				assert.Zero(t, got.Cost)
				return
			}
			// Cost is derived from the rounded price.
			want := int(float64(got.Price)*tt.pct + 0.5)
			assert.Equal(t, want, got.Cost)
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	p := domain.ProjectProfile{Type: domain.TypePhysical, Audience: domain.AudienceBoth}
	s := domain.ScoreTriple{Profit: 7, Speed: 3, Ease: 4}

	first := Synthesize(p, s)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Synthesize(p, s))
	}
}
