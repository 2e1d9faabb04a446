package offer

import (
	"math"

	"github.com/nolimit-nexus/nexus/internal/domain"
)

// priceAnchor holds the base price pair for one project type.
type priceAnchor struct {
	b2c float64
	b2b float64
}

// Anchor prices per project type. Like the scoring base triples these are
// hand-tuned contract constants.
var priceAnchors = map[domain.ProjectType]priceAnchor{
	domain.TypeService:      {b2c: 150, b2b: 900},
	domain.TypeDigital:      {b2c: 49, b2b: 290},
	domain.TypeSubscription: {b2c: 19, b2b: 99},
	domain.TypePhysical:     {b2c: 39, b2b: 120},
	domain.TypeAudience:     {b2c: 9, b2b: 49},
}

// Delivery cost as a percentage of price, per project type.
var costPct = map[domain.ProjectType]float64{
	domain.TypeService:      15,
	domain.TypeDigital:      10,
	domain.TypeSubscription: 20,
	domain.TypePhysical:     45,
	domain.TypeAudience:     0,
}

// minPrice is the floor the suggested price never goes below.
const minPrice = 9

// Synthesize derives the suggested offer from the project and its scores.
// Deterministic: the anchor picked by (type, b2b) is scaled by the profit
// score, floored at minPrice, and the cost follows as a fixed percentage.
func Synthesize(p domain.ProjectProfile, s domain.ScoreTriple) domain.Offer {
	anchor, ok := priceAnchors[p.Type]
	if !ok {
		anchor = priceAnchors[domain.TypeService]
	}

	base := anchor.b2c
	if p.Audience == domain.AudienceB2B {
		base = anchor.b2b
	}

	price := int(math.Round(base * (0.85 + float64(s.Profit-5)*0.04)))
	if price < minPrice {
		price = minPrice
	}

	cost := int(math.Round(float64(price) * costPct[p.Type] / 100))

	return domain.Offer{Price: price, Cost: cost}
}
