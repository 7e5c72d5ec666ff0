package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/pkg/persona"
	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

func TestRankVehicles(t *testing.T) {
	t.Parallel()

	p, tags := familyPlanner(t)

	twinA := domain.Vehicle{ID: "twin-a", Brand: "Kia", Seats: 5, Price: domain.Price(60)}
	twinB := twinA
	twinB.ID = "twin-b"
	absurd := domain.Vehicle{ID: "absurd", Brand: "Kia", Seats: 2, Price: domain.Price(900)}

	ranked := RankVehicles(p, tags, []domain.Vehicle{twinA, evCoupe, twinB, absurd, sevenSeatSUV})

	ids := make([]string, 0, len(ranked))
	for i, sv := range ranked {
		ids = append(ids, sv.Vehicle.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].TotalScore, sv.TotalScore)
		}
	}
	assert.NotContains(t, ids, "absurd")
	require.Len(t, ids, 4)
	assert.Equal(t, "q7", ids[0])
	assert.Equal(t, []string{"twin-a", "twin-b"}, ids[1:3], "ties keep input order")
	assert.Equal(t, "ev-coupe", ids[3])
}

func TestRankProtections(t *testing.T) {
	t.Parallel()

	p, ok := persona.Lookup(persona.RetiredExplorers)
	require.True(t, ok)

	ranked := RankProtections(p, persona.UserTags(p), []domain.ProtectionPackage{
		basicCoverage,
		fullCoverage,
		{ID: "glass", Name: "Glass & Tyre Protection", Price: domain.Price(10)},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "full", ranked[0].Protection.ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].TotalScore, ranked[i].TotalScore)
	}
}

func TestRank_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RankVehicles(domain.Persona{}, nil, nil))
	assert.Empty(t, RankProtections(domain.Persona{}, nil, nil))
}
