package brief

import (
	"testing"

	"github.com/felixbrock/designkit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQueries_SingleFeelingFillsCap(t *testing.T) {
	got := Queries([]string{domain.FeelingCalm}, domain.InspirationCalm)

	assert.Equal(t, []string{"minimal nature zen", "peaceful meditation", "calm minimal"}, got)
}

func TestQueries_FeelingsWinOverInspiration(t *testing.T) {
	got := Queries([]string{domain.FeelingBold, domain.FeelingFun}, domain.InspirationDuolingo)

	assert.Equal(t, []string{"bold graphic design", "edgy modern", "striking contrast"}, got)
}

func TestQueries_UnknownLabelsContributeNothing(t *testing.T) {
	tests := []struct {
		name        string
		feelings    []string
		inspiration string
		want        []string
	}{
		{
			name:        "unknown feeling falls through to inspiration",
			feelings:    []string{"Sad & gloomy"},
			inspiration: domain.InspirationStripe,
			want:        []string{"professional sleek", "modern gradient"},
		},
		{
			name:        "unknown inspiration",
			feelings:    []string{domain.FeelingWarm},
			inspiration: "figma",
			want:        []string{"warm cozy", "friendly welcoming", "soft comfortable"},
		},
		{
			name:        "nothing known",
			feelings:    []string{"calm & peaceful"},
			inspiration: "",
			want:        []string{},
		},
		{
			name:        "no feelings",
			feelings:    nil,
			inspiration: domain.InspirationNotion,
			want:        []string{"organized clean workspace", "productivity minimal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Queries(tt.feelings, tt.inspiration))
		})
	}
}

func TestQueries_DeduplicatesRepeatedFeeling(t *testing.T) {
	got := Queries([]string{"Sad & gloomy", domain.FeelingCalm, domain.FeelingCalm}, "")

	assert.Equal(t, []string{"minimal nature zen", "peaceful meditation", "calm minimal"}, got)
}

func TestQueries_UniqueAndCappedForEveryCombination(t *testing.T) {
	inspirations := []string{"", "unknown"}
	for key := range domain.Inspirations {
		inspirations = append(inspirations, key)
	}

	for _, a := range domain.Feelings {
		for _, b := range domain.Feelings {
			for _, insp := range inspirations {
				got := Queries([]string{a, b}, insp)

				assert.LessOrEqual(t, len(got), MaxQueries)
				seen := map[string]bool{}
				for _, q := range got {
					assert.False(t, seen[q], "duplicate query %q for %s/%s/%s", q, a, b, insp)
					seen[q] = true
				}
				if len(got) > 0 {
					assert.Equal(t, domain.FeelingQueries[a][0], got[0])
				}
			}
		}
	}
}

func TestQueries_DoesNotExposeTables(t *testing.T) {
	got := Queries([]string{domain.FeelingCalm}, "")
	got[0] = "changed"

	assert.Equal(t, "minimal nature zen", domain.FeelingQueries[domain.FeelingCalm][0])
	assert.Equal(t, "minimal nature zen", Queries([]string{domain.FeelingCalm}, "")[0])
}
