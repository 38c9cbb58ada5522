package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRecommendationsPreserveEntryCount(t *testing.T) {
	raw := gjson.Parse(`["pay down debt", {"title": "ok"}, null, 42, true, [1]]`)
	got := Recommendations(raw)
	require.Len(t, got, 6)
}

func TestRecommendationsStringEntry(t *testing.T) {
	got := Recommendations(gjson.Parse(`["Reduce debt"]`))
	require.Len(t, got, 1)
	assert.Equal(t, "Reduce debt", got[0].Title)
	assert.Equal(t, "Medium", got[0].Priority)
	assert.Equal(t, "Reduce debt", got[0].Action)
	assert.Equal(t, "Recommended action", got[0].Reason)
	assert.Equal(t, "", got[0].Implementation)
	assert.Equal(t, "", got[0].ExpectedImpact)
}

func TestRecommendationsObjectEntry(t *testing.T) {
	got := Recommendations(gjson.Parse(`[{"title": "Diversify", "priority": "High", "action": "Add revenue streams"}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "Diversify", got[0].Title)
	assert.Equal(t, "High", got[0].Priority)
	assert.Equal(t, "Add revenue streams", got[0].Action)
	// object entries default missing fields to empty, unlike string entries
	assert.Equal(t, "", got[0].Reason)
}

func TestRecommendationsSentinel(t *testing.T) {
	got := Recommendations(gjson.Parse(`[42]`))
	require.Len(t, got, 1)
	assert.Equal(t, "Invalid Recommendation", got[0].Title)
	assert.Equal(t, "Low", got[0].Priority)
	assert.Equal(t, "Review recommendation data", got[0].Action)
	assert.Equal(t, "Data format issue", got[0].Reason)
}

func TestRecommendationsClampUnknownPriority(t *testing.T) {
	got := Recommendations(gjson.Parse(`[{"priority": "urgent"}, {"priority": "low"}]`))
	require.Len(t, got, 2)
	assert.Equal(t, "Medium", got[0].Priority)
	assert.Equal(t, "Low", got[1].Priority)
}

func TestRecommendationsObjectShapedCollection(t *testing.T) {
	// the backend sometimes keys the collection by id instead of sending an array
	got := Recommendations(gjson.Parse(`{"r1": "first", "r2": {"title": "second"}}`))
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}

func TestRecommendationsNonCollection(t *testing.T) {
	assert.Empty(t, Recommendations(gjson.Parse(`"nope"`)))
	assert.Empty(t, Recommendations(gjson.Result{}))
	assert.NotNil(t, Recommendations(gjson.Result{}))
}

func TestRiskAlerts(t *testing.T) {
	raw := gjson.Parse(`[
		"liquidity tightening",
		{"title": "Cash runway", "severity": "Critical", "message": "4 months left", "timeline": "Q4"},
		null
	]`)
	got := RiskAlerts(raw)
	require.Len(t, got, 3)

	assert.Equal(t, "liquidity tightening", got[0].Title)
	assert.Equal(t, "Medium", got[0].Severity)
	assert.Equal(t, "liquidity tightening", got[0].Message)

	assert.Equal(t, "Critical", got[1].Severity)
	assert.Equal(t, "4 months left", got[1].Message)
	assert.Equal(t, "Q4", got[1].Timeline)

	assert.Equal(t, "Invalid Alert", got[2].Title)
	assert.Equal(t, "Low", got[2].Severity)
}

func TestMarketContext(t *testing.T) {
	raw := gjson.Parse(`[
		"rates plateau",
		{"trend": "credit spreads widening", "impact": "high", "source": "bond desk"},
		42
	]`)
	got := MarketContext(raw)
	require.Len(t, got, 3)

	assert.Equal(t, "rates plateau", got[0].Trend)
	assert.Equal(t, "Medium", got[0].Impact)

	assert.Equal(t, "credit spreads widening", got[1].Trend)
	assert.Equal(t, "High", got[1].Impact)
	assert.Equal(t, "bond desk", got[1].Source)

	// sentinel entries keep a stringified trend so badge counts stay honest
	assert.Equal(t, "42", got[2].Trend)
	assert.Equal(t, "Medium", got[2].Impact)
}
