package normalize

import (
	"time"

	"distress-intel/client-go/internal/models"
)

// Fallback returns a renderable error-state result with exactly the same key
// set Process produces for the kind, so consumers never special-case failure.
func Fallback(kind models.Kind) models.Result {
	meta := models.Meta{
		IsEmpty:     true,
		DataQuality: "Error",
		LastUpdated: nowFn().UTC().Format(time.RFC3339),
		Error:       true,
	}
	switch kind {
	case models.KindAnalytics:
		return &models.AnalyticsData{
			Meta: meta,
			KeyMetrics: models.KeyMetrics{
				RiskDistribution: []any{},
				DataQuality:      "Unknown",
			},
			RiskTrendAnalysis:  []any{},
			FactorContribution: []any{},
			PeerComparison:     map[string]any{},
			SummaryInsights:    map[string]any{},
			RiskDistribution:   []any{},
		}
	case models.KindInsights:
		return &models.InsightsData{
			Meta:                      meta,
			ActionableRecommendations: []models.Recommendation{},
			RiskAlerts:                []models.RiskAlert{},
			MarketContext:             []models.MarketContextEntry{},
			KeyFactorsAnalysis:        []any{},
			InsightSummary:            models.InsightSummary{AlertLevel: "None"},
			KeyInsights:               []any{},
		}
	default:
		return &models.DashboardData{
			Meta: meta,
			FinancialHealthSnapshot: models.HealthSnapshot{
				RiskCategory: "Unknown",
				Color:        "gray",
			},
			RiskCategoryBreakdown: models.RiskBreakdown{
				UserDistribution:    []any{},
				BenchmarkPercentile: 50,
			},
			KeyRiskDrivers: []any{},
			TrendOverview:  []any{},
			SummaryStats:   map[string]any{},
		}
	}
}
