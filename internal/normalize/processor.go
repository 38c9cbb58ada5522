package normalize

import (
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/tidwall/gjson"

	"distress-intel/client-go/internal/models"
	"distress-intel/client-go/internal/payload"
)

// overridable in tests
var nowFn = time.Now

// Process builds the fully-defaulted result for kind from a raw backend body.
// It never returns an error or panics: a body that cannot be interpreted at
// all, or a panic while shaping it, yields the Fallback result instead.
func Process(raw []byte, kind models.Kind) (result models.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Fallback(kind)
		}
	}()

	doc, ok := parseBody(raw)
	if !ok {
		return Fallback(kind)
	}

	switch kind {
	case models.KindAnalytics:
		return processAnalytics(doc)
	case models.KindInsights:
		return processInsights(doc)
	case models.KindDashboard:
		return processDashboard(doc)
	default:
		return Fallback(kind)
	}
}

// parseBody accepts the body as-is when it is valid JSON and otherwise runs
// one repair pass before giving up. The upstream has shipped truncated and
// loosely-quoted bodies before.
func parseBody(raw []byte) (gjson.Result, bool) {
	if gjson.ValidBytes(raw) {
		return gjson.ParseBytes(raw), true
	}
	repaired, err := jsonrepair.RepairJSON(string(raw))
	if err != nil || !gjson.Valid(repaired) {
		return gjson.Result{}, false
	}
	doc := gjson.Parse(repaired)
	if !doc.IsObject() && !doc.IsArray() {
		return gjson.Result{}, false
	}
	return doc, true
}

func envelope(doc gjson.Result) models.Meta {
	return models.Meta{
		IsEmpty:     doc.Get("isEmpty").Bool(),
		DataQuality: payload.String(doc, "dataQuality", "Unknown"),
		LastUpdated: payload.String(doc, "lastUpdated", nowFn().UTC().Format(time.RFC3339)),
	}
}

// firstNumber reads paths in order and returns the first present non-null
// value, coerced. The upstream has shipped both a nested and a flat legacy
// shape for the analytics metrics; both stay readable until one is retired.
func firstNumber(doc gjson.Result, def float64, paths ...string) float64 {
	for _, p := range paths {
		r := doc.Get(p)
		if r.Exists() && r.Type != gjson.Null {
			return payload.Number(doc, p, def)
		}
	}
	return def
}

func firstString(doc gjson.Result, def string, paths ...string) string {
	for _, p := range paths {
		r := doc.Get(p)
		if r.Exists() && r.Type != gjson.Null {
			return payload.String(doc, p, def)
		}
	}
	return def
}

func firstValues(doc gjson.Result, paths ...string) []any {
	for _, p := range paths {
		r := doc.Get(p)
		if r.IsArray() || r.IsObject() {
			return payload.Values(doc, p)
		}
	}
	return []any{}
}

func firstCollection(doc gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		r := doc.Get(p)
		if r.IsArray() || r.IsObject() {
			return r
		}
	}
	return gjson.Result{}
}

func processAnalytics(doc gjson.Result) *models.AnalyticsData {
	km := models.KeyMetrics{
		TotalPredictions: firstNumber(doc, 0, "key_metrics.total_predictions", "total_predictions"),
		AverageRiskScore: firstNumber(doc, 0, "key_metrics.average_risk_score", "average_risk_score"),
		RiskDistribution: firstValues(doc, "key_metrics.risk_distribution", "risk_distribution"),
		DataQuality:      firstString(doc, "Unknown", "key_metrics.data_quality", "data_quality"),
		HealthScore:      firstNumber(doc, 0, "key_metrics.health_score", "health_score"),
	}
	return &models.AnalyticsData{
		Meta:               envelope(doc),
		KeyMetrics:         km,
		RiskTrendAnalysis:  payload.Values(doc, "risk_trend_analysis"),
		FactorContribution: payload.Values(doc, "factor_contribution"),
		PeerComparison:     payload.ObjectMap(doc, "peer_comparison"),
		SummaryInsights:    payload.ObjectMap(doc, "summary_insights"),
		TotalPredictions:   km.TotalPredictions,
		AverageRiskScore:   km.AverageRiskScore,
		RiskDistribution:   km.RiskDistribution,
		HealthScore:        km.HealthScore,
	}
}

func processInsights(doc gjson.Result) *models.InsightsData {
	return &models.InsightsData{
		Meta:                      envelope(doc),
		ActionableRecommendations: Recommendations(firstCollection(doc, "actionable_recommendations", "recommendations")),
		RiskAlerts:                RiskAlerts(doc.Get("risk_alerts")),
		MarketContext:             MarketContext(firstCollection(doc, "market_context", "marketTrends")),
		KeyFactorsAnalysis:        payload.Values(doc, "key_factors_analysis"),
		InsightSummary: models.InsightSummary{
			TotalInsights:   payload.Number(doc, "insight_summary.total_insights", 0),
			CriticalRisks:   payload.Number(doc, "insight_summary.critical_risks", 0),
			Recommendations: payload.Number(doc, "insight_summary.recommendations", 0),
			AlertLevel:      payload.String(doc, "insight_summary.alert_level", "None"),
		},
		KeyInsights: payload.Values(doc, "keyInsights"),
	}
}

func processDashboard(doc gjson.Result) *models.DashboardData {
	return &models.DashboardData{
		Meta: envelope(doc),
		FinancialHealthSnapshot: models.HealthSnapshot{
			HealthScore:  payload.Number(doc, "financial_health_snapshot.health_score", 0),
			RiskCategory: payload.String(doc, "financial_health_snapshot.risk_category", "Unknown"),
			ScoreChange:  payload.Number(doc, "financial_health_snapshot.score_change", 0),
			Color:        payload.String(doc, "financial_health_snapshot.color", "gray"),
		},
		RiskCategoryBreakdown: models.RiskBreakdown{
			UserDistribution:    payload.Values(doc, "risk_category_breakdown.user_distribution"),
			BenchmarkPercentile: payload.Number(doc, "risk_category_breakdown.benchmark_percentile", 50),
		},
		KeyRiskDrivers: payload.Values(doc, "key_risk_drivers"),
		TrendOverview:  payload.Values(doc, "trend_overview"),
		SummaryStats:   payload.ObjectMap(doc, "summary_stats"),
	}
}
