package models

// Kind identifies which backend view and which normalized shape is requested.
type Kind string

const (
	KindDashboard Kind = "dashboard"
	KindAnalytics Kind = "analytics"
	KindInsights  Kind = "insights"
)

func Kinds() []Kind {
	return []Kind{KindDashboard, KindAnalytics, KindInsights}
}

func (k Kind) Valid() bool {
	switch k {
	case KindDashboard, KindAnalytics, KindInsights:
		return true
	}
	return false
}

// Endpoint maps a kind to its backend path.
func (k Kind) Endpoint() string {
	switch k {
	case KindDashboard:
		return "/dashboard"
	case KindAnalytics:
		return "/analytics"
	case KindInsights:
		return "/insights/fast"
	}
	return ""
}

// Meta is the envelope every normalized result carries. Consumers never branch
// on success vs fallback; they read these fields on either.
type Meta struct {
	IsEmpty     bool   `json:"isEmpty"`
	DataQuality string `json:"dataQuality"`
	LastUpdated string `json:"lastUpdated"`
	Error       bool   `json:"error"`
}

func (m Meta) Common() Meta { return m }

// Result is one of *DashboardData, *AnalyticsData or *InsightsData. Every
// collection field in a Result is non-nil.
type Result interface {
	Kind() Kind
	Common() Meta
}

// NewResult returns a zero-value result struct for the kind, used when
// decoding a stored snapshot.
func NewResult(kind Kind) Result {
	switch kind {
	case KindAnalytics:
		return &AnalyticsData{}
	case KindInsights:
		return &InsightsData{}
	default:
		return &DashboardData{}
	}
}

type Recommendation struct {
	Title          string `json:"title"`
	Priority       string `json:"priority"`
	Action         string `json:"action"`
	Reason         string `json:"reason"`
	Implementation string `json:"implementation"`
	ExpectedImpact string `json:"expected_impact"`
}

type RiskAlert struct {
	Title    string `json:"title"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Impact   string `json:"impact"`
	Action   string `json:"action"`
	Timeline string `json:"timeline"`
}

type MarketContextEntry struct {
	Trend          string `json:"trend"`
	Impact         string `json:"impact"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Source         string `json:"source"`
}

type KeyMetrics struct {
	TotalPredictions float64 `json:"total_predictions"`
	AverageRiskScore float64 `json:"average_risk_score"`
	RiskDistribution []any   `json:"risk_distribution"`
	DataQuality      string  `json:"data_quality"`
	HealthScore      float64 `json:"health_score"`
}

// AnalyticsData mirrors the key metrics both nested and flat because the
// chart components read the camelCase aliases directly.
type AnalyticsData struct {
	Meta
	KeyMetrics         KeyMetrics     `json:"key_metrics"`
	RiskTrendAnalysis  []any          `json:"risk_trend_analysis"`
	FactorContribution []any          `json:"factor_contribution"`
	PeerComparison     map[string]any `json:"peer_comparison"`
	SummaryInsights    map[string]any `json:"summary_insights"`
	TotalPredictions   float64        `json:"totalPredictions"`
	AverageRiskScore   float64        `json:"averageRiskScore"`
	RiskDistribution   []any          `json:"riskDistribution"`
	HealthScore        float64        `json:"healthScore"`
}

func (*AnalyticsData) Kind() Kind { return KindAnalytics }

type InsightSummary struct {
	TotalInsights   float64 `json:"total_insights"`
	CriticalRisks   float64 `json:"critical_risks"`
	Recommendations float64 `json:"recommendations"`
	AlertLevel      string  `json:"alert_level"`
}

type InsightsData struct {
	Meta
	ActionableRecommendations []Recommendation     `json:"actionable_recommendations"`
	RiskAlerts                []RiskAlert          `json:"risk_alerts"`
	MarketContext             []MarketContextEntry `json:"market_context"`
	KeyFactorsAnalysis        []any                `json:"key_factors_analysis"`
	InsightSummary            InsightSummary       `json:"insight_summary"`
	KeyInsights               []any                `json:"keyInsights"`
}

func (*InsightsData) Kind() Kind { return KindInsights }

type HealthSnapshot struct {
	HealthScore  float64 `json:"health_score"`
	RiskCategory string  `json:"risk_category"`
	ScoreChange  float64 `json:"score_change"`
	Color        string  `json:"color"`
}

type RiskBreakdown struct {
	UserDistribution    []any   `json:"user_distribution"`
	BenchmarkPercentile float64 `json:"benchmark_percentile"`
}

type DashboardData struct {
	Meta
	FinancialHealthSnapshot HealthSnapshot `json:"financial_health_snapshot"`
	RiskCategoryBreakdown   RiskBreakdown  `json:"risk_category_breakdown"`
	KeyRiskDrivers          []any          `json:"key_risk_drivers"`
	TrendOverview           []any          `json:"trend_overview"`
	SummaryStats            map[string]any `json:"summary_stats"`
}

func (*DashboardData) Kind() Kind { return KindDashboard }
