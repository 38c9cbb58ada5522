// Package normalize converts raw backend payloads into the stable shapes in
// internal/models. The upstream inconsistently emits plain strings or
// structured objects for its insight collections; the normalizers here accept
// both and substitute sentinel records for anything else, so the output length
// always matches the input length.
package normalize

import (
	"strings"

	"github.com/tidwall/gjson"

	"distress-intel/client-go/internal/models"
	"distress-intel/client-go/internal/payload"
)

// entriesOf flattens a raw collection into its elements. Object-shaped
// collections are taken by value in document order; any other shape has no
// entries.
func entriesOf(raw gjson.Result) []gjson.Result {
	switch {
	case raw.IsArray():
		return raw.Array()
	case raw.IsObject():
		vals := make([]gjson.Result, 0)
		raw.ForEach(func(_, value gjson.Result) bool {
			vals = append(vals, value)
			return true
		})
		return vals
	default:
		return nil
	}
}

// enumOr clamps raw to one of the allowed level names, case-insensitively.
func enumOr(raw string, def string, allowed ...string) string {
	trimmed := strings.TrimSpace(raw)
	for _, a := range allowed {
		if strings.EqualFold(trimmed, a) {
			return a
		}
	}
	return def
}

func stringify(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return r.String()
}

// Recommendations normalizes the actionable-recommendations collection.
func Recommendations(raw gjson.Result) []models.Recommendation {
	entries := entriesOf(raw)
	out := make([]models.Recommendation, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Type == gjson.String:
			out = append(out, models.Recommendation{
				Title:    e.Str,
				Priority: "Medium",
				Action:   e.Str,
				Reason:   "Recommended action",
			})
		case e.IsObject():
			out = append(out, models.Recommendation{
				Title:          payload.String(e, "title", ""),
				Priority:       enumOr(payload.String(e, "priority", "Medium"), "Medium", "Critical", "High", "Medium", "Low"),
				Action:         payload.String(e, "action", ""),
				Reason:         payload.String(e, "reason", ""),
				Implementation: payload.String(e, "implementation", ""),
				ExpectedImpact: payload.String(e, "expected_impact", ""),
			})
		default:
			out = append(out, models.Recommendation{
				Title:    "Invalid Recommendation",
				Priority: "Low",
				Action:   "Review recommendation data",
				Reason:   "Data format issue",
			})
		}
	}
	return out
}

// RiskAlerts normalizes the risk-alerts collection.
func RiskAlerts(raw gjson.Result) []models.RiskAlert {
	entries := entriesOf(raw)
	out := make([]models.RiskAlert, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Type == gjson.String:
			out = append(out, models.RiskAlert{
				Title:    e.Str,
				Severity: "Medium",
				Message:  e.Str,
				Action:   "Review alert details",
			})
		case e.IsObject():
			out = append(out, models.RiskAlert{
				Title:    payload.String(e, "title", ""),
				Severity: enumOr(payload.String(e, "severity", "Medium"), "Medium", "Critical", "High", "Medium", "Low"),
				Message:  payload.String(e, "message", ""),
				Impact:   payload.String(e, "impact", ""),
				Action:   payload.String(e, "action", ""),
				Timeline: payload.String(e, "timeline", ""),
			})
		default:
			out = append(out, models.RiskAlert{
				Title:    "Invalid Alert",
				Severity: "Low",
				Message:  "Alert data format issue",
				Action:   "Review alert data",
			})
		}
	}
	return out
}

// MarketContext normalizes the market-context collection.
func MarketContext(raw gjson.Result) []models.MarketContextEntry {
	entries := entriesOf(raw)
	out := make([]models.MarketContextEntry, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.Type == gjson.String:
			out = append(out, models.MarketContextEntry{
				Trend:       e.Str,
				Impact:      "Medium",
				Description: e.Str,
			})
		case e.IsObject():
			out = append(out, models.MarketContextEntry{
				Trend:          payload.String(e, "trend", ""),
				Impact:         enumOr(payload.String(e, "impact", "Medium"), "Medium", "High", "Medium", "Low"),
				Description:    payload.String(e, "description", ""),
				Recommendation: payload.String(e, "recommendation", ""),
				Source:         payload.String(e, "source", ""),
			})
		default:
			out = append(out, models.MarketContextEntry{
				Trend:       stringify(e),
				Impact:      "Medium",
				Description: "Unrecognized market context entry",
			})
		}
	}
	return out
}
