package migrate

import (
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// rawTrade builds a raw trade map in one of the shapes that have existed
// over the schema's lifetime. shape selects the feedbackAnalysis encoding:
// 0 = current array, 1 = legacy scalar string, 2 = absent, 3 = mistyped.
func rawTrade(shape int, text string, pct float64, withReflection bool) map[string]any {
	t := map[string]any{
		"id":               "trade-x",
		"txn":              "",
		"ticker":           "SPY",
		"status":           "win",
		"percentageChange": pct,
		"dollarChange":     pct * 10,
		"description":      text,
		"timestamp":        float64(1704153700000),
		"actions":          []any{},
		"expectedOutcome":  "",
		"actualOutcome":    "",
	}

	switch shape % 4 {
	case 0:
		t["feedbackAnalysis"] = []any{text}
	case 1:
		t["feedbackAnalysis"] = text
	case 2:
		// absent
	case 3:
		t["feedbackAnalysis"] = 42.0
	}

	if withReflection {
		t["lessonsLearned"] = []any{text}
		t["emotionalState"] = "neutral"
	}

	return t
}

func rawState(trade map[string]any) map[string]any {
	return map[string]any{
		"sessions": []any{
			map[string]any{
				"id":        "session-x",
				"name":      "01.02.2024",
				"date":      "01.02.2024",
				"createdAt": float64(1704153600000),
				"trades":    []any{trade},
			},
		},
		"activeSessionId": "session-x",
	}
}

// Property: migrating twice produces the same result as migrating once,
// whatever legacy shape the input has.
func TestProperty_MigrateIdempotent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("migrate(v) == migrate(migrate(v))", prop.ForAll(
		func(shape int, text string, pct float64, withReflection bool) bool {
			v := rawState(rawTrade(shape, text, pct, withReflection))

			once := Migrate(v)

			data, err := json.Marshal(once)
			if err != nil {
				return false
			}
			var decoded any
			if err := json.Unmarshal(data, &decoded); err != nil {
				return false
			}
			twice := Migrate(decoded)

			a, _ := json.Marshal(once)
			b, _ := json.Marshal(twice)
			return string(a) == string(b)
		},
		gen.IntRange(0, 3),
		gen.AnyString(),
		gen.Float64Range(-100, 100),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: migration never panics for any JSON-decodable input; malformed
// fields degrade to defaults instead of aborting the load.
func TestProperty_MigrateTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("no panic for corrupted trees", prop.ForAll(
		func(kind int, s string, f float64, field string) (ok bool) {
			defer func() {
				if r := recover(); r != nil {
					ok = false
				}
			}()

			// Arbitrary scalar poked into every position of the state tree.
			var scalar any
			switch kind {
			case 0:
				scalar = s
			case 1:
				scalar = f
			case 2:
				scalar = true
			case 3:
				scalar = nil
			case 4:
				scalar = []any{s, f, nil}
			default:
				scalar = map[string]any{s: f}
			}

			trade := rawTrade(0, "x", 1, true)
			trade[field] = scalar
			state := rawState(trade)
			state["activeSessionId"] = scalar

			Migrate(state)
			Migrate(scalar)
			Migrate(map[string]any{"sessions": scalar})
			return true
		},
		gen.IntRange(0, 5),
		gen.AnyString(),
		gen.Float64Range(-1e12, 1e12),
		gen.OneConstOf(
			"id", "ticker", "status", "percentageChange", "dollarChange",
			"timestamp", "actions", "feedbackAnalysis", "lessonsLearned",
			"emotionalState", "chartUrl",
		),
	))

	properties.TestingRun(t)
}

// Property: a legacy scalar feedbackAnalysis is wrapped in a one-element
// slice; an empty scalar becomes an empty slice.
func TestProperty_MigrateLegacyScalarWrap(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("scalar feedback wraps to slice", prop.ForAll(
		func(text string) bool {
			state := Migrate(rawState(rawTrade(1, text, 0, false)))
			got := state.Sessions[0].Trades[0].FeedbackAnalysis
			if text == "" {
				return len(got) == 0
			}
			return len(got) == 1 && got[0] == text
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
