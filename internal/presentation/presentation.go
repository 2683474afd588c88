package presentation

import (
	"fmt"

	"github.com/spec-kit/churn-service/internal/domain"
)

// Level selects the banner style.
type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Advice is a titled bullet list shown under the verdict.
type Advice struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Result is everything the page shows for one prediction.
type Result struct {
	Level           Level   `json:"level"`
	Headline        string  `json:"headline"`
	Probability     float64 `json:"probability"`
	ProbabilityText string  `json:"probability_text"`
	Advice          Advice  `json:"advice"`
}

// Present maps a (flag, probability) pair to its display elements.
func Present(flag domain.ChurnFlag, probability float64) Result {
	res := Result{
		Probability:     probability,
		ProbabilityText: FormatProbability(probability),
	}
	if flag == domain.Churn {
		res.Level = LevelError
		res.Headline = "⚠️ Customer is likely to CHURN"
		res.Advice = Advice{
			Title: "🔔 Recommended Business Actions",
			Items: []string{
				"Provide personalized retention offers",
				"Improve customer support experience",
				"Engage with proactive communication",
			},
		}
		return res
	}
	res.Level = LevelSuccess
	res.Headline = "✅ Customer is NOT likely to churn"
	res.Advice = Advice{
		Title: "🎯 Customer Status",
		Items: []string{
			"Customer shows strong engagement",
			"Continue current service strategy",
		},
	}
	return res
}

// FormatProbability renders p as a percentage with two decimals.
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
