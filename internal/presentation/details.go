package presentation

// ModelDetails is the static documentation shown in the collapsible panel.
type ModelDetails struct {
	Algorithm     string   `json:"algorithm"`
	Preprocessing []string `json:"preprocessing"`
	Rationale     []string `json:"rationale"`
	Metrics       []string `json:"metrics"`
}

// DefaultAlgorithm is shown when the artifact does not name its estimator.
const DefaultAlgorithm = "Logistic Regression"

// Details returns the panel content for the given estimator name.
func Details(algorithm string) ModelDetails {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	return ModelDetails{
		Algorithm: algorithm,
		Preprocessing: []string{
			"StandardScaler (Numerical Features)",
			"OneHotEncoder (Categorical Features)",
		},
		Rationale: []string{
			"Interpretable",
			"Probability-based predictions",
			"Suitable for binary classification",
		},
		Metrics: []string{
			"Accuracy",
			"ROC-AUC",
		},
	}
}
