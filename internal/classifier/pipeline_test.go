package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/spec-kit/churn-service/internal/domain"
)

const testArtifactPath = "../../models/churn_model.json"

func loadTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := Load(testArtifactPath)
	if err != nil {
		t.Fatalf("failed to load artifact: %v", err)
	}
	return p
}

func score(t *testing.T, p *Pipeline, rec domain.CustomerRecord) (int, float64) {
	t.Helper()
	flag, err := p.Predict(rec.Row())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	proba, err := p.PredictProba(rec.Row())
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	return flag, proba[1]
}

func TestLoadBundledArtifact(t *testing.T) {
	p := loadTestPipeline(t)

	if p.Name() != "churn-logreg-v1" {
		t.Errorf("Name() = %q", p.Name())
	}
	if p.Algorithm() != "Logistic Regression" {
		t.Errorf("Algorithm() = %q", p.Algorithm())
	}
	if !equalColumns(p.Columns(), domain.Columns) {
		t.Errorf("Columns() = %v", p.Columns())
	}
}

// Regression fixtures captured from the bundled artifact.
func TestPredictFixtures(t *testing.T) {
	p := loadTestPipeline(t)

	tests := []struct {
		name     string
		rec      domain.CustomerRecord
		wantFlag int
		wantProb float64
	}{
		{
			name:     "defaults",
			rec:      domain.DefaultCustomerRecord(),
			wantFlag: 0,
			wantProb: 7.925807002019872e-07,
		},
		{
			name: "lower bounds",
			rec: domain.CustomerRecord{
				Age:              18,
				Gender:           domain.GenderMale,
				SubscriptionType: domain.SubscriptionBasic,
				ContractLength:   domain.ContractMonthly,
			},
			wantFlag: 1,
			wantProb: 0.6759632339074998,
		},
		{
			name: "upper bounds",
			rec: domain.CustomerRecord{
				Age:              100,
				Tenure:           100,
				UsageFrequency:   100,
				SupportCalls:     50,
				PaymentDelay:     60,
				TotalSpend:       100000,
				LastInteraction:  365,
				Gender:           domain.GenderFemale,
				SubscriptionType: domain.SubscriptionPremium,
				ContractLength:   domain.ContractAnnual,
			},
			wantFlag: 0,
			wantProb: 0,
		},
		{
			name: "frequent caller on monthly contract",
			rec: domain.CustomerRecord{
				Age:              45,
				Tenure:           6,
				UsageFrequency:   5,
				SupportCalls:     8,
				PaymentDelay:     25,
				TotalSpend:       400,
				LastInteraction:  20,
				Gender:           domain.GenderFemale,
				SubscriptionType: domain.SubscriptionBasic,
				ContractLength:   domain.ContractMonthly,
			},
			wantFlag: 1,
			wantProb: 0.9998023394669997,
		},
		{
			name: "annual premium",
			rec: domain.CustomerRecord{
				Age:              30,
				Tenure:           12,
				UsageFrequency:   20,
				SupportCalls:     2,
				PaymentDelay:     5,
				TotalSpend:       500,
				LastInteraction:  30,
				Gender:           domain.GenderMale,
				SubscriptionType: domain.SubscriptionPremium,
				ContractLength:   domain.ContractAnnual,
			},
			wantFlag: 0,
			wantProb: 0.337563335180446,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag, prob := score(t, p, tt.rec)
			if flag != tt.wantFlag {
				t.Errorf("flag = %d, want %d", flag, tt.wantFlag)
			}
			if math.Abs(prob-tt.wantProb) > 1e-9 {
				t.Errorf("probability = %.17g, want %.17g", prob, tt.wantProb)
			}
		})
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	p := loadTestPipeline(t)
	rec := domain.DefaultCustomerRecord()

	flag, prob := score(t, p, rec)
	for i := 0; i < 50; i++ {
		f, pr := score(t, p, rec)
		if f != flag || pr != prob {
			t.Fatalf("run %d: (%d, %v) != (%d, %v)", i, f, pr, flag, prob)
		}
	}
}

func TestPredictOutputRanges(t *testing.T) {
	p := loadTestPipeline(t)

	for _, age := range []int{18, 40, 100} {
		for _, calls := range []int{0, 10, 50} {
			for _, spend := range []float64{0, 750.5, 100000} {
				for _, contract := range []domain.ContractLength{domain.ContractMonthly, domain.ContractQuarterly, domain.ContractAnnual} {
					rec := domain.DefaultCustomerRecord()
					rec.Age, rec.SupportCalls, rec.TotalSpend, rec.ContractLength = age, calls, spend, contract

					flag, err := p.Predict(rec.Row())
					if err != nil {
						t.Fatalf("Predict(%+v): %v", rec, err)
					}
					proba, err := p.PredictProba(rec.Row())
					if err != nil {
						t.Fatalf("PredictProba(%+v): %v", rec, err)
					}
					if flag != 0 && flag != 1 {
						t.Errorf("flag = %d", flag)
					}
					if proba[1] < 0 || proba[1] > 1 {
						t.Errorf("probability = %v", proba[1])
					}
					if math.Abs(proba[0]+proba[1]-1) > 1e-12 {
						t.Errorf("probabilities do not sum to 1: %v", proba)
					}
					if (flag == 1) != (proba[1] > 0.5) {
						t.Errorf("flag %d disagrees with probability %v", flag, proba[1])
					}
				}
			}
		}
	}
}

func TestPredictRejectsMismatchedRows(t *testing.T) {
	p := loadTestPipeline(t)
	good := domain.DefaultCustomerRecord().Row()

	swapped := append(domain.Row{}, good...)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	renamed := append(domain.Row{}, good...)
	renamed[2].Column = "Usage"

	typed := append(domain.Row{}, good...)
	typed[7] = domain.NumericCell(domain.ColumnGender, 1)

	unknown := append(domain.Row{}, good...)
	unknown[8].Text = "Platinum"

	tests := []struct {
		name string
		row  domain.Row
		want error
	}{
		{"short", good[:9], ErrSchemaMismatch},
		{"reordered", swapped, ErrSchemaMismatch},
		{"renamed", renamed, ErrSchemaMismatch},
		{"wrong type", typed, ErrSchemaMismatch},
		{"unknown category", unknown, ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Predict(tt.row); !errors.Is(err, tt.want) {
				t.Errorf("Predict err = %v, want %v", err, tt.want)
			}
			if _, err := p.PredictProba(tt.row); !errors.Is(err, tt.want) {
				t.Errorf("PredictProba err = %v, want %v", err, tt.want)
			}
		})
	}
}

func readTestArtifact(t *testing.T) Artifact {
	t.Helper()
	data, err := os.ReadFile(testArtifactPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var art Artifact
	if err := sonic.Unmarshal(data, &art); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	return art
}

func TestNewPipelineValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Artifact)
		schema bool
	}{
		{"reordered columns", func(a *Artifact) {
			a.Numeric.Columns[0], a.Numeric.Columns[1] = a.Numeric.Columns[1], a.Numeric.Columns[0]
		}, true},
		{"missing categorical column", func(a *Artifact) {
			a.Categorical.Columns = a.Categorical.Columns[:2]
			a.Categorical.Categories = a.Categorical.Categories[:2]
		}, true},
		{"coefficient count", func(a *Artifact) { a.Coefficients = a.Coefficients[1:] }, false},
		{"zero scale", func(a *Artifact) { a.Numeric.Scale[3] = 0 }, false},
		{"mean count", func(a *Artifact) { a.Numeric.Mean = a.Numeric.Mean[:6] }, false},
		{"multiclass", func(a *Artifact) { a.Classes = []int{0, 1, 2} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := readTestArtifact(t)
			tt.mutate(&art)
			_, err := NewPipeline(art)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrSchemaMismatch); got != tt.schema {
				t.Errorf("errors.Is(ErrSchemaMismatch) = %v for %v", got, err)
			}
		})
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing artifact")
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("\x80\x04\x95pickle"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(corrupt); err == nil {
		t.Error("expected error for corrupt artifact")
	}
}
