package web

import (
	"strings"
	"testing"

	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/presentation"
)

func TestNewPageLayout(t *testing.T) {
	page := NewPage(domain.DefaultCustomerRecord(), "m", presentation.Details(""))

	if len(page.Sections) != 2 {
		t.Fatalf("sections = %d", len(page.Sections))
	}
	seen := map[string]Input{}
	for _, s := range page.Sections {
		for _, col := range s.Columns {
			for _, in := range col {
				seen[in.Key] = in
			}
		}
	}
	if len(seen) != len(domain.Columns) {
		t.Fatalf("rendered %d inputs, want %d", len(seen), len(domain.Columns))
	}

	age := seen["age"]
	if age.Value != "30" || age.Min != "18" || age.Max != "100" || age.Step != "1" {
		t.Errorf("age input = %+v", age)
	}
	spend := seen["total_spend"]
	if spend.Value != "5000.00" || spend.Max != "100000.00" || spend.Step != "0.01" {
		t.Errorf("total_spend input = %+v", spend)
	}
	contract := seen["contract_length"]
	if !contract.Select || !contract.Options[0].Selected || contract.Options[0].Value != "Monthly" {
		t.Errorf("contract_length input = %+v", contract)
	}
}

func TestRenderShowsResult(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	page := NewPage(domain.DefaultCustomerRecord(), "churn-logreg-v1", presentation.Details("Logistic Regression"))
	res := presentation.Present(domain.Churn, 0.6759632339074998)
	page.Result = &res

	out, err := r.RenderBytes(page)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"Customer is likely to CHURN",
		"67.60%",
		"Provide personalized retention offers",
		`name="usage_frequency"`,
		"Model &amp; Technical Details",
		"churn-logreg-v1",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "NOT likely to churn") {
		t.Error("rendered both verdict branches")
	}
}

func TestRenderWithoutResult(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.RenderBytes(NewPage(domain.DefaultCustomerRecord(), "", presentation.Details("")))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "Prediction Result") {
		t.Error("result section rendered before any prediction")
	}
}
