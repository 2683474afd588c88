package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/spec-kit/churn-service/internal/domain"
	"github.com/spec-kit/churn-service/internal/presentation"
)

//go:embed templates/*.html
var templateFS embed.FS

// Input is one rendered form control.
type Input struct {
	Key     string
	Label   string
	Select  bool
	Min     string
	Max     string
	Step    string
	Value   string
	Options []Option
}

// Option is one choice of a select input.
type Option struct {
	Value    string
	Selected bool
}

// Section is a titled row of input columns.
type Section struct {
	Title   string
	Columns [][]Input
}

// Page is the view model of the single form page.
type Page struct {
	Title        string
	Sections     []Section
	Result       *presentation.Result
	PredictionID string
	Error        string
	ErrorDetails map[string]any
	ModelName    string
	Details      presentation.ModelDetails
}

// Renderer executes the embedded page template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page as HTML.
func (r *Renderer) Render(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", page)
}

// RenderBytes renders the page into memory so a failed render never sends a partial body.
func (r *Renderer) RenderBytes(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewPage lays the record's values out the way the form shows them.
func NewPage(record domain.CustomerRecord, modelName string, details presentation.ModelDetails) Page {
	return Page{
		Title: "Customer Churn Prediction",
		Sections: []Section{
			{
				Title: "🧾 Customer Information",
				Columns: [][]Input{
					{numeric(domain.AgeField, record.Age), categorical(domain.GenderField, string(record.Gender))},
					{numeric(domain.TenureField, record.Tenure), categorical(domain.ContractLengthField, string(record.ContractLength))},
					{spend(record.TotalSpend), categorical(domain.SubscriptionTypeField, string(record.SubscriptionType))},
				},
			},
			{
				Title: "📊 Usage & Support Metrics",
				Columns: [][]Input{
					{numeric(domain.UsageFrequencyField, record.UsageFrequency)},
					{numeric(domain.SupportCallsField, record.SupportCalls)},
					{numeric(domain.PaymentDelayField, record.PaymentDelay)},
					{numeric(domain.LastInteractionField, record.LastInteraction)},
				},
			},
		},
		ModelName: modelName,
		Details:   details,
	}
}

func numeric(f domain.NumericField, v int) Input {
	return Input{
		Key:   f.Key,
		Label: f.Label,
		Min:   formatBound(f, f.Min),
		Max:   formatBound(f, f.Max),
		Step:  f.Step(),
		Value: strconv.Itoa(v),
	}
}

func spend(v float64) Input {
	f := domain.TotalSpendField
	return Input{
		Key:   f.Key,
		Label: f.Label,
		Min:   formatBound(f, f.Min),
		Max:   formatBound(f, f.Max),
		Step:  f.Step(),
		Value: strconv.FormatFloat(v, 'f', 2, 64),
	}
}

func formatBound(f domain.NumericField, v float64) string {
	if f.Integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func categorical(f domain.CategoricalField, selected string) Input {
	opts := make([]Option, len(f.Options))
	for i, o := range f.Options {
		opts[i] = Option{Value: o, Selected: o == selected}
	}
	return Input{Key: f.Key, Label: f.Label, Select: true, Value: selected, Options: opts}
}
