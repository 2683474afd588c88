package domain

// NumericField describes a numeric form input and its hard bounds.
type NumericField struct {
	Column  string  `json:"column"`
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Integer bool    `json:"integer"`
}

// Clamp forces v into [Min, Max].
func (f NumericField) Clamp(v float64) float64 {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// Step is the input granularity.
func (f NumericField) Step() string {
	if f.Integer {
		return "1"
	}
	return "0.01"
}

// CategoricalField describes a select input.
type CategoricalField struct {
	Column  string   `json:"column"`
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
	Default string   `json:"default"`
}

// Has reports whether v is one of the field's options.
func (f CategoricalField) Has(v string) bool {
	for _, opt := range f.Options {
		if opt == v {
			return true
		}
	}
	return false
}

var (
	AgeField             = NumericField{Column: ColumnAge, Key: "age", Label: "Age", Min: 18, Max: 100, Default: 30, Integer: true}
	TenureField          = NumericField{Column: ColumnTenure, Key: "tenure", Label: "Tenure (months)", Min: 0, Max: 100, Default: 12, Integer: true}
	UsageFrequencyField  = NumericField{Column: ColumnUsageFrequency, Key: "usage_frequency", Label: "Usage Frequency", Min: 0, Max: 100, Default: 20, Integer: true}
	SupportCallsField    = NumericField{Column: ColumnSupportCalls, Key: "support_calls", Label: "Support Calls", Min: 0, Max: 50, Default: 2, Integer: true}
	PaymentDelayField    = NumericField{Column: ColumnPaymentDelay, Key: "payment_delay", Label: "Payment Delay (days)", Min: 0, Max: 60, Default: 5, Integer: true}
	TotalSpendField      = NumericField{Column: ColumnTotalSpend, Key: "total_spend", Label: "Total Spend", Min: 0, Max: 100000, Default: 5000}
	LastInteractionField = NumericField{Column: ColumnLastInteraction, Key: "last_interaction", Label: "Last Interaction (days ago)", Min: 0, Max: 365, Default: 30, Integer: true}

	GenderField           = CategoricalField{Column: ColumnGender, Key: "gender", Label: "Gender", Options: []string{"Male", "Female"}, Default: "Male"}
	SubscriptionTypeField = CategoricalField{Column: ColumnSubscriptionType, Key: "subscription_type", Label: "Subscription Type", Options: []string{"Basic", "Standard", "Premium"}, Default: "Basic"}
	ContractLengthField   = CategoricalField{Column: ColumnContractLength, Key: "contract_length", Label: "Contract Length", Options: []string{"Monthly", "Quarterly", "Annual"}, Default: "Monthly"}
)

// NumericFields lists numeric inputs in column order.
var NumericFields = []NumericField{
	AgeField,
	TenureField,
	UsageFrequencyField,
	SupportCallsField,
	PaymentDelayField,
	TotalSpendField,
	LastInteractionField,
}

// CategoricalFields lists select inputs in column order.
var CategoricalFields = []CategoricalField{
	GenderField,
	SubscriptionTypeField,
	ContractLengthField,
}
