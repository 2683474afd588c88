package domain

// Gender enumerates the accepted gender values.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// SubscriptionType enumerates subscription tiers.
type SubscriptionType string

const (
	SubscriptionBasic    SubscriptionType = "Basic"
	SubscriptionStandard SubscriptionType = "Standard"
	SubscriptionPremium  SubscriptionType = "Premium"
)

// ContractLength enumerates billing contract lengths.
type ContractLength string

const (
	ContractMonthly   ContractLength = "Monthly"
	ContractQuarterly ContractLength = "Quarterly"
	ContractAnnual    ContractLength = "Annual"
)

// Column names as the fitted preprocessing stage expects them.
const (
	ColumnAge              = "Age"
	ColumnTenure           = "Tenure"
	ColumnUsageFrequency   = "Usage Frequency"
	ColumnSupportCalls     = "Support Calls"
	ColumnPaymentDelay     = "Payment Delay"
	ColumnTotalSpend       = "Total Spend"
	ColumnLastInteraction  = "Last Interaction"
	ColumnGender           = "Gender"
	ColumnSubscriptionType = "Subscription Type"
	ColumnContractLength   = "Contract Length"
)

// Columns is the fixed column order of a customer row.
var Columns = []string{
	ColumnAge,
	ColumnTenure,
	ColumnUsageFrequency,
	ColumnSupportCalls,
	ColumnPaymentDelay,
	ColumnTotalSpend,
	ColumnLastInteraction,
	ColumnGender,
	ColumnSubscriptionType,
	ColumnContractLength,
}

// CustomerRecord is the transient set of attributes scored by the model.
type CustomerRecord struct {
	Age              int              `json:"age" form:"age" validate:"min=18,max=100"`
	Tenure           int              `json:"tenure" form:"tenure" validate:"min=0,max=100"`
	UsageFrequency   int              `json:"usage_frequency" form:"usage_frequency" validate:"min=0,max=100"`
	SupportCalls     int              `json:"support_calls" form:"support_calls" validate:"min=0,max=50"`
	PaymentDelay     int              `json:"payment_delay" form:"payment_delay" validate:"min=0,max=60"`
	TotalSpend       float64          `json:"total_spend" form:"total_spend" validate:"min=0,max=100000"`
	LastInteraction  int              `json:"last_interaction" form:"last_interaction" validate:"min=0,max=365"`
	Gender           Gender           `json:"gender" form:"gender" validate:"oneof=Male Female"`
	SubscriptionType SubscriptionType `json:"subscription_type" form:"subscription_type" validate:"oneof=Basic Standard Premium"`
	ContractLength   ContractLength   `json:"contract_length" form:"contract_length" validate:"oneof=Monthly Quarterly Annual"`
}

// DefaultCustomerRecord returns the values the form starts with.
func DefaultCustomerRecord() CustomerRecord {
	return CustomerRecord{
		Age:              30,
		Tenure:           12,
		UsageFrequency:   20,
		SupportCalls:     2,
		PaymentDelay:     5,
		TotalSpend:       5000.0,
		LastInteraction:  30,
		Gender:           GenderMale,
		SubscriptionType: SubscriptionBasic,
		ContractLength:   ContractMonthly,
	}
}

// Clamp returns a copy with every numeric attribute forced into its range.
func (r CustomerRecord) Clamp() CustomerRecord {
	out := r
	out.Age = clampInt(r.Age, AgeField)
	out.Tenure = clampInt(r.Tenure, TenureField)
	out.UsageFrequency = clampInt(r.UsageFrequency, UsageFrequencyField)
	out.SupportCalls = clampInt(r.SupportCalls, SupportCallsField)
	out.PaymentDelay = clampInt(r.PaymentDelay, PaymentDelayField)
	out.TotalSpend = TotalSpendField.Clamp(r.TotalSpend)
	out.LastInteraction = clampInt(r.LastInteraction, LastInteractionField)
	return out
}

// Row builds the ordered single-row table handed to the model.
func (r CustomerRecord) Row() Row {
	return Row{
		NumericCell(ColumnAge, float64(r.Age)),
		NumericCell(ColumnTenure, float64(r.Tenure)),
		NumericCell(ColumnUsageFrequency, float64(r.UsageFrequency)),
		NumericCell(ColumnSupportCalls, float64(r.SupportCalls)),
		NumericCell(ColumnPaymentDelay, float64(r.PaymentDelay)),
		NumericCell(ColumnTotalSpend, r.TotalSpend),
		NumericCell(ColumnLastInteraction, float64(r.LastInteraction)),
		CategoricalCell(ColumnGender, string(r.Gender)),
		CategoricalCell(ColumnSubscriptionType, string(r.SubscriptionType)),
		CategoricalCell(ColumnContractLength, string(r.ContractLength)),
	}
}

func clampInt(v int, f NumericField) int {
	return int(f.Clamp(float64(v)))
}
