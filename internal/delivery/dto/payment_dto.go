package dto

// SubmitPaymentRequest carries the chosen method and its fields. Which
// fields are required depends on the method, so they are checked by the
// method's processor rather than by tags.
type SubmitPaymentRequest struct {
	Method string `json:"method"`

	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`

	MobileNumber   string `json:"mobile_number"`
	MobileProvider string `json:"mobile_provider"`

	BankReference string `json:"bank_reference"`

	InsuranceProvider string `json:"insurance_provider"`
	InsurancePolicy   string `json:"insurance_policy"`
	InsuranceMember   string `json:"insurance_member"`
}
