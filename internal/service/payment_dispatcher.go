package service

import (
	"context"
	"strings"
	"time"

	"medicare-plus/config"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/validator"

	"github.com/shopspring/decimal"
)

// Messages shown to the patient once processing ends
const (
	MessageCardDeclined   = "Payment failed. Please check your card details and try again."
	MessageMobileDeclined = "Mobile money payment failed. Please try again."
	MessageCardApproved   = "Card payment successful"
	MessageMobileApproved = "Mobile money payment received"
	MessageBankConfirmed  = "Bank transfer reference recorded"
	MessageInsuranceClaim = "Insurance claim submitted"
	MessagePayAtHospital  = "Appointment reserved, pay at the hospital front desk"
)

// PaymentOutcome is the result of processing one attempt
type PaymentOutcome struct {
	Approved bool
	Message  string
}

// PaymentProcessor is one simulated payment flow
type PaymentProcessor interface {
	Method() entity.PaymentMethod
	// Validate returns field scoped errors keyed by JSON field name
	Validate(input entity.PaymentInput) map[string]string
	Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error)
}

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the production Sleeper
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Per-method payment fields, checked with the same tags as request DTOs
type cardInput struct {
	Number string `json:"card_number" validate:"required,card_number"`
	Name   string `json:"card_name" validate:"required"`
	Expiry string `json:"card_expiry" validate:"required,card_expiry"`
	CVV    string `json:"card_cvv" validate:"required,number,min=3,max=4"`
}

type mobileMoneyInput struct {
	Number string `json:"mobile_number" validate:"required,mobile_number"`
}

type bankTransferInput struct {
	Reference string `json:"bank_reference" validate:"required"`
}

type insuranceInput struct {
	Provider string `json:"insurance_provider" validate:"required"`
	Policy   string `json:"insurance_policy" validate:"required"`
}

// PaymentDispatcher renders exactly one processor per method tag
type PaymentDispatcher struct {
	processors map[entity.PaymentMethod]PaymentProcessor
	fallback   PaymentProcessor
}

func NewPaymentDispatcher(cfg config.PaymentConfig, gateway PaymentGateway, sleep Sleeper, v *validator.CustomValidator) *PaymentDispatcher {
	if sleep == nil {
		sleep = SleepContext
	}
	if v == nil {
		v = validator.NewValidator()
	}
	processors := []PaymentProcessor{
		&cardProcessor{delay: cfg.CardDelay, gateway: gateway, sleep: sleep, validator: v},
		&mobileMoneyProcessor{delay: cfg.MobileMoneyDelay, gateway: gateway, sleep: sleep, validator: v},
		&bankTransferProcessor{delay: cfg.BankTransferDelay, sleep: sleep, validator: v},
		&insuranceProcessor{delay: cfg.InsuranceDelay, sleep: sleep, validator: v},
	}

	d := &PaymentDispatcher{
		processors: make(map[entity.PaymentMethod]PaymentProcessor, len(processors)),
		fallback:   &payAtHospitalProcessor{delay: cfg.HospitalDelay, sleep: sleep},
	}
	for _, p := range processors {
		d.processors[p.Method()] = p
	}
	return d
}

// For returns the processor of method; anything unknown pays at the hospital
func (d *PaymentDispatcher) For(method entity.PaymentMethod) PaymentProcessor {
	if p, ok := d.processors[method]; ok {
		return p
	}
	return d.fallback
}

func validateInput(v *validator.CustomValidator, input interface{}) map[string]string {
	if err := v.Validate(input); err != nil {
		return v.FormatValidationErrors(err)
	}
	return map[string]string{}
}

// authorize waits out the simulated latency then asks the gateway
func authorize(ctx context.Context, sleep Sleeper, delay time.Duration, gateway PaymentGateway, method entity.PaymentMethod, amount decimal.Decimal, approved, declined string) (PaymentOutcome, error) {
	if err := sleep(ctx, delay); err != nil {
		return PaymentOutcome{}, err
	}
	ok, err := gateway.Authorize(ctx, method, amount)
	if err != nil {
		return PaymentOutcome{}, err
	}
	if !ok {
		return PaymentOutcome{Approved: false, Message: declined}, nil
	}
	return PaymentOutcome{Approved: true, Message: approved}, nil
}

// confirm waits out the simulated latency and always approves
func confirm(ctx context.Context, sleep Sleeper, delay time.Duration, message string) (PaymentOutcome, error) {
	if err := sleep(ctx, delay); err != nil {
		return PaymentOutcome{}, err
	}
	return PaymentOutcome{Approved: true, Message: message}, nil
}

type cardProcessor struct {
	delay     time.Duration
	gateway   PaymentGateway
	sleep     Sleeper
	validator *validator.CustomValidator
}

func (p *cardProcessor) Method() entity.PaymentMethod { return entity.PaymentMethodCard }

func (p *cardProcessor) Validate(input entity.PaymentInput) map[string]string {
	return validateInput(p.validator, &cardInput{
		Number: input.CardNumber,
		Name:   strings.TrimSpace(input.CardName),
		Expiry: input.CardExpiry,
		CVV:    input.CardCVV,
	})
}

func (p *cardProcessor) Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error) {
	return authorize(ctx, p.sleep, p.delay, p.gateway, p.Method(), amount, MessageCardApproved, MessageCardDeclined)
}

type mobileMoneyProcessor struct {
	delay     time.Duration
	gateway   PaymentGateway
	sleep     Sleeper
	validator *validator.CustomValidator
}

func (p *mobileMoneyProcessor) Method() entity.PaymentMethod { return entity.PaymentMethodMobileMoney }

func (p *mobileMoneyProcessor) Validate(input entity.PaymentInput) map[string]string {
	return validateInput(p.validator, &mobileMoneyInput{Number: input.MobileNumber})
}

func (p *mobileMoneyProcessor) Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error) {
	return authorize(ctx, p.sleep, p.delay, p.gateway, p.Method(), amount, MessageMobileApproved, MessageMobileDeclined)
}

type bankTransferProcessor struct {
	delay     time.Duration
	sleep     Sleeper
	validator *validator.CustomValidator
}

func (p *bankTransferProcessor) Method() entity.PaymentMethod {
	return entity.PaymentMethodBankTransfer
}

func (p *bankTransferProcessor) Validate(input entity.PaymentInput) map[string]string {
	return validateInput(p.validator, &bankTransferInput{Reference: strings.TrimSpace(input.BankReference)})
}

func (p *bankTransferProcessor) Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error) {
	return confirm(ctx, p.sleep, p.delay, MessageBankConfirmed)
}

type insuranceProcessor struct {
	delay     time.Duration
	sleep     Sleeper
	validator *validator.CustomValidator
}

func (p *insuranceProcessor) Method() entity.PaymentMethod { return entity.PaymentMethodInsurance }

func (p *insuranceProcessor) Validate(input entity.PaymentInput) map[string]string {
	return validateInput(p.validator, &insuranceInput{
		Provider: strings.TrimSpace(input.InsuranceProvider),
		Policy:   strings.TrimSpace(input.InsurancePolicy),
	})
}

func (p *insuranceProcessor) Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error) {
	return confirm(ctx, p.sleep, p.delay, MessageInsuranceClaim)
}

type payAtHospitalProcessor struct {
	delay time.Duration
	sleep Sleeper
}

func (p *payAtHospitalProcessor) Method() entity.PaymentMethod {
	return entity.PaymentMethodPayAtHospital
}

func (p *payAtHospitalProcessor) Validate(input entity.PaymentInput) map[string]string {
	return map[string]string{}
}

func (p *payAtHospitalProcessor) Process(ctx context.Context, amount decimal.Decimal) (PaymentOutcome, error) {
	return confirm(ctx, p.sleep, p.delay, MessagePayAtHospital)
}
