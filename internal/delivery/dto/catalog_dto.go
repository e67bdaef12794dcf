package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type SlotsQuery struct {
	Date     string `json:"date" validate:"required,date_ymd"`
	Priority bool   `json:"priority"`
	Company  bool   `json:"company"`
}

type QuoteRequest struct {
	Department        string `json:"department" validate:"required,department"`
	IsCompany         bool   `json:"is_company"`
	Priority          bool   `json:"priority"`
	GroupBooking      bool   `json:"group_booking"`
	NumberOfAttendees int    `json:"number_of_attendees" validate:"omitempty,gte=1,lte=20"`
}

// Response DTOs

type RatesResponse struct {
	Standard  decimal.Decimal `json:"standard"`
	Priority  decimal.Decimal `json:"priority"`
	Corporate decimal.Decimal `json:"corporate"`
}

type DepartmentResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Rates RatesResponse `json:"rates"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}

type DepartmentDetailResponse struct {
	DepartmentResponse
	Doctors []DoctorResponse `json:"doctors"`
}

type DoctorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Experience int    `json:"experience"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type TimeSlotResponse struct {
	Token    string `json:"token"`
	Period   string `json:"period"`
	Hour     int    `json:"hour"`
	Label    string `json:"label"`
	Priority bool   `json:"priority"`
	Disabled bool   `json:"disabled"`
}

type SlotListResponse struct {
	Date  string             `json:"date"`
	Slots []TimeSlotResponse `json:"slots"`
}

type QuoteResponse struct {
	Department string          `json:"department"`
	Tier       string          `json:"tier"`
	BaseRate   decimal.Decimal `json:"base_rate"`
	Attendees  int             `json:"attendees"`
	Total      decimal.Decimal `json:"total"`
	PreVAT     decimal.Decimal `json:"pre_vat"`
	VAT        decimal.Decimal `json:"vat"`
}
