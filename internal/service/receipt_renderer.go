package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"medicare-plus/config"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/mask"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReceiptView is the display-ready receipt shared by the HTML and PDF renderers
type ReceiptView struct {
	HospitalName    string
	HospitalAddress string
	HospitalPhone   string
	TaxPIN          string

	InvoiceNumber string
	ControlUnitNo string
	ReceiptID     string

	PatientName     string
	PatientEmail    string
	PatientPhone    string
	Service         string
	DoctorName      string
	AppointmentDate string
	AppointmentTime string
	PaymentMethod   string
	PaymentDate     string
	TransactionID   string

	CompanyName       string
	EmployeeID        string
	Attendees         int
	InsuranceProvider string
	InsurancePolicy   string

	PreVAT   string
	VAT      string
	Total    string
	VATLabel string
	QRCode   string
}

// ReceiptRenderer turns receipt data into printable documents
type ReceiptRenderer struct {
	cfg         config.ReceiptConfig
	tmpl        *template.Template
	compressPDF bool
}

func NewReceiptRenderer(cfg config.ReceiptConfig) *ReceiptRenderer {
	return &ReceiptRenderer{
		cfg:         cfg,
		tmpl:        template.Must(template.New("receipt").Parse(receiptTemplate)),
		compressPDF: true,
	}
}

// View masks personal data, computes the VAT split and formats every value
func (r *ReceiptRenderer) View(receipt entity.ReceiptData, ids entity.ReceiptIdentifiers) ReceiptView {
	rate := decimal.NewFromFloat(r.cfg.VATRate)
	vat := entity.ComputeVAT(receipt.Amount, rate)

	view := ReceiptView{
		HospitalName:    r.cfg.HospitalName,
		HospitalAddress: r.cfg.HospitalAddress,
		HospitalPhone:   r.cfg.HospitalPhone,
		TaxPIN:          r.cfg.TaxPIN,

		InvoiceNumber: ids.InvoiceNumber,
		ControlUnitNo: ids.ControlUnitNo,
		ReceiptID:     ids.ReceiptID,

		PatientName:     receipt.PatientName,
		PatientEmail:    mask.Email(receipt.PatientEmail),
		PatientPhone:    mask.Phone(receipt.PatientPhone),
		Service:         receipt.Service,
		DoctorName:      receipt.DoctorName,
		AppointmentDate: receipt.AppointmentDate,
		AppointmentTime: receipt.AppointmentTime,
		PaymentMethod:   receipt.PaymentMethod.DisplayName(),
		PaymentDate:     receipt.PaymentDate.Format("02 Jan 2006 15:04"),
		TransactionID:   receipt.TransactionID,

		PreVAT:   FormatKES(vat.PreVAT),
		VAT:      FormatKES(vat.VAT),
		Total:    FormatKES(vat.Total),
		VATLabel: fmt.Sprintf("VAT (%s%%)", rate.Mul(decimal.NewFromInt(100)).String()),
		QRCode:   r.qrCodeURL(receipt.TransactionID),
	}

	if receipt.IsCompany {
		view.CompanyName = receipt.CompanyName
		view.EmployeeID = receipt.EmployeeID
	}
	if receipt.GroupBooking {
		view.Attendees = receipt.NumberOfAttendees
	}
	if receipt.InsuranceProvider != "" {
		view.InsuranceProvider = receipt.InsuranceProvider
		view.InsurancePolicy = mask.Policy(receipt.InsurancePolicy)
	}
	return view
}

// RenderHTML renders the full print document; the page prints itself on load
func (r *ReceiptRenderer) RenderHTML(receipt entity.ReceiptData, ids entity.ReceiptIdentifiers) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.View(receipt, ids)); err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", receipt.TransactionID, err)
	}
	return buf.Bytes(), nil
}

func (r *ReceiptRenderer) qrCodeURL(transactionID string) string {
	q := url.Values{}
	q.Set("size", "120x120")
	q.Set("data", fmt.Sprintf("%s - Verify transaction %s", r.cfg.HospitalName, transactionID))
	return r.cfg.QRBaseURL + "?" + q.Encode()
}

// FormatKES formats an amount as "KES 7,200.00"
func FormatKES(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	_, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	p := message.NewPrinter(language.English)
	return "KES " + sign + p.Sprintf("%d", rounded.Abs().IntPart()) + "." + frac
}

const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Receipt {{.ReceiptID}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #1f2933; margin: 24px; }
  .header { text-align: center; border-bottom: 2px solid #0b7285; padding-bottom: 12px; }
  .header h1 { color: #0b7285; margin: 0; }
  .meta, .details, .totals { width: 100%; border-collapse: collapse; margin-top: 16px; }
  .details td, .totals td { padding: 6px 8px; border-bottom: 1px solid #e4e7eb; }
  .label { color: #52606d; width: 40%; }
  .totals .grand td { font-weight: bold; font-size: 1.1em; border-top: 2px solid #1f2933; }
  .footer { margin-top: 24px; text-align: center; font-size: 0.85em; color: #52606d; }
  @media print { .no-print { display: none; } }
</style>
</head>
<body>
<div class="header">
  <h1>{{.HospitalName}}</h1>
  <div>{{.HospitalAddress}} | {{.HospitalPhone}}</div>
  <div>PIN: {{.TaxPIN}}</div>
  <h2>PAYMENT RECEIPT</h2>
</div>

<table class="meta">
  <tr><td>Receipt No: <strong>{{.ReceiptID}}</strong></td><td>Invoice No: <strong>{{.InvoiceNumber}}</strong></td></tr>
  <tr><td>CU Serial No: {{.ControlUnitNo}}</td><td>Date: {{.PaymentDate}}</td></tr>
</table>

<table class="details">
  <tr><td class="label">Patient</td><td>{{.PatientName}}</td></tr>
  <tr><td class="label">Email</td><td>{{.PatientEmail}}</td></tr>
  <tr><td class="label">Phone</td><td>{{.PatientPhone}}</td></tr>
  <tr><td class="label">Service</td><td>{{.Service}}</td></tr>
  <tr><td class="label">Doctor</td><td>{{.DoctorName}}</td></tr>
  <tr><td class="label">Appointment</td><td>{{.AppointmentDate}} at {{.AppointmentTime}}</td></tr>
  {{- if .CompanyName}}
  <tr><td class="label">Company</td><td>{{.CompanyName}}</td></tr>
  {{- if .EmployeeID}}
  <tr><td class="label">Employee ID</td><td>{{.EmployeeID}}</td></tr>
  {{- end}}
  {{- end}}
  {{- if .Attendees}}
  <tr><td class="label">Attendees</td><td>{{.Attendees}}</td></tr>
  {{- end}}
  {{- if .InsuranceProvider}}
  <tr><td class="label">Insurance</td><td>{{.InsuranceProvider}} ({{.InsurancePolicy}})</td></tr>
  {{- end}}
  <tr><td class="label">Payment Method</td><td>{{.PaymentMethod}}</td></tr>
  <tr><td class="label">Transaction ID</td><td>{{.TransactionID}}</td></tr>
</table>

<table class="totals">
  <tr><td class="label">Amount before VAT</td><td>{{.PreVAT}}</td></tr>
  <tr><td class="label">{{.VATLabel}}</td><td>{{.VAT}}</td></tr>
  <tr class="grand"><td>Total Paid</td><td>{{.Total}}</td></tr>
</table>

<div class="footer">
  <img src="{{.QRCode}}" alt="Verification QR code" width="120" height="120">
  <p>Scan to verify transaction {{.TransactionID}}</p>
  <p>Thank you for choosing {{.HospitalName}}. This is a computer generated receipt.</p>
</div>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`
