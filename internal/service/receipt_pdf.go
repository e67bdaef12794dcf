package service

import (
	"bytes"
	"fmt"
	"strconv"

	"medicare-plus/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF renders the receipt as an A4 PDF for download
func (r *ReceiptRenderer) RenderPDF(receipt entity.ReceiptData, ids entity.ReceiptIdentifiers) ([]byte, error) {
	view := r.View(receipt, ids)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compressPDF)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Core fonts are cp1252; runes outside it print as '?'
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Hospital header
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(11, 114, 133)
	pdf.CellFormat(0, 10, tr(view.HospitalName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, tr(view.HospitalAddress+" | "+view.HospitalPhone), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("PIN: "+view.TaxPIN), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "PAYMENT RECEIPT", "1", 1, "C", false, 0, "")

	addReceiptRow(pdf, tr, "Receipt No", view.ReceiptID, true)
	addReceiptRow(pdf, tr, "Invoice No", view.InvoiceNumber, false)
	addReceiptRow(pdf, tr, "CU Serial No", view.ControlUnitNo, false)
	addReceiptRow(pdf, tr, "Date", view.PaymentDate, false)

	pdf.CellFormat(0, 10, "Appointment Details", "1", 1, "C", false, 0, "")
	addReceiptRow(pdf, tr, "Patient", view.PatientName, false)
	addReceiptRow(pdf, tr, "Email", view.PatientEmail, false)
	addReceiptRow(pdf, tr, "Phone", view.PatientPhone, false)
	addReceiptRow(pdf, tr, "Service", view.Service, false)
	addReceiptRow(pdf, tr, "Doctor", view.DoctorName, false)
	addReceiptRow(pdf, tr, "Appointment", view.AppointmentDate+" at "+view.AppointmentTime, false)
	if view.CompanyName != "" {
		addReceiptRow(pdf, tr, "Company", view.CompanyName, false)
		if view.EmployeeID != "" {
			addReceiptRow(pdf, tr, "Employee ID", view.EmployeeID, false)
		}
	}
	if view.Attendees > 0 {
		addReceiptRow(pdf, tr, "Attendees", strconv.Itoa(view.Attendees), false)
	}
	if view.InsuranceProvider != "" {
		addReceiptRow(pdf, tr, "Insurance", fmt.Sprintf("%s (%s)", view.InsuranceProvider, view.InsurancePolicy), false)
	}
	addReceiptRow(pdf, tr, "Payment Method", view.PaymentMethod, false)
	addReceiptRow(pdf, tr, "Transaction ID", view.TransactionID, false)

	pdf.CellFormat(0, 10, "Amount", "1", 1, "C", false, 0, "")
	addReceiptRow(pdf, tr, "Amount before VAT", view.PreVAT, false)
	addReceiptRow(pdf, tr, view.VATLabel, view.VAT, false)
	addReceiptRow(pdf, tr, "Total Paid", view.Total, true)

	pdf.SetY(pdf.GetY() + 10)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, tr("Verify transaction "+view.TransactionID+" at the front desk or via the QR code on the printed receipt."), "", "C", false)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf %s: %w", receipt.TransactionID, err)
	}
	return buf.Bytes(), nil
}

// addReceiptRow adds a label/value line to the PDF
func addReceiptRow(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, bold bool) {
	if bold {
		pdf.SetFont("Arial", "B", 11)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(55, 8, tr(label), "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 8, tr(value), "1", 1, "", false, 0, "")
}
