package dto

// Receipt formats
const (
	ReceiptFormatHTML = "html"
	ReceiptFormatPDF  = "pdf"
)

type ReceiptDocument struct {
	ContentType string
	Filename    string
	Body        []byte
}
