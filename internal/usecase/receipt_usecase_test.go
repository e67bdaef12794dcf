package usecase

import (
	"bytes"
	"context"
	"testing"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedSession(t *testing.T, f *fixture) *dto.BookingSessionResponse {
	t.Helper()
	session := f.startAtPayment(t, validBookingRequest())
	confirmed, err := f.payment.SubmitPayment(f.ctx, session.ID, validCardPayment())
	require.NoError(t, err)
	return confirmed
}

func TestReceiptUsecase_RenderHTML(t *testing.T) {
	f := newFixture(t)
	session := confirmedSession(t, f)

	doc, err := f.receipts.RenderReceipt(f.ctx, session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)

	html := string(doc.Body)
	assert.Contains(t, html, "KES 2,500.00")
	assert.Contains(t, html, "KES 2,155.17")
	assert.Contains(t, html, "j**e@example.com")
	assert.Contains(t, html, session.Confirmation.TransactionID)
	assert.Contains(t, html, "window.print()")

	receiptID, found, err := f.storage.Get(f.ctx, "client-1", entity.StorageKeyReceiptID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, html, receiptID)
}

func TestReceiptUsecase_ReprintKeepsIdentifiers(t *testing.T) {
	f := newFixture(t)
	session := confirmedSession(t, f)

	_, err := f.receipts.RenderReceipt(f.ctx, session.ID, dto.ReceiptFormatHTML)
	require.NoError(t, err)
	first, _, err := f.storage.Get(f.ctx, "client-1", entity.StorageKeyInvoiceNumber)
	require.NoError(t, err)

	// a second booking by the same client reuses the cached numbers
	second := confirmedSession(t, f)
	doc, err := f.receipts.RenderReceipt(f.ctx, second.ID, dto.ReceiptFormatHTML)
	require.NoError(t, err)
	assert.Contains(t, string(doc.Body), first)

	require.NoError(t, f.receipts.ClearIdentifiers(f.ctx))
	_, found, err := f.storage.Get(f.ctx, "client-1", entity.StorageKeyInvoiceNumber)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReceiptUsecase_RenderPDF(t *testing.T) {
	f := newFixture(t)
	session := confirmedSession(t, f)

	doc, err := f.receipts.RenderReceipt(f.ctx, session.ID, dto.ReceiptFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Regexp(t, `^RCP-[0-9]{6}\.pdf$`, doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF")))
}

func TestReceiptUsecase_NotReady(t *testing.T) {
	f := newFixture(t)
	session := f.startAtPayment(t, validBookingRequest())

	_, err := f.receipts.RenderReceipt(f.ctx, session.ID, dto.ReceiptFormatHTML)
	assert.ErrorIs(t, err, ErrReceiptNotReady)

	_, err = f.receipts.RenderReceipt(f.ctx, session.ID, "docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReceiptUsecase_OtherClient(t *testing.T) {
	f := newFixture(t)
	session := confirmedSession(t, f)

	other := middleware.WithClientID(context.Background(), "client-2")
	_, err := f.receipts.RenderReceipt(other, session.ID, dto.ReceiptFormatHTML)
	assert.ErrorIs(t, err, ErrSessionNotOwned)

	assert.ErrorIs(t, f.receipts.ClearIdentifiers(context.Background()), ErrClientNotFound)
}
