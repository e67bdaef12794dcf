package usecase

import (
	"context"
	"errors"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"
	"medicare-plus/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrReceiptNotReady   = errors.New("receipt is only available after payment is confirmed")
	ErrUnsupportedFormat = errors.New("unsupported receipt format")
)

type ReceiptUsecase interface {
	RenderReceipt(ctx context.Context, id uuid.UUID, format string) (*dto.ReceiptDocument, error)
	ClearIdentifiers(ctx context.Context) error
}

type receiptUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.BookingSessionRepository
	identifiers *service.ReceiptIdentifierService
	renderer    *service.ReceiptRenderer
}

func NewReceiptUsecase(
	log *logrus.Logger,
	sessionRepo repository.BookingSessionRepository,
	identifiers *service.ReceiptIdentifierService,
	renderer *service.ReceiptRenderer,
) ReceiptUsecase {
	return &receiptUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		identifiers: identifiers,
		renderer:    renderer,
	}
}

// RenderReceipt renders the receipt of a confirmed session as a printable
// HTML page or as a PDF. The invoice, control unit and receipt numbers come
// from the client's storage so reprints carry the same values.
func (u *receiptUsecase) RenderReceipt(ctx context.Context, id uuid.UUID, format string) (*dto.ReceiptDocument, error) {
	if format == "" {
		format = dto.ReceiptFormatHTML
	}
	if format != dto.ReceiptFormatHTML && format != dto.ReceiptFormatPDF {
		return nil, ErrUnsupportedFormat
	}

	session, err := findOwnedSession(ctx, u.sessionRepo, u.log, id)
	if err != nil {
		return nil, err
	}
	if session.Step != entity.BookingStepConfirmation || session.Receipt == nil {
		return nil, ErrReceiptNotReady
	}

	ids, err := u.identifiers.Resolve(ctx, session.ClientID)
	if err != nil {
		return nil, err
	}

	if format == dto.ReceiptFormatPDF {
		body, err := u.renderer.RenderPDF(*session.Receipt, *ids)
		if err != nil {
			u.log.Warnf("Failed to render PDF receipt for session %s: %+v", session.ID, err)
			return nil, err
		}
		return &dto.ReceiptDocument{
			ContentType: "application/pdf",
			Filename:    ids.ReceiptID + ".pdf",
			Body:        body,
		}, nil
	}

	body, err := u.renderer.RenderHTML(*session.Receipt, *ids)
	if err != nil {
		u.log.Warnf("Failed to render receipt for session %s: %+v", session.ID, err)
		return nil, err
	}
	return &dto.ReceiptDocument{
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}

// ClearIdentifiers drops the cached receipt numbers of the calling client
func (u *receiptUsecase) ClearIdentifiers(ctx context.Context) error {
	clientID, ok := middleware.GetClientIDFromContext(ctx)
	if !ok {
		return ErrClientNotFound
	}
	return u.identifiers.Clear(ctx, clientID)
}
