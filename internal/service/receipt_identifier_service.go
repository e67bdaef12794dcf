package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ReceiptIdentifierService hands out the invoice number, control unit number
// and receipt id of a client. Each is generated on first use and then read
// back from the client's storage, so reprints show the same values.
type ReceiptIdentifierService struct {
	storage repository.ClientStorage
	log     *logrus.Logger
}

type identifierSpec struct {
	key      string
	generate func() string
}

var identifierSpecs = []identifierSpec{
	{key: entity.StorageKeyInvoiceNumber, generate: func() string { return "INV-" + RandomDigits(8) }},
	{key: entity.StorageKeyControlUnitNo, generate: func() string { return "KRACU" + RandomDigits(10) }},
	{key: entity.StorageKeyReceiptID, generate: func() string { return "RCP-" + RandomDigits(6) }},
}

func NewReceiptIdentifierService(storage repository.ClientStorage, log *logrus.Logger) *ReceiptIdentifierService {
	return &ReceiptIdentifierService{
		storage: storage,
		log:     log,
	}
}

// Resolve reads through the client storage, generating missing identifiers
func (s *ReceiptIdentifierService) Resolve(ctx context.Context, clientID string) (*entity.ReceiptIdentifiers, error) {
	values := make(map[string]string, len(identifierSpecs))

	for _, spec := range identifierSpecs {
		value, found, err := s.storage.Get(ctx, clientID, spec.key)
		if err != nil {
			s.log.Warnf("Failed to read %s for client %s: %+v", spec.key, clientID, err)
			return nil, err
		}
		if !found {
			generated := spec.generate()
			value, err = s.storage.SetIfAbsent(ctx, clientID, spec.key, generated)
			if err != nil {
				s.log.Warnf("Failed to store %s for client %s: %+v", spec.key, clientID, err)
				return nil, err
			}
			if value == generated {
				s.log.Debugf("Generated %s=%s for client %s", spec.key, value, clientID)
			}
		}
		values[spec.key] = value
	}

	return &entity.ReceiptIdentifiers{
		InvoiceNumber: values[entity.StorageKeyInvoiceNumber],
		ControlUnitNo: values[entity.StorageKeyControlUnitNo],
		ReceiptID:     values[entity.StorageKeyReceiptID],
	}, nil
}

// Clear forgets the identifiers so the next receipt gets new ones
func (s *ReceiptIdentifierService) Clear(ctx context.Context, clientID string) error {
	keys := make([]string, len(identifierSpecs))
	for i, spec := range identifierSpecs {
		keys[i] = spec.key
	}
	if err := s.storage.Delete(ctx, clientID, keys...); err != nil {
		s.log.Warnf("Failed to clear receipt identifiers for client %s: %+v", clientID, err)
		return err
	}
	return nil
}

// RandomDigits returns n random decimal digits
func RandomDigits(n int) string {
	digits := make([]byte, n)
	ten := big.NewInt(10)
	for i := range digits {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			panic(fmt.Sprintf("crypto/rand failed: %v", err))
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits)
}
