package repository

import (
	"context"
	"errors"

	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresClientStorage struct {
	db *gorm.DB
}

func NewPostgresClientStorage(db *gorm.DB) domainRepo.ClientStorage {
	return &postgresClientStorage{db: db}
}

func (s *postgresClientStorage) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	var stored entity.StoredValue
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND key = ?", clientID, key).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return stored.Value, true, nil
}

// Set upserts the value; concurrent writers resolve as last write wins
func (s *postgresClientStorage) Set(ctx context.Context, clientID, key, value string) error {
	stored := &entity.StoredValue{
		ClientID: clientID,
		Key:      key,
		Value:    value,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(stored).Error
}

// SetIfAbsent inserts the value unless the row exists, then reads back the winner
func (s *postgresClientStorage) SetIfAbsent(ctx context.Context, clientID, key, value string) (string, error) {
	stored := &entity.StoredValue{
		ClientID: clientID,
		Key:      key,
		Value:    value,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(stored).Error
	if err != nil {
		return "", err
	}

	current, found, err := s.Get(ctx, clientID, key)
	if err != nil {
		return "", err
	}
	if !found {
		return "", gorm.ErrRecordNotFound
	}
	return current, nil
}

func (s *postgresClientStorage) Delete(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("client_id = ? AND key IN ?", clientID, keys).
		Delete(&entity.StoredValue{}).Error
}
