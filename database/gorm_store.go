package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cleaning-marketplace-server/models"
)

// GormStore keeps each collection in its own table. Save upserts every row
// inside one transaction; rows are never deleted because no entity is.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the schema and returns a store on db
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Booking{}, &models.Message{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context) (*models.Document, error) {
	doc := models.NewDocument()
	db := s.db.WithContext(ctx)

	if err := db.Order("id ASC").Find(&doc.Users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if err := db.Order("id ASC").Find(&doc.Bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	if err := db.Order("id ASC").Find(&doc.Messages).Error; err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	doc.Normalize()
	return doc, nil
}

func (s *GormStore) Save(ctx context.Context, doc *models.Document) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(doc.Users) > 0 {
			if err := upsert(tx).Create(&doc.Users).Error; err != nil {
				return fmt.Errorf("failed to save users: %w", err)
			}
		}
		if len(doc.Bookings) > 0 {
			if err := upsert(tx).Create(&doc.Bookings).Error; err != nil {
				return fmt.Errorf("failed to save bookings: %w", err)
			}
		}
		if len(doc.Messages) > 0 {
			if err := upsert(tx).Create(&doc.Messages).Error; err != nil {
				return fmt.Errorf("failed to save messages: %w", err)
			}
		}
		return nil
	})
}

func upsert(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.OnConflict{UpdateAll: true})
}
