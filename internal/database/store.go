package database

import (
	"context"
	"errors"

	"go-invoice-maker/internal/invoice"
	"go-invoice-maker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the keyed invoice store. Implementations report a missing invoice as
// invoice.ErrNotFound and an existing number on Create as invoice.ErrDuplicateIdentifier.
type Store interface {
	Get(ctx context.Context, number string) (*models.Invoice, error)
	// Create inserts inv only if its number is free, in a single step.
	Create(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, number string) error
	List(ctx context.Context) ([]models.Invoice, error)
	Close() error
}

// GormStore keeps invoices and their items in two SQL tables.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func (s *GormStore) Get(ctx context.Context, number string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&inv, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invoice.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *GormStore) Create(ctx context.Context, inv *models.Invoice) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ON CONFLICT DO NOTHING: a taken number inserts zero rows instead of overwriting.
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Omit(clause.Associations).
			Create(inv)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return invoice.ErrDuplicateIdentifier
		}

		if len(inv.Items) == 0 {
			return nil
		}
		for i := range inv.Items {
			inv.Items[i].ID = 0
			inv.Items[i].InvoiceNumber = inv.Number
			inv.Items[i].Position = i
		}
		return tx.Create(&inv.Items).Error
	})
}

func (s *GormStore) Delete(ctx context.Context, number string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_number = ?", number).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Invoice{}, "number = ?", number)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return invoice.ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at, number").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
