// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Invoice
// model.
//
// Error semantics follow the package convention: missing rows map to
// ErrNotFound, everything else (including a comp_code that references no
// company, which the store rejects via its foreign key constraint) is
// propagated as the raw gorm error.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
)

// ListInvoices returns all invoices with id and comp_code populated, in
// store-defined order.
func ListInvoices(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var out []domain.Invoice
	err := db.WithContext(ctx).
		Select("id", "comp_code").
		Find(&out).Error
	return out, err
}

// GetInvoice fetches a single invoice by id, or ErrNotFound if missing.
func GetInvoice(ctx context.Context, db *gorm.DB, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	if err := db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice inserts a new unpaid invoice for compCode. AddDate is set to
// the current UTC time and PaidDate starts NULL. A compCode that references
// no existing company is rejected by the store's foreign key constraint and
// surfaces as the raw DB error.
func CreateInvoice(ctx context.Context, db *gorm.DB, compCode string, amt float64) (*domain.Invoice, error) {
	inv := &domain.Invoice{
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Now().UTC(),
		PaidDate: nil,
	}
	if err := db.WithContext(ctx).Create(inv).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvoice sets amt, paid, and paid_date on the invoice identified by id.
// paidDate may be nil, which writes NULL (the unpaid state). If no rows are
// affected, it returns ErrNotFound.
func UpdateInvoice(ctx context.Context, db *gorm.DB, id int64, amt float64, paid bool, paidDate *time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{"amt": amt, "paid": paid, "paid_date": paidDate})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteInvoice removes the invoice identified by id. If no rows are
// affected, it returns ErrNotFound.
func DeleteInvoice(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
