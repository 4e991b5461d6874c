// Package services – InvoiceService
//
// This file implements the InvoiceService, which manages invoice lifecycle:
// listing, aggregate fetch (an invoice with its owning company nested),
// creation against an existing company, the paid/paid_date transition, and
// delete. The paid-date invariant lives here: paid_date is non-null exactly
// when paid is true, and flipping paid drives the date, never the client.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
	"github.com/tbourn/go-invoice-backend/internal/repo"
)

// InvoiceDetail is the aggregate view of an invoice with its owning company
// nested under "company".
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  *domain.Company `json:"company"`
}

// InvoiceService provides invoice-level operations. It owns no state beyond
// the injected GORM handle and is safe for concurrent use.
type InvoiceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewInvoiceService constructs an InvoiceService bound to db.
func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// List returns all invoices as id/comp_code rows in store-defined order.
func (s *InvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	return repo.ListInvoices(ctx, s.DB)
}

// Get fetches an invoice aggregate by id. The invoice row and its owning
// company are read inside a single transaction so a concurrent company
// delete cannot produce a half-assembled response. Returns ErrInvoiceNotFound
// when no invoice matches id.
func (s *InvoiceService) Get(ctx context.Context, id int64) (*InvoiceDetail, error) {
	var detail *InvoiceDetail

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := repo.GetInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		comp, err := repo.GetCompany(ctx, tx, inv.CompCode)
		if err != nil {
			return err
		}
		detail = &InvoiceDetail{
			ID:       inv.ID,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate,
			PaidDate: inv.PaidDate,
			Company:  comp,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return detail, nil
}

// Create inserts a new unpaid invoice for compCode with the given amount.
// add_date defaults to now and paid_date starts null. A compCode that does
// not reference an existing company is rejected by the store and surfaces
// as the raw storage error.
func (s *InvoiceService) Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error) {
	return repo.CreateInvoice(ctx, s.DB, compCode, amt)
}

// Update recomputes the amount and applies the paid-date transition for the
// invoice identified by id:
//
//   - unpaid → paid:   paid_date is set to the current UTC time
//   - paid   → paid:   the existing paid_date is kept
//   - any    → unpaid: paid_date is cleared to null
//
// The read-modify-write runs inside a transaction. Returns ErrInvoiceNotFound
// when no invoice matches id.
func (s *InvoiceService) Update(ctx context.Context, id int64, amt float64, paid bool) (*domain.Invoice, error) {
	var updated *domain.Invoice

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := repo.GetInvoice(ctx, tx, id)
		if err != nil {
			return err
		}

		var paidDate *time.Time
		switch {
		case paid && cur.Paid:
			paidDate = cur.PaidDate
		case paid:
			now := time.Now().UTC()
			paidDate = &now
		default:
			paidDate = nil
		}

		if err := repo.UpdateInvoice(ctx, tx, id, amt, paid, paidDate); err != nil {
			return err
		}
		updated = &domain.Invoice{
			ID:       cur.ID,
			CompCode: cur.CompCode,
			Amt:      amt,
			Paid:     paid,
			AddDate:  cur.AddDate,
			PaidDate: paidDate,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes an invoice by id. Returns ErrInvoiceNotFound when no row
// matched.
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	if err := repo.DeleteInvoice(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}
	return nil
}
