// Package services – IndustryService
//
// This file implements the IndustryService: listing, creation with slug
// fallback when the client omits a code, linking an industry to a company,
// label updates, and delete. The legacy system skipped existence checks on
// industry update/delete; this implementation applies the same
// not-found contract used for companies and invoices.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
	"github.com/tbourn/go-invoice-backend/internal/repo"
	"github.com/tbourn/go-invoice-backend/internal/utils"
)

// IndustryService provides industry-level operations. It owns no state beyond
// the injected GORM handle and is safe for concurrent use.
type IndustryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewIndustryService constructs an IndustryService bound to db.
func NewIndustryService(db *gorm.DB) *IndustryService {
	return &IndustryService{DB: db}
}

// List returns all industries in store-defined order.
func (s *IndustryService) List(ctx context.Context) ([]domain.Industry, error) {
	return repo.ListIndustries(ctx, s.DB)
}

// Create inserts a new industry. When code is blank it is derived from the
// label via the slug rules; an explicit code is taken as-is. A label that
// slugs to nothing is rejected with ErrEmptyCode. Code collisions surface as
// the raw storage error.
func (s *IndustryService) Create(ctx context.Context, code, label string) (*domain.Industry, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = utils.Slugify(label)
	}
	if code == "" {
		return nil, ErrEmptyCode
	}
	return repo.CreateIndustry(ctx, s.DB, code, label)
}

// Link associates an industry with a company in the join relation. No
// existence pre-check is performed: when either code is missing the store's
// referential constraint rejects the insert and the raw error is returned,
// which the handler reports as a generic failure rather than a 404. That
// asymmetry with the lookup endpoints is deliberate.
func (s *IndustryService) Link(ctx context.Context, compCode, indCode string) (*domain.CompanyIndustry, error) {
	return repo.LinkCompanyIndustry(ctx, s.DB, compCode, indCode)
}

// Update sets the display label for an existing industry. Returns
// ErrIndustryNotFound when no row matched.
func (s *IndustryService) Update(ctx context.Context, code, label string) (*domain.Industry, error) {
	ind, err := repo.UpdateIndustry(ctx, s.DB, code, label)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}
	return ind, nil
}

// Delete removes an industry by code, cascading to its company links.
// Returns ErrIndustryNotFound when no row matched.
func (s *IndustryService) Delete(ctx context.Context, code string) error {
	if err := repo.DeleteIndustry(ctx, s.DB, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIndustryNotFound
		}
		return err
	}
	return nil
}
