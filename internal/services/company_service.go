// Package services – CompanyService
//
// This file implements the CompanyService, which manages the company
// lifecycle: listing, aggregate fetch (a company together with its invoice
// ids and linked industry labels), slug-derived creation, update, and delete.
// Service-level errors (e.g. ErrCompanyNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
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

// InvoiceRef is an invoice reference inside a company aggregate; only the id
// is exposed.
type InvoiceRef struct {
	ID int64 `json:"id"`
}

// CompanyDetail is the aggregate view of a company: its own fields plus the
// ids of invoices billed to it and the labels of industries it is linked to.
type CompanyDetail struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Invoices    []InvoiceRef `json:"invoices"`
	Industries  []string     `json:"industries"`
}

// CompanyService provides company-level operations. It owns no state beyond
// the injected GORM handle and is safe for concurrent use.
type CompanyService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewCompanyService constructs a CompanyService bound to db.
func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// List returns all companies as code/name rows in store-defined order.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return repo.ListCompanies(ctx, s.DB)
}

// Get fetches a company aggregate by code. The company row, its invoice ids,
// and its industry labels are read inside a single transaction so a
// concurrent delete cannot produce a half-assembled response. Returns
// ErrCompanyNotFound when no company matches code.
func (s *CompanyService) Get(ctx context.Context, code string) (*CompanyDetail, error) {
	var detail *CompanyDetail

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := repo.GetCompany(ctx, tx, code)
		if err != nil {
			return err
		}
		ids, err := repo.InvoiceIDsForCompany(ctx, tx, code)
		if err != nil {
			return err
		}
		labels, err := repo.IndustryLabelsForCompany(ctx, tx, code)
		if err != nil {
			return err
		}

		refs := make([]InvoiceRef, 0, len(ids))
		for _, id := range ids {
			refs = append(refs, InvoiceRef{ID: id})
		}
		if labels == nil {
			labels = []string{}
		}
		detail = &CompanyDetail{
			Code:        c.Code,
			Name:        c.Name,
			Description: c.Description,
			Invoices:    refs,
			Industries:  labels,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return detail, nil
}

// Create inserts a new company. The code is derived from name via the slug
// rules (lowercase, punctuation stripped); a name that slugs to nothing is
// rejected with ErrEmptyCode since the row would be unreachable by code. A
// collision with an existing code surfaces as the raw storage error, by the
// same contract the store applies to every other constraint violation.
func (s *CompanyService) Create(ctx context.Context, name, description string) (*domain.Company, error) {
	code := utils.Slugify(name)
	if code == "" {
		return nil, ErrEmptyCode
	}
	return repo.CreateCompany(ctx, s.DB, code, strings.TrimSpace(name), description)
}

// Update sets name and description for an existing company; the code is
// immutable. Returns ErrCompanyNotFound when no row matched.
func (s *CompanyService) Update(ctx context.Context, code, name, description string) (*domain.Company, error) {
	c, err := repo.UpdateCompany(ctx, s.DB, code, name, description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a company by code, cascading to its invoices and industry
// links per the store's referential rules. Returns ErrCompanyNotFound when
// no row matched.
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	if err := repo.DeleteCompany(ctx, s.DB, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}
