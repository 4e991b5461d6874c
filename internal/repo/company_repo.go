// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Company
// model and its dependent lookups (invoice ids, industry labels).
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a company is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. A duplicate company code is therefore
//     a raw constraint error, not a classified one.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCompanies returns all companies with their code and name populated,
// in store-defined order. Description is intentionally not selected; list
// responses only expose the code/name pair.
func ListCompanies(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var out []domain.Company
	err := db.WithContext(ctx).
		Select("code", "name").
		Find(&out).Error
	return out, err
}

// GetCompany fetches a single company by its code. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetCompany(ctx context.Context, db *gorm.DB, code string) (*domain.Company, error) {
	var c domain.Company
	if err := db.WithContext(ctx).First(&c, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// InvoiceIDsForCompany returns the ids of all invoices referencing code.
// A company without invoices yields an empty slice, not an error.
func InvoiceIDsForCompany(ctx context.Context, db *gorm.DB, code string) ([]int64, error) {
	var ids []int64
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("comp_code = ?", code).
		Pluck("id", &ids).Error
	return ids, err
}

// IndustryLabelsForCompany returns the labels of all industries linked to
// code through the companies_industries relation. Absent links yield an
// empty slice (left-join semantics), not an error.
func IndustryLabelsForCompany(ctx context.Context, db *gorm.DB, code string) ([]string, error) {
	var labels []string
	err := db.WithContext(ctx).
		Model(&domain.CompanyIndustry{}).
		Joins("JOIN industries ON industries.code = companies_industries.ind_code").
		Where("companies_industries.comp_code = ?", code).
		Pluck("industries.industry", &labels).Error
	return labels, err
}

// CreateCompany inserts a new company row. The code is expected to be final
// (user-supplied or slug-derived); collisions surface as the raw constraint
// error from the store.
func CreateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	c := &domain.Company{
		Code:        code,
		Name:        name,
		Description: description,
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCompany sets name and description for the company identified by code.
// The code itself is immutable. If no rows are affected, it returns
// ErrNotFound. On success, the updated row is returned.
func UpdateCompany(ctx context.Context, db *gorm.DB, code, name, description string) (*domain.Company, error) {
	res := db.WithContext(ctx).
		Model(&domain.Company{}).
		Where("code = ?", code).
		Updates(map[string]any{"name": name, "description": description})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Company{Code: code, Name: name, Description: description}, nil
}

// DeleteCompany removes the company identified by code. Dependent invoices
// and industry links go with it, per the store's cascade rules. If no rows
// are affected, it returns ErrNotFound.
func DeleteCompany(ctx context.Context, db *gorm.DB, code string) error {
	res := db.WithContext(ctx).Delete(&domain.Company{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
