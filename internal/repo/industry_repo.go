// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Industry
// model and the company-industry association.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
)

// ListIndustries returns all industries in store-defined order.
func ListIndustries(ctx context.Context, db *gorm.DB) ([]domain.Industry, error) {
	var out []domain.Industry
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}

// CreateIndustry inserts a new industry row. The code is expected to be final
// (user-supplied or slug-derived); collisions surface as the raw constraint
// error from the store.
func CreateIndustry(ctx context.Context, db *gorm.DB, code, label string) (*domain.Industry, error) {
	ind := &domain.Industry{Code: code, Industry: label}
	if err := db.WithContext(ctx).Create(ind).Error; err != nil {
		return nil, err
	}
	return ind, nil
}

// LinkCompanyIndustry inserts a row into the companies_industries relation.
// When either referenced code does not exist, the store rejects the insert
// via its foreign key constraints and the raw DB error is returned; callers
// intentionally do not pre-check existence.
func LinkCompanyIndustry(ctx context.Context, db *gorm.DB, compCode, indCode string) (*domain.CompanyIndustry, error) {
	link := &domain.CompanyIndustry{CompCode: compCode, IndCode: indCode}
	if err := db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}

// UpdateIndustry sets the display label for the industry identified by code.
// If no rows are affected, it returns ErrNotFound. On success, the updated
// row is returned.
func UpdateIndustry(ctx context.Context, db *gorm.DB, code, label string) (*domain.Industry, error) {
	res := db.WithContext(ctx).
		Model(&domain.Industry{}).
		Where("code = ?", code).
		Update("industry", label)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &domain.Industry{Code: code, Industry: label}, nil
}

// DeleteIndustry removes the industry identified by code. If no rows are
// affected, it returns ErrNotFound.
func DeleteIndustry(ctx context.Context, db *gorm.DB, code string) error {
	res := db.WithContext(ctx).Delete(&domain.Industry{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
