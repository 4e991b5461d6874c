package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-invoice-backend/internal/domain"
)

func seedInvoiceCompany(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Create(&domain.Company{Code: "acme", Name: "Acme"}).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
}

func TestInvoiceService_CreateDefaults(t *testing.T) {
	db := newServiceDB(t)
	seedInvoiceCompany(t, db)
	svc := NewInvoiceService(db)

	inv, err := svc.Create(context.Background(), "acme", 100)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if inv.Paid || inv.PaidDate != nil {
		t.Fatalf("new invoice must be unpaid with nil paid date: %+v", inv)
	}
	if inv.AddDate.IsZero() {
		t.Fatalf("add date must be stamped")
	}
}

func TestInvoiceService_CreateUnknownCompany(t *testing.T) {
	svc := NewInvoiceService(newServiceDB(t))

	_, err := svc.Create(context.Background(), "ghost", 100)
	if err == nil {
		t.Fatalf("expected FK violation for unknown company")
	}
	// Unknown company is a storage failure by contract, not a not-found.
	if errors.Is(err, ErrInvoiceNotFound) || errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("create failure must not map to not-found: %v", err)
	}
}

func TestInvoiceService_GetAggregate(t *testing.T) {
	db := newServiceDB(t)
	seedInvoiceCompany(t, db)
	svc := NewInvoiceService(db)

	created, err := svc.Create(context.Background(), "acme", 250.50)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.ID != created.ID || detail.Amt != 250.50 || detail.Paid {
		t.Fatalf("unexpected detail: %+v", detail)
	}
	if detail.Company == nil || detail.Company.Code != "acme" || detail.Company.Name != "Acme" {
		t.Fatalf("company not nested: %+v", detail.Company)
	}
}

func TestInvoiceService_GetNotFound(t *testing.T) {
	svc := NewInvoiceService(newServiceDB(t))

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestInvoiceService_UpdatePaidTransitions(t *testing.T) {
	db := newServiceDB(t)
	seedInvoiceCompany(t, db)
	svc := NewInvoiceService(db)

	created, err := svc.Create(context.Background(), "acme", 100)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Amount-only update on an unpaid invoice keeps paid_date null.
	inv, err := svc.Update(context.Background(), created.ID, 120, false)
	if err != nil {
		t.Fatalf("Update amt: %v", err)
	}
	if inv.Amt != 120 || inv.Paid || inv.PaidDate != nil {
		t.Fatalf("amt-only update must stay unpaid: %+v", inv)
	}

	// Unpaid -> paid stamps paid_date at roughly now.
	before := time.Now().UTC().Add(-time.Second)
	inv, err = svc.Update(context.Background(), created.ID, 120, true)
	if err != nil {
		t.Fatalf("Update pay: %v", err)
	}
	if !inv.Paid || inv.PaidDate == nil {
		t.Fatalf("pay must set paid_date: %+v", inv)
	}
	if inv.PaidDate.Before(before) || inv.PaidDate.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("paid_date not stamped near now: %v", inv.PaidDate)
	}
	firstPaid := *inv.PaidDate

	// Paid -> paid keeps the original paid_date.
	inv, err = svc.Update(context.Background(), created.ID, 130, true)
	if err != nil {
		t.Fatalf("Update repay: %v", err)
	}
	if inv.PaidDate == nil || !inv.PaidDate.Equal(firstPaid) {
		t.Fatalf("paid -> paid must keep paid_date: got %v, want %v", inv.PaidDate, firstPaid)
	}

	// Paid -> unpaid clears paid_date.
	inv, err = svc.Update(context.Background(), created.ID, 130, false)
	if err != nil {
		t.Fatalf("Update unpay: %v", err)
	}
	if inv.Paid || inv.PaidDate != nil {
		t.Fatalf("unpay must clear paid_date: %+v", inv)
	}

	// Persisted state matches the returned row.
	detail, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Paid || detail.PaidDate != nil || detail.Amt != 130 {
		t.Fatalf("persisted state drifted: %+v", detail)
	}
}

func TestInvoiceService_UpdateNotFound(t *testing.T) {
	svc := NewInvoiceService(newServiceDB(t))

	if _, err := svc.Update(context.Background(), 999, 10, true); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestInvoiceService_DeleteAndNotFound(t *testing.T) {
	db := newServiceDB(t)
	seedInvoiceCompany(t, db)
	svc := NewInvoiceService(db)

	created, err := svc.Create(context.Background(), "acme", 100)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound on second delete, got %v", err)
	}
}

func TestInvoiceService_List(t *testing.T) {
	db := newServiceDB(t)
	seedInvoiceCompany(t, db)
	svc := NewInvoiceService(db)

	if _, err := svc.Create(context.Background(), "acme", 100); err != nil {
		t.Fatalf("Create: %v", err)
	}
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].CompCode != "acme" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
