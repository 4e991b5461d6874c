package repo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestListInvoices_EmptyAndPopulated(t *testing.T) {
	db := newRepoDB(t)

	invs, err := ListInvoices(context.Background(), db)
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(invs) != 0 {
		t.Fatalf("expected empty list, got %d", len(invs))
	}

	seedCompany(t, db, "acme", "Acme", "")
	if _, err := CreateInvoice(context.Background(), db, "acme", 100); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if _, err := CreateInvoice(context.Background(), db, "acme", 250.50); err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	invs, err = ListInvoices(context.Background(), db)
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(invs) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(invs))
	}
	for _, inv := range invs {
		if inv.ID == 0 || inv.CompCode != "acme" {
			t.Fatalf("list row missing id/comp_code: %+v", inv)
		}
	}
}

func TestGetInvoice_FoundAndNotFound(t *testing.T) {
	db := newRepoDB(t)
	seedCompany(t, db, "acme", "Acme", "")

	if _, err := GetInvoice(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	created, err := CreateInvoice(context.Background(), db, "acme", 100)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	got, err := GetInvoice(context.Background(), db, created.ID)
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if got.ID != created.ID || got.CompCode != "acme" || got.Amt != 100 {
		t.Fatalf("unexpected invoice: %+v", got)
	}
}

func TestCreateInvoice_Defaults(t *testing.T) {
	db := newRepoDB(t)
	seedCompany(t, db, "acme", "Acme", "")

	before := time.Now().UTC().Add(-time.Second)
	inv, err := CreateInvoice(context.Background(), db, "acme", 42.5)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if inv.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if inv.Paid {
		t.Fatalf("new invoice must start unpaid")
	}
	if inv.PaidDate != nil {
		t.Fatalf("new invoice must have nil paid date, got %v", inv.PaidDate)
	}
	if inv.AddDate.Before(before) || inv.AddDate.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("add date not stamped near now: %v", inv.AddDate)
	}
}

func TestCreateInvoice_UnknownCompanyRejected(t *testing.T) {
	db := newRepoDB(t)

	_, err := CreateInvoice(context.Background(), db, "ghost", 10)
	if err == nil {
		t.Fatalf("expected FK violation for unknown company")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("FK violation must not be classified as not-found")
	}
}

func TestUpdateInvoice_PaidDateRoundTrip(t *testing.T) {
	db := newRepoDB(t)
	seedCompany(t, db, "acme", "Acme", "")
	inv, err := CreateInvoice(context.Background(), db, "acme", 100)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	now := time.Now().UTC()
	if err := UpdateInvoice(context.Background(), db, inv.ID, 150, true, &now); err != nil {
		t.Fatalf("UpdateInvoice pay: %v", err)
	}
	got, err := GetInvoice(context.Background(), db, inv.ID)
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if got.Amt != 150 || !got.Paid || got.PaidDate == nil {
		t.Fatalf("pay not persisted: %+v", got)
	}

	// Clearing the paid flag writes NULL back.
	if err := UpdateInvoice(context.Background(), db, inv.ID, 150, false, nil); err != nil {
		t.Fatalf("UpdateInvoice unpay: %v", err)
	}
	got, err = GetInvoice(context.Background(), db, inv.ID)
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if got.Paid || got.PaidDate != nil {
		t.Fatalf("unpay not persisted: %+v", got)
	}
}

func TestUpdateInvoice_NotFound(t *testing.T) {
	db := newRepoDB(t)

	if err := UpdateInvoice(context.Background(), db, 999, 10, false, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteInvoice_SuccessAndNotFound(t *testing.T) {
	db := newRepoDB(t)
	seedCompany(t, db, "acme", "Acme", "")
	inv, err := CreateInvoice(context.Background(), db, "acme", 100)
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if err := DeleteInvoice(context.Background(), db, inv.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if err := DeleteInvoice(context.Background(), db, inv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
