package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	// FK enforcement goes in the DSN so every pooled connection gets it.
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	if (Company{}).TableName() != "companies" {
		t.Fatalf("Company.TableName() = %q; want %q", (Company{}).TableName(), "companies")
	}
	if (Invoice{}).TableName() != "invoices" {
		t.Fatalf("Invoice.TableName() = %q; want %q", (Invoice{}).TableName(), "invoices")
	}
	if (Industry{}).TableName() != "industries" {
		t.Fatalf("Industry.TableName() = %q; want %q", (Industry{}).TableName(), "industries")
	}
	if (CompanyIndustry{}).TableName() != "companies_industries" {
		t.Fatalf("CompanyIndustry.TableName() = %q; want %q", (CompanyIndustry{}).TableName(), "companies_industries")
	}
}

func TestInvoiceJSON_PaidDateNullWhenUnpaid(t *testing.T) {
	inv := Invoice{
		ID:       7,
		CompCode: "acme-corp",
		Amt:      100,
		Paid:     false,
		AddDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PaidDate: nil,
	}
	b, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"paid_date":null`) {
		t.Fatalf("unpaid invoice must serialize paid_date as null: %s", s)
	}
	if !strings.Contains(s, `"comp_code":"acme-corp"`) {
		t.Fatalf("comp_code field name mismatch: %s", s)
	}
	if strings.Contains(s, `"Company"`) || strings.Contains(s, `"company"`) {
		t.Fatalf("FK association must not leak into JSON: %s", s)
	}
}

func TestMigrations_Cascades(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&Company{}, &Invoice{}, &Industry{}, &CompanyIndustry{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()
	for _, tbl := range []any{&Company{}, &Invoice{}, &Industry{}, &CompanyIndustry{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}

	// Seed a company with an invoice and an industry link.
	if err := db.Create(&Company{Code: "c1", Name: "C One"}).Error; err != nil {
		t.Fatalf("insert company: %v", err)
	}
	if err := db.Create(&Invoice{CompCode: "c1", Amt: 50, AddDate: time.Now().UTC()}).Error; err != nil {
		t.Fatalf("insert invoice: %v", err)
	}
	if err := db.Create(&Industry{Code: "i1", Industry: "Testing"}).Error; err != nil {
		t.Fatalf("insert industry: %v", err)
	}
	if err := db.Create(&CompanyIndustry{CompCode: "c1", IndCode: "i1"}).Error; err != nil {
		t.Fatalf("insert link: %v", err)
	}

	// Deleting the company must cascade to invoices and links.
	if err := db.Delete(&Company{}, "code = ?", "c1").Error; err != nil {
		t.Fatalf("delete company: %v", err)
	}
	var invCount, linkCount int64
	if err := db.Model(&Invoice{}).Count(&invCount).Error; err != nil {
		t.Fatalf("count invoices: %v", err)
	}
	if err := db.Model(&CompanyIndustry{}).Count(&linkCount).Error; err != nil {
		t.Fatalf("count links: %v", err)
	}
	if invCount != 0 || linkCount != 0 {
		t.Fatalf("cascade failed: invoices=%d links=%d", invCount, linkCount)
	}

	// The industry itself survives the company delete.
	var indCount int64
	if err := db.Model(&Industry{}).Count(&indCount).Error; err != nil {
		t.Fatalf("count industries: %v", err)
	}
	if indCount != 1 {
		t.Fatalf("industry must survive company delete, got %d rows", indCount)
	}
}

func TestMigrations_LinkRejectsUnknownCodes(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(&Company{}, &Invoice{}, &Industry{}, &CompanyIndustry{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	// Neither side exists: the FK constraint must reject the row.
	if err := db.Create(&CompanyIndustry{CompCode: "ghost", IndCode: "phantom"}).Error; err == nil {
		t.Fatalf("expected FK violation for unknown codes")
	}
}
