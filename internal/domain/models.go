// Package domain defines the persistence models for companies, invoices,
// industries, and the company-industry association. These types are mapped
// with GORM and form the core data layer of the invoicing API.
package domain

import (
	"time"
)

// Company represents a billable organization. Companies are identified by a
// short, URL-safe code which is either supplied by the client or derived from
// the display name at creation time.
//
// Fields:
//   - Code: stable slug primary key (e.g. "acme-corp"); immutable after create.
//   - Name: display name.
//   - Description: optional free-text description.
type Company struct {
	Code        string `json:"code"        gorm:"type:varchar(64);primaryKey"`
	Name        string `json:"name"        gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the database table name for Company.
func (Company) TableName() string { return "companies" }

// Invoice represents a single bill issued to a company.
//
// Fields:
//   - ID: auto-increment integer primary key.
//   - CompCode: foreign key to the owning company (indexed).
//   - Amt: invoice amount.
//   - Paid: whether the invoice has been settled.
//   - AddDate: date the invoice was created (set by the storage layer).
//   - PaidDate: settlement date; NULL exactly when Paid is false. The
//     transition is enforced in the service layer, not by the schema.
//   - Company: FK association; invoices are cascade-deleted with their company.
type Invoice struct {
	ID       int64      `json:"id"        gorm:"primaryKey;autoIncrement"`
	CompCode string     `json:"comp_code" gorm:"type:varchar(64);not null;index:idx_comp_invoices"`
	Amt      float64    `json:"amt"       gorm:"not null"`
	Paid     bool       `json:"paid"      gorm:"not null;default:false"`
	AddDate  time.Time  `json:"add_date"  gorm:"not null"`
	PaidDate *time.Time `json:"paid_date"`

	// Company is the billed organization. Invoices are removed together
	// with their company.
	Company Company `json:"-" gorm:"foreignKey:CompCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Invoice.
func (Invoice) TableName() string { return "invoices" }

// Industry represents a market sector a company can be tagged with.
//
// Fields:
//   - Code: slug primary key, user-supplied or derived from the label.
//   - Industry: human-readable sector label (e.g. "Accounting").
type Industry struct {
	Code     string `json:"code"     gorm:"type:varchar(64);primaryKey"`
	Industry string `json:"industry" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Industry.
func (Industry) TableName() string { return "industries" }

// CompanyIndustry is the many-to-many association between companies and
// industries. Rows are created only through the explicit linking endpoint;
// both referenced rows must already exist, otherwise the insert is rejected
// by the store's foreign key constraints.
type CompanyIndustry struct {
	CompCode string `json:"comp_code" gorm:"type:varchar(64);primaryKey"`
	IndCode  string `json:"ind_code"  gorm:"type:varchar(64);primaryKey"`

	Company  Company  `json:"-" gorm:"foreignKey:CompCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Industry Industry `json:"-" gorm:"foreignKey:IndCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for CompanyIndustry.
func (CompanyIndustry) TableName() string { return "companies_industries" }
