// Company HTTP handlers.
//
// This file exposes REST endpoints for company resources:
//   - GET    /companies        (list)
//   - GET    /companies/{code} (fetch aggregate: company + invoice ids + industries)
//   - POST   /companies        (create, code derived from name)
//   - PUT    /companies/{code} (update name/description)
//   - DELETE /companies/{code} (delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. It also hosts the service
// contracts and the Handlers wiring shared by all resource endpoints.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-invoice-backend/internal/domain"
	"github.com/tbourn/go-invoice-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// CompanyService defines company lifecycle operations consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must honor
// the provided context for cancellation and timeouts.
type CompanyService interface {
	// List returns all companies as code/name rows.
	List(ctx context.Context) ([]domain.Company, error)
	// Get returns a company aggregate (invoice ids + industry labels).
	Get(ctx context.Context, code string) (*services.CompanyDetail, error)
	// Create inserts a company with a slug-derived code.
	Create(ctx context.Context, name, description string) (*domain.Company, error)
	// Update sets name/description for an existing code.
	Update(ctx context.Context, code, name, description string) (*domain.Company, error)
	// Delete removes a company by code.
	Delete(ctx context.Context, code string) error
}

// InvoiceService defines invoice lifecycle operations consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must honor
// the provided context for cancellation and timeouts.
type InvoiceService interface {
	// List returns all invoices as id/comp_code rows.
	List(ctx context.Context) ([]domain.Invoice, error)
	// Get returns an invoice with its owning company nested.
	Get(ctx context.Context, id int64) (*services.InvoiceDetail, error)
	// Create inserts a new unpaid invoice for a company.
	Create(ctx context.Context, compCode string, amt float64) (*domain.Invoice, error)
	// Update recomputes amt and applies the paid/paid_date transition.
	Update(ctx context.Context, id int64, amt float64, paid bool) (*domain.Invoice, error)
	// Delete removes an invoice by id.
	Delete(ctx context.Context, id int64) error
}

// IndustryService defines industry operations consumed by HTTP handlers.
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type IndustryService interface {
	// List returns all industries.
	List(ctx context.Context) ([]domain.Industry, error)
	// Create inserts an industry, deriving the code when omitted.
	Create(ctx context.Context, code, label string) (*domain.Industry, error)
	// Link associates an industry with a company.
	Link(ctx context.Context, compCode, indCode string) (*domain.CompanyIndustry, error)
	// Update sets the display label for an existing code.
	Update(ctx context.Context, code, label string) (*domain.Industry, error)
	// Delete removes an industry by code.
	Delete(ctx context.Context, code string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for companies, invoices, and industries.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	compSvc CompanyService
	invSvc  InvoiceService
	indSvc  IndustryService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(compSvc CompanyService, invSvc InvoiceService, indSvc IndustryService) *Handlers {
	return &Handlers{compSvc: compSvc, invSvc: invSvc, indSvc: indSvc}
}

//
// DTOs
//

// CompanySummary is the code/name pair exposed by the list endpoint.
type CompanySummary struct {
	Code string `json:"code" example:"acme-corp"`
	Name string `json:"name" example:"Acme Corp"`
}

// ListCompaniesResponse wraps all companies under the "companies" key.
type ListCompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyDetailResponse wraps a company aggregate under the "company" key.
type CompanyDetailResponse struct {
	Company *services.CompanyDetail `json:"company"`
}

// CompanyResponse wraps a flat company row under the "company" key.
type CompanyResponse struct {
	Company *domain.Company `json:"company"`
}

// CreateCompanyRequest is the JSON payload for creating a company.
type CreateCompanyRequest struct {
	// Name is the display name; the company code is derived from it.
	Name string `json:"name" binding:"required" example:"Acme Corp"`
	// Description optionally describes the company.
	Description string `json:"description" example:"Road-runner accessories"`
}

// UpdateCompanyRequest is the JSON payload for updating a company.
type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required" example:"Acme Corp"`
	Description string `json:"description" example:"Road-runner accessories"`
}

//
// Handlers
//

// ListCompanies godoc
// @ID          listCompanies
// @Summary     List companies
// @Description Returns all companies as code/name pairs.
// @Tags        Companies
// @Produce     json
//
// @Success     200  {object}  handlers.ListCompaniesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies [get]
func (h *Handlers) ListCompanies(c *gin.Context) {
	items, err := h.compSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	out := make([]CompanySummary, 0, len(items))
	for _, comp := range items {
		out = append(out, CompanySummary{Code: comp.Code, Name: comp.Name})
	}
	ok(c, http.StatusOK, ListCompaniesResponse{Companies: out})
}

// GetCompany godoc
// @ID          getCompany
// @Summary     Fetch a company
// @Description Returns a company together with its invoice ids and linked industry labels.
// @Tags        Companies
// @Produce     json
//
// @Param       code  path  string  true  "Company code"  example(acme-corp)
//
// @Success     200  {object}  handlers.CompanyDetailResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [get]
func (h *Handlers) GetCompany(c *gin.Context) {
	code := c.Param("code")

	detail, err := h.compSvc.Get(c.Request.Context(), code)
	if err != nil {
		if err == services.ErrCompanyNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "company could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, CompanyDetailResponse{Company: detail})
}

// CreateCompany godoc
// @ID          createCompany
// @Summary     Create a company
// @Description Creates a company; the code is derived from the name (lowercased, punctuation stripped).
// @Tags        Companies
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateCompanyRequest  true  "Create company payload"
//
// @Success     201  {object}  handlers.CompanyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (including code collisions)"
// @Router      /companies [post]
func (h *Handlers) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}

	comp, err := h.compSvc.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if err == services.ErrEmptyCode {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name must contain letters or digits")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, CompanyResponse{Company: comp})
}

// UpdateCompany godoc
// @ID          updateCompany
// @Summary     Update a company
// @Description Updates name and description for an existing company; the code is immutable.
// @Tags        Companies
// @Accept      json
// @Produce     json
//
// @Param       code  path  string                         true  "Company code"  example(acme-corp)
// @Param       body  body  handlers.UpdateCompanyRequest  true  "Update payload"
//
// @Success     200  {object}  handlers.CompanyResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [put]
func (h *Handlers) UpdateCompany(c *gin.Context) {
	code := c.Param("code")

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name required")
		return
	}

	comp, err := h.compSvc.Update(c.Request.Context(), code, req.Name, req.Description)
	if err != nil {
		if err == services.ErrCompanyNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "company could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, CompanyResponse{Company: comp})
}

// DeleteCompany godoc
// @ID          deleteCompany
// @Summary     Delete a company
// @Description Removes a company; dependent invoices and industry links cascade per store rules.
// @Tags        Companies
// @Produce     json
//
// @Param       code  path  string  true  "Company code"  example(acme-corp)
//
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Company not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /companies/{code} [delete]
func (h *Handlers) DeleteCompany(c *gin.Context) {
	code := c.Param("code")

	if err := h.compSvc.Delete(c.Request.Context(), code); err != nil {
		if err == services.ErrCompanyNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "company could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "deleted"})
}
