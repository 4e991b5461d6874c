// Invoice HTTP handlers.
//
// This file exposes REST endpoints for invoice resources:
//   - GET    /invoices      (list)
//   - GET    /invoices/{id} (fetch with nested company)
//   - POST   /invoices      (create)
//   - PUT    /invoices/{id} (update amount / paid state)
//   - DELETE /invoices/{id} (delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The paid_date transition itself
// lives in the service layer.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-invoice-backend/internal/domain"
	"github.com/tbourn/go-invoice-backend/internal/services"
)

//
// DTOs
//

// InvoiceSummary is the id/comp_code pair exposed by the list endpoint.
type InvoiceSummary struct {
	ID       int64  `json:"id" example:"1"`
	CompCode string `json:"comp_code" example:"acme-corp"`
}

// ListInvoicesResponse wraps all invoices under the "invoices" key.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceDetailResponse wraps an invoice aggregate under the "invoice" key.
type InvoiceDetailResponse struct {
	Invoice *services.InvoiceDetail `json:"invoice"`
}

// InvoiceResponse wraps a flat invoice row under the "invoice" key.
type InvoiceResponse struct {
	Invoice *domain.Invoice `json:"invoice"`
}

// CreateInvoiceRequest is the JSON payload for creating an invoice. Amt is a
// pointer so presence can be checked without rejecting a legitimate zero
// amount (gin's `required` fails on zero values).
type CreateInvoiceRequest struct {
	// CompCode references the billed company.
	CompCode string `json:"comp_code" binding:"required" example:"acme-corp"`
	// Amt is the invoice amount.
	Amt *float64 `json:"amt" binding:"required" example:"420.50"`
}

// UpdateInvoiceRequest is the JSON payload for updating an invoice. Amt is a
// pointer for the same zero-amount reason as CreateInvoiceRequest. Paid has
// no binding constraint: false is a legitimate value and drives the
// paid_date clearing transition.
type UpdateInvoiceRequest struct {
	Amt  *float64 `json:"amt" binding:"required" example:"99.99"`
	Paid bool     `json:"paid" example:"true"`
}

// invoiceID parses the :id path parameter. The second return value is false
// when the parameter is not an integer (the caller has already responded).
func invoiceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invoice id must be an integer")
		return 0, false
	}
	return id, true
}

//
// Handlers
//

// ListInvoices godoc
// @ID          listInvoices
// @Summary     List invoices
// @Description Returns all invoices as id/comp_code pairs.
// @Tags        Invoices
// @Produce     json
//
// @Success     200  {object}  handlers.ListInvoicesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices [get]
func (h *Handlers) ListInvoices(c *gin.Context) {
	items, err := h.invSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	out := make([]InvoiceSummary, 0, len(items))
	for _, inv := range items {
		out = append(out, InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	ok(c, http.StatusOK, ListInvoicesResponse{Invoices: out})
}

// GetInvoice godoc
// @ID          getInvoice
// @Summary     Fetch an invoice
// @Description Returns an invoice with its owning company nested under "company".
// @Tags        Invoices
// @Produce     json
//
// @Param       id  path  int  true  "Invoice id"  example(1)
//
// @Success     200  {object}  handlers.InvoiceDetailResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [get]
func (h *Handlers) GetInvoice(c *gin.Context) {
	id, okID := invoiceID(c)
	if !okID {
		return
	}

	detail, err := h.invSvc.Get(c.Request.Context(), id)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "invoice could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, InvoiceDetailResponse{Invoice: detail})
}

// CreateInvoice godoc
// @ID          createInvoice
// @Summary     Create an invoice
// @Description Creates an unpaid invoice for an existing company; add_date is set by the store.
// @Tags        Invoices
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateInvoiceRequest  true  "Create invoice payload"
//
// @Success     201  {object}  handlers.InvoiceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (including unknown comp_code)"
// @Router      /invoices [post]
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "comp_code and amt required")
		return
	}

	inv, err := h.invSvc.Create(c.Request.Context(), req.CompCode, *req.Amt)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, InvoiceResponse{Invoice: inv})
}

// UpdateInvoice godoc
// @ID          updateInvoice
// @Summary     Update an invoice
// @Description Sets the amount and paid state. Marking paid stamps paid_date; marking unpaid clears it.
// @Tags        Invoices
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                            true  "Invoice id"  example(1)
// @Param       body  body  handlers.UpdateInvoiceRequest  true  "Update payload"
//
// @Success     200  {object}  handlers.InvoiceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [put]
func (h *Handlers) UpdateInvoice(c *gin.Context) {
	id, okID := invoiceID(c)
	if !okID {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "amt required")
		return
	}

	inv, err := h.invSvc.Update(c.Request.Context(), id, *req.Amt, req.Paid)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "invoice could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, InvoiceResponse{Invoice: inv})
}

// DeleteInvoice godoc
// @ID          deleteInvoice
// @Summary     Delete an invoice
// @Description Removes an invoice by id.
// @Tags        Invoices
// @Produce     json
//
// @Param       id  path  int  true  "Invoice id"  example(1)
//
// @Success     200  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Invoice not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /invoices/{id} [delete]
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	id, okID := invoiceID(c)
	if !okID {
		return
	}

	if err := h.invSvc.Delete(c.Request.Context(), id); err != nil {
		if err == services.ErrInvoiceNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "invoice could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "deleted"})
}
