// Industry HTTP handlers.
//
// This file exposes REST endpoints for industry resources:
//   - GET    /industries         (list)
//   - POST   /industries         (create, slug fallback when code omitted)
//   - POST   /industries/company (link an industry to a company)
//   - PUT    /industries/{code}  (update label)
//   - DELETE /industries/{code}  (delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Note the deliberate asymmetry on
// the link endpoint: a missing company or industry code surfaces as a 500
// storage failure because the store's referential constraint raises it, not
// an explicit existence check.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-invoice-backend/internal/domain"
	"github.com/tbourn/go-invoice-backend/internal/services"
)

//
// DTOs
//

// ListIndustriesResponse wraps all industries under the "industries" key.
type ListIndustriesResponse struct {
	Industries []domain.Industry `json:"industries"`
}

// IndustryResponse wraps an industry row under the "industry" key.
type IndustryResponse struct {
	Industry *domain.Industry `json:"industry"`
}

// ConnectionResponse wraps a company-industry link under the "connection" key.
type ConnectionResponse struct {
	Connection *domain.CompanyIndustry `json:"connection"`
}

// CreateIndustryRequest is the JSON payload for creating an industry. Code is
// optional; when omitted it is derived from the label.
type CreateIndustryRequest struct {
	Code     string `json:"code" example:"acct"`
	Industry string `json:"industry" binding:"required" example:"Accounting"`
}

// LinkIndustryRequest is the JSON payload for linking an industry to a company.
type LinkIndustryRequest struct {
	CompCode string `json:"comp_code" binding:"required" example:"acme-corp"`
	IndCode  string `json:"ind_code" binding:"required" example:"acct"`
}

// UpdateIndustryRequest is the JSON payload for updating an industry label.
type UpdateIndustryRequest struct {
	Industry string `json:"industry" binding:"required" example:"Accountancy"`
}

//
// Handlers
//

// ListIndustries godoc
// @ID          listIndustries
// @Summary     List industries
// @Description Returns all industries as code/label pairs.
// @Tags        Industries
// @Produce     json
//
// @Success     200  {object}  handlers.ListIndustriesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /industries [get]
func (h *Handlers) ListIndustries(c *gin.Context) {
	items, err := h.indSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.Industry{}
	}
	ok(c, http.StatusOK, ListIndustriesResponse{Industries: items})
}

// CreateIndustry godoc
// @ID          createIndustry
// @Summary     Create an industry
// @Description Creates an industry; when code is omitted it is derived from the label.
// @Tags        Industries
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateIndustryRequest  true  "Create industry payload"
//
// @Success     201  {object}  handlers.IndustryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (including code collisions)"
// @Router      /industries [post]
func (h *Handlers) CreateIndustry(c *gin.Context) {
	var req CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Industry) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "industry required")
		return
	}

	ind, err := h.indSvc.Create(c.Request.Context(), req.Code, req.Industry)
	if err != nil {
		if err == services.ErrEmptyCode {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "industry must contain letters or digits")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, IndustryResponse{Industry: ind})
}

// LinkIndustry godoc
// @ID          linkIndustry
// @Summary     Link an industry to a company
// @Description Inserts a company-industry association. Unknown codes are rejected by the store's referential constraint and reported as a 500, not a 404.
// @Tags        Industries
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LinkIndustryRequest  true  "Link payload"
//
// @Success     201  {object}  handlers.ConnectionResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error (including unknown codes)"
// @Router      /industries/company [post]
func (h *Handlers) LinkIndustry(c *gin.Context) {
	var req LinkIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "comp_code and ind_code required")
		return
	}

	link, err := h.indSvc.Link(c.Request.Context(), req.CompCode, req.IndCode)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, ConnectionResponse{Connection: link})
}

// UpdateIndustry godoc
// @ID          updateIndustry
// @Summary     Update an industry
// @Description Updates the display label for an existing industry.
// @Tags        Industries
// @Accept      json
// @Produce     json
//
// @Param       code  path  string                          true  "Industry code"  example(acct)
// @Param       body  body  handlers.UpdateIndustryRequest  true  "Update payload"
//
// @Success     200  {object}  handlers.IndustryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Industry not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /industries/{code} [put]
func (h *Handlers) UpdateIndustry(c *gin.Context) {
	code := c.Param("code")

	var req UpdateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Industry) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "industry required")
		return
	}

	ind, err := h.indSvc.Update(c.Request.Context(), code, req.Industry)
	if err != nil {
		if err == services.ErrIndustryNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "industry could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, IndustryResponse{Industry: ind})
}

// DeleteIndustry godoc
// @ID          deleteIndustry
// @Summary     Delete an industry
// @Description Removes an industry by code; company links cascade per store rules.
// @Tags        Industries
// @Produce     json
//
// @Param       code  path  string  true  "Industry code"  example(acct)
//
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Industry not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /industries/{code} [delete]
func (h *Handlers) DeleteIndustry(c *gin.Context) {
	code := c.Param("code")

	if err := h.indSvc.Delete(c.Request.Context(), code); err != nil {
		if err == services.ErrIndustryNotFound {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "industry could not be found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "deleted"})
}
