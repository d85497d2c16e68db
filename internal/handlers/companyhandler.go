package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/team-dbase/dbase-ai/internal/dtos"
	"github.com/team-dbase/dbase-ai/internal/services"
	"gorm.io/gorm"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{CompanyService: companies}
}

// ListCompanies is the GET /api/companies endpoint
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.CompanyService.ListCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dtos.NewAPIError("failed to list companies: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany is the GET /api/companies/:id endpoint; postings included
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dtos.NewAPIError("invalid company id"))
		return
	}

	company, err := h.CompanyService.GetCompany(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, dtos.NewAPIError("company not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dtos.NewAPIError("failed to load company: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, company)
}
