package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
)

type SalaryHandler struct{ svc service.SalaryService }

func NewSalaryHandler(svc service.SalaryService) *SalaryHandler {
	return &SalaryHandler{svc: svc}
}

// List godoc
// @Summary List salary records — own slips, or all slips for admins
// @Tags salary
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierror.APIError
// @Router /salary [get]
func (h *SalaryHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salaryData": records})
}

// Generate godoc
// @Summary Generate a salary slip for an employee (admins only)
// @Tags salary
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /salary [post]
func (h *SalaryHandler) Generate(c *gin.Context) {
	var req dto.GenerateSalaryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Generate(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Salary slip generated successfully", "salary": record})
}
