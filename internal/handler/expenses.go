package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
)

type ExpensesHandler struct{ svc service.ExpenseService }

func NewExpensesHandler(svc service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// List godoc
// @Summary List expenses — own records, or all records for admins
// @Tags expenses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apierror.APIError
// @Router /expenses [get]
func (h *ExpensesHandler) List(c *gin.Context) {
	expenses, err := h.svc.List(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// Submit godoc
// @Summary Submit an expense claim (employees only)
// @Tags expenses
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} apierror.APIError
// @Router /expenses [post]
func (h *ExpensesHandler) Submit(c *gin.Context) {
	var req dto.SubmitExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}

	expense, err := h.svc.Submit(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Expense submitted successfully", "expense": expense})
}
