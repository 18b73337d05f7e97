package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/dto"
	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// ListEmployees godoc
// @Summary List employee-role users for admin pickers (admins only)
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} apierror.APIError
// @Router /users [get]
func (h *UsersHandler) ListEmployees(c *gin.Context) {
	users, err := h.svc.ListEmployees(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateSalary godoc
// @Summary Set a user's base salary (admins only)
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /users [put]
func (h *UsersHandler) UpdateSalary(c *gin.Context) {
	var req dto.UpdateSalaryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.UpdateSalary(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User salary updated successfully", "user": user})
}
