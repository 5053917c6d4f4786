package handler

import (
	"net/http"

	"jhris/internal/dto"
	"jhris/internal/service"

	"github.com/gin-gonic/gin"
)

type DepartmentsHandler struct{ svc service.DepartmentService }

func NewDepartmentsHandler(svc service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{svc: svc}
}

// List godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} dto.DepartmentResponse
// @Router /departments/ [get]
func (h *DepartmentsHandler) List(c *gin.Context) {
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.DepartmentResponse
// @Failure 400 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /departments/ [post]
func (h *DepartmentsHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Fetch a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 404 {object} apierror.APIError
// @Router /departments/{id} [get]
func (h *DepartmentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a department
// @Description Only the fields present in the body change. An explicit null clears a nullable field.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param body body dto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /departments/{id} [put]
func (h *DepartmentsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a department
// @Tags departments
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /departments/{id} [delete]
func (h *DepartmentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, service.ErrDepartmentNotFound)
}

// Employees godoc
// @Summary Employees assigned to a department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 404 {object} apierror.APIError
// @Router /departments/{id}/employees [get]
func (h *DepartmentsHandler) Employees(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}
	resp, err := h.svc.Employees(c.Request.Context(), id, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
