package handler

import (
	"net/http"

	"jhris/internal/dto"
	"jhris/internal/service"

	"github.com/gin-gonic/gin"
)

type PositionsHandler struct{ svc service.PositionService }

func NewPositionsHandler(svc service.PositionService) *PositionsHandler {
	return &PositionsHandler{svc: svc}
}

// List godoc
// @Summary List positions
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {array} dto.PositionResponse
// @Router /positions/ [get]
func (h *PositionsHandler) List(c *gin.Context) {
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
// @Summary Create a position
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreatePositionRequest true "Position"
// @Success 201 {object} dto.PositionResponse
// @Failure 400 {object} apierror.APIError
// @Router /positions/ [post]
func (h *PositionsHandler) Create(c *gin.Context) {
	var req dto.CreatePositionRequest
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

func (h *PositionsHandler) Get(c *gin.Context) {
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

func (h *PositionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePositionRequest
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

func (h *PositionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	respondDeleted(c, deleted, err, service.ErrPositionNotFound)
}
