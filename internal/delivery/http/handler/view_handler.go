package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelmates/backend/internal/delivery/http/middleware"
	"github.com/reelmates/backend/internal/domain"
	"github.com/reelmates/backend/internal/usecase/view"
)

type ViewHandler struct {
	viewUseCase *view.ViewUseCase
}

func NewViewHandler(viewUseCase *view.ViewUseCase) *ViewHandler {
	return &ViewHandler{
		viewUseCase: viewUseCase,
	}
}

// LogView handles POST /views
// @Summary Log a viewing event
// @Description Append a viewing event to the requester's log
// @Tags views
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body view.LogViewRequest true "Viewing event"
// @Success 201 {object} domain.View
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views [post]
func (h *ViewHandler) LogView(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req view.LogViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	created, err := h.viewUseCase.LogView(c.Request.Context(), userID.(string), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMediaKind) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid media kind",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to log view",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMyViews handles GET /views/me
// @Summary List my viewing log
// @Tags views
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.View
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views/me [get]
func (h *ViewHandler) ListMyViews(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	views, err := h.viewUseCase.ListMyViews(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list views",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// DeleteView handles DELETE /views/:view_id
// @Summary Delete one of my viewing events
// @Tags views
// @Security BearerAuth
// @Produce json
// @Param view_id path string true "View ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /views/{view_id} [delete]
func (h *ViewHandler) DeleteView(c *gin.Context) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	viewID := c.Param("view_id")
	if err := h.viewUseCase.DeleteView(c.Request.Context(), userID.(string), viewID); err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "view not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete view",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
