package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
)

type serviceEntryHandler struct {
	entryService portssvc.ServiceEntrySvcFacade
}

func newServiceEntryHandler(es portssvc.ServiceEntrySvcFacade) *serviceEntryHandler {
	return &serviceEntryHandler{entryService: es}
}

// registerServiceEntryRoutes registers the entry-scoped routes. Creation and
// listing live under the parent period's routes.
func registerServiceEntryRoutes(rg *gin.RouterGroup, entryService portssvc.ServiceEntrySvcFacade) {
	h := newServiceEntryHandler(entryService)

	entries := rg.Group("/service-entries")
	{
		entries.PUT("/:entryID", h.updateServiceEntry)
		entries.DELETE("/:entryID", h.deleteServiceEntry)
	}
}

// updateServiceEntry godoc
// @Summary Update a service entry
// @Description Applies a partial update, re-deriving the unit price and gross value from the period's current rate.
// @Tags service-entries
// @Accept json
// @Produce json
// @Param entryID path int true "Service entry ID"
// @Param entry body dto.UpdateServiceEntryRequest true "Fields to update"
// @Success 200 {object} dto.ServiceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-entries/{entryID} [put]
func (h *serviceEntryHandler) updateServiceEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}
	var req dto.UpdateServiceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateServiceEntry(c.Request.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update service entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update service entry"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceEntryResponse(entry))
}

// deleteServiceEntry godoc
// @Summary Delete a service entry
// @Description Deletes a service entry together with its helper assignments.
// @Tags service-entries
// @Param entryID path int true "Service entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-entries/{entryID} [delete]
func (h *serviceEntryHandler) deleteServiceEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := parseIDParam(c, "entryID")
	if !ok {
		return
	}

	if err := h.entryService.DeleteServiceEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Service entry not found"})
		} else {
			logger.Error("Failed to delete service entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete service entry"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
