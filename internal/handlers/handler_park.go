package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
)

// parkHandler handles HTTP requests related to parks.
type parkHandler struct {
	parkService    portssvc.ParkSvcFacade
	periodService  portssvc.PeriodSvcFacade
	summaryService portssvc.SummarySvcFacade
}

func newParkHandler(ps portssvc.ParkSvcFacade, prs portssvc.PeriodSvcFacade, ss portssvc.SummarySvcFacade) *parkHandler {
	return &parkHandler{parkService: ps, periodService: prs, summaryService: ss}
}

// registerParkRoutes registers routes related to parks, including the
// park-scoped period listing and the financial overview.
func registerParkRoutes(rg *gin.RouterGroup, parkService portssvc.ParkSvcFacade, periodService portssvc.PeriodSvcFacade, summaryService portssvc.SummarySvcFacade) {
	h := newParkHandler(parkService, periodService, summaryService)

	parks := rg.Group("/parks")
	{
		parks.POST("", h.createPark)
		parks.GET("", h.listParks)
		parks.GET("/:parkID", h.getPark)
		parks.PUT("/:parkID", h.updatePark)
		parks.DELETE("/:parkID", h.deletePark)
		parks.GET("/:parkID/periods", h.listParkPeriods)
		parks.GET("/:parkID/overview", h.getParkOverview)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// createPark godoc
// @Summary Register a park
// @Description Registers a new amusement park under an existing client.
// @Tags parks
// @Accept json
// @Produce json
// @Param park body dto.CreateParkRequest true "Park details"
// @Success 201 {object} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Owning client not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks [post]
func (h *parkHandler) createPark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateParkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	park, err := h.parkService.CreatePark(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create park", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create park"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToParkResponse(park))
}

// listParks godoc
// @Summary List parks
// @Description Lists parks, optionally filtered by owning client CNPJ.
// @Tags parks
// @Produce json
// @Param clientCnpj query string false "Owning client CNPJ"
// @Success 200 {array} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks [get]
func (h *parkHandler) listParks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var clientCNPJ *string
	if v := c.Query("clientCnpj"); v != "" {
		clientCNPJ = &v
	}

	parks, err := h.parkService.ListParks(c.Request.Context(), clientCNPJ)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list parks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list parks"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListParkResponse(parks))
}

// getPark godoc
// @Summary Get a park by ID
// @Tags parks
// @Produce json
// @Param parkID path int true "Park ID"
// @Success 200 {object} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks/{parkID} [get]
func (h *parkHandler) getPark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parkID, ok := parseIDParam(c, "parkID")
	if !ok {
		return
	}

	park, err := h.parkService.GetPark(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
		} else {
			logger.Error("Failed to get park", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve park"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToParkResponse(park))
}

// updatePark godoc
// @Summary Update a park
// @Tags parks
// @Accept json
// @Produce json
// @Param parkID path int true "Park ID"
// @Param park body dto.UpdateParkRequest true "Fields to update"
// @Success 200 {object} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks/{parkID} [put]
func (h *parkHandler) updatePark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parkID, ok := parseIDParam(c, "parkID")
	if !ok {
		return
	}
	var req dto.UpdateParkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	park, err := h.parkService.UpdatePark(c.Request.Context(), parkID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update park", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update park"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToParkResponse(park))
}

// deletePark godoc
// @Summary Delete a park
// @Description Deletes a park together with its periods and entries.
// @Tags parks
// @Param parkID path int true "Park ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks/{parkID} [delete]
func (h *parkHandler) deletePark(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parkID, ok := parseIDParam(c, "parkID")
	if !ok {
		return
	}

	if err := h.parkService.DeletePark(c.Request.Context(), parkID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
		} else {
			logger.Error("Failed to delete park", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete park"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// listParkPeriods godoc
// @Summary List a park's financial periods
// @Description Lists the park's monthly periods, newest first.
// @Tags parks
// @Produce json
// @Param parkID path int true "Park ID"
// @Success 200 {array} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks/{parkID}/periods [get]
func (h *parkHandler) listParkPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parkID, ok := parseIDParam(c, "parkID")
	if !ok {
		return
	}

	periods, err := h.periodService.ListPeriods(c.Request.Context(), &parkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
		} else {
			logger.Error("Failed to list park periods", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list periods"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// getParkOverview godoc
// @Summary Park financial overview
// @Description Aggregates every period of the park into inflow, outflow and balance figures, newest first.
// @Tags parks
// @Produce json
// @Param parkID path int true "Park ID"
// @Success 200 {object} domain.ParkOverview
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /parks/{parkID}/overview [get]
func (h *parkHandler) getParkOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parkID, ok := parseIDParam(c, "parkID")
	if !ok {
		return
	}

	overview, err := h.summaryService.CalculateParkOverview(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
		} else {
			logger.Error("Failed to compute park overview", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute overview"})
		}
		return
	}
	c.JSON(http.StatusOK, overview)
}
