package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
)

type reportHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newReportHandler(ss portssvc.SummarySvcFacade) *reportHandler {
	return &reportHandler{summaryService: ss}
}

func registerReportRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newReportHandler(summaryService)

	reports := rg.Group("/reports")
	{
		reports.GET("/car-rental", h.getCarRentalReport)
	}
}

// getCarRentalReport godoc
// @Summary Car rental spending report
// @Description Aggregates car rental charges per period, bucketed by month and by year, optionally restricted to one park.
// @Tags reports
// @Produce json
// @Param parkId query int false "Park ID"
// @Success 200 {object} domain.CarRentalSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/car-rental [get]
func (h *reportHandler) getCarRentalReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var parkID *int64
	if v := c.Query("parkId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid parkId"})
			return
		}
		parkID = &id
	}

	report, err := h.summaryService.SummarizeCarRental(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
			return
		}
		logger.Error("Failed to build car rental report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build car rental report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
