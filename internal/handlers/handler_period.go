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

// periodHandler handles HTTP requests for financial periods and the entries
// and summaries recorded under them.
type periodHandler struct {
	periodService  portssvc.PeriodSvcFacade
	entryService   portssvc.ServiceEntrySvcFacade
	paymentService portssvc.PaymentSvcFacade
	summaryService portssvc.SummarySvcFacade
}

func newPeriodHandler(
	ps portssvc.PeriodSvcFacade,
	es portssvc.ServiceEntrySvcFacade,
	pys portssvc.PaymentSvcFacade,
	ss portssvc.SummarySvcFacade,
) *periodHandler {
	return &periodHandler{
		periodService:  ps,
		entryService:   es,
		paymentService: pys,
		summaryService: ss,
	}
}

// registerPeriodRoutes registers the period lifecycle routes and the nested
// service-entry, payment and summary routes.
func registerPeriodRoutes(
	rg *gin.RouterGroup,
	periodService portssvc.PeriodSvcFacade,
	entryService portssvc.ServiceEntrySvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	summaryService portssvc.SummarySvcFacade,
) {
	h := newPeriodHandler(periodService, entryService, paymentService, summaryService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:periodID", h.getPeriod)
		periods.PUT("/:periodID", h.updatePeriod)
		periods.DELETE("/:periodID", h.deletePeriod)

		periods.POST("/:periodID/service-entries", h.addServiceEntry)
		periods.GET("/:periodID/service-entries", h.listServiceEntries)
		periods.POST("/:periodID/payments", h.addPaymentEntry)
		periods.GET("/:periodID/payments", h.listPaymentEntries)
		periods.GET("/:periodID/summary", h.getPeriodSummary)
	}
}

// createPeriod godoc
// @Summary Open a monthly financial period
// @Description Opens a new period for a park. At most one period may exist per park, year and month.
// @Tags periods
// @Accept json
// @Produce json
// @Param period body dto.CreatePeriodRequest true "Period details"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Park or administrator not found"
// @Failure 409 {object} ErrorResponse "Period already exists for park, year and month"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create period"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List financial periods
// @Description Lists periods newest first, optionally restricted to one park.
// @Tags periods
// @Produce json
// @Param parkId query int false "Park ID"
// @Success 200 {array} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
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

	periods, err := h.periodService.ListPeriods(c.Request.Context(), parkID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Park not found"})
			return
		}
		logger.Error("Failed to list periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list periods"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPeriodResponse(periods))
}

// getPeriod godoc
// @Summary Get a period by ID
// @Tags periods
// @Produce json
// @Param periodID path int true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriod(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		} else {
			logger.Error("Failed to get period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve period"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// updatePeriod godoc
// @Summary Update a period
// @Description Applies a partial update. Changing the per-meter rate re-prices every service entry atomically; raising the leader rate fails while entries lack a leader.
// @Tags periods
// @Accept json
// @Produce json
// @Param periodID path int true "Period ID"
// @Param period body dto.UpdatePeriodRequest true "Fields to update"
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID} [put]
func (h *periodHandler) updatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}
	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	period, err := h.periodService.UpdatePeriod(c.Request.Context(), periodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update period"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// deletePeriod godoc
// @Summary Delete a period
// @Description Deletes a period together with its service entries, helpers and payments.
// @Tags periods
// @Param periodID path int true "Period ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID} [delete]
func (h *periodHandler) deletePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}

	if err := h.periodService.DeletePeriod(c.Request.Context(), periodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		} else {
			logger.Error("Failed to delete period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete period"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// addServiceEntry godoc
// @Summary Record a service entry
// @Description Records a billable service under the period, priced at the period's current per-meter rate.
// @Tags service-entries
// @Accept json
// @Produce json
// @Param periodID path int true "Period ID"
// @Param entry body dto.CreateServiceEntryRequest true "Service entry details"
// @Success 201 {object} dto.ServiceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/service-entries [post]
func (h *periodHandler) addServiceEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}
	var req dto.CreateServiceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.AddServiceEntry(c.Request.Context(), periodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to add service entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record service entry"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceEntryResponse(entry))
}

// listServiceEntries godoc
// @Summary List a period's service entries
// @Tags service-entries
// @Produce json
// @Param periodID path int true "Period ID"
// @Success 200 {array} dto.ServiceEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/service-entries [get]
func (h *periodHandler) listServiceEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}

	entries, err := h.entryService.ListServiceEntries(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		} else {
			logger.Error("Failed to list service entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list service entries"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToListServiceEntryResponse(entries))
}

// addPaymentEntry godoc
// @Summary Record a payment entry
// @Description Records a payment under the period. Employee payout categories require a matching employee, and client payments default to the park's client.
// @Tags payments
// @Accept json
// @Produce json
// @Param periodID path int true "Period ID"
// @Param payment body dto.CreatePaymentEntryRequest true "Payment details"
// @Success 201 {object} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/payments [post]
func (h *periodHandler) addPaymentEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}
	var req dto.CreatePaymentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.AddPaymentEntry(c.Request.Context(), periodID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to add payment entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record payment entry"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentEntryResponse(payment))
}

// listPaymentEntries godoc
// @Summary List a period's payment entries
// @Tags payments
// @Produce json
// @Param periodID path int true "Period ID"
// @Success 200 {array} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/payments [get]
func (h *periodHandler) listPaymentEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPaymentEntries(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		} else {
			logger.Error("Failed to list payment entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payment entries"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentEntryResponse(payments))
}

// getPeriodSummary godoc
// @Summary Period financial summary
// @Description Derives the period's financial summary: gross revenue, costs, taxes, client balance and margin.
// @Tags summaries
// @Produce json
// @Param periodID path int true "Period ID"
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /periods/{periodID}/summary [get]
func (h *periodHandler) getPeriodSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID, ok := parseIDParam(c, "periodID")
	if !ok {
		return
	}

	summary, err := h.summaryService.CalculateSummary(c.Request.Context(), periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Period not found"})
		} else {
			logger.Error("Failed to compute period summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
