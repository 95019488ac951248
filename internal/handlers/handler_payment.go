package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers the payment-scoped routes, including receipt
// upload and download. Creation and listing live under the parent period's
// routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.PUT("/:paymentID", h.updatePaymentEntry)
		payments.DELETE("/:paymentID", h.deletePaymentEntry)
		payments.POST("/:paymentID/receipt", h.uploadPaymentReceipt)
		payments.GET("/:paymentID/receipt", h.downloadPaymentReceipt)
	}
}

// updatePaymentEntry godoc
// @Summary Update a payment entry
// @Description Applies a partial update. A category change re-checks the linked employee's role against the new category.
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path int true "Payment entry ID"
// @Param payment body dto.UpdatePaymentEntryRequest true "Fields to update"
// @Success 200 {object} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID} [put]
func (h *paymentHandler) updatePaymentEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "paymentID")
	if !ok {
		return
	}
	var req dto.UpdatePaymentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.paymentService.UpdatePaymentEntry(c.Request.Context(), paymentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update payment entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update payment entry"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentEntryResponse(payment))
}

// deletePaymentEntry godoc
// @Summary Delete a payment entry
// @Tags payments
// @Param paymentID path int true "Payment entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePaymentEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "paymentID")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePaymentEntry(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment entry not found"})
		} else {
			logger.Error("Failed to delete payment entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete payment entry"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// uploadPaymentReceipt godoc
// @Summary Attach a receipt to a payment
// @Description Uploads a receipt file (PDF, PNG, JPEG or WebP, at most 10 MB) for the payment, replacing any previous receipt.
// @Tags payments
// @Accept multipart/form-data
// @Produce json
// @Param paymentID path int true "Payment entry ID"
// @Param file formData file true "Receipt file"
// @Success 200 {object} dto.PaymentEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/receipt [post]
func (h *paymentHandler) uploadPaymentReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "paymentID")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A receipt file is required in the 'file' form field"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	payment, err := h.paymentService.UploadPaymentReceipt(c.Request.Context(), paymentID, fileHeader.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment entry not found"})
		} else {
			logger.Error("Failed to store payment receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store receipt"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentEntryResponse(payment))
}

// downloadPaymentReceipt godoc
// @Summary Download a payment's receipt
// @Tags payments
// @Produce application/octet-stream
// @Param paymentID path int true "Payment entry ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Payment not found or no receipt attached"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/receipt [get]
func (h *paymentHandler) downloadPaymentReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID, ok := parseIDParam(c, "paymentID")
	if !ok {
		return
	}

	receipt, err := h.paymentService.GetPaymentReceipt(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
		} else {
			logger.Error("Failed to retrieve payment receipt", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve receipt"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.FileName))
	c.Data(http.StatusOK, receipt.ContentType, receipt.Data)
}
