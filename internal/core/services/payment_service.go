package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jvamontagens/assembly_backend/internal/apperrors"
	"github.com/jvamontagens/assembly_backend/internal/core/domain"
	portsrepo "github.com/jvamontagens/assembly_backend/internal/core/ports/repositories"
	portssvc "github.com/jvamontagens/assembly_backend/internal/core/ports/services"
	"github.com/jvamontagens/assembly_backend/internal/dto"
	"github.com/jvamontagens/assembly_backend/internal/middleware"
	"github.com/jvamontagens/assembly_backend/internal/utils/document"
	"github.com/jvamontagens/assembly_backend/internal/utils/money"
)

// maxReceiptSizeBytes caps receipt uploads at 10 MB.
const maxReceiptSizeBytes = 10 * 1024 * 1024

// paymentService validates and persists payment entries and their receipts.
type paymentService struct {
	paymentRepo  portsrepo.PaymentRepository
	periodRepo   portsrepo.PeriodReader
	parkRepo     portsrepo.ParkReader
	employeeRepo portsrepo.EmployeeReader
	clientRepo   portsrepo.ClientReader
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepository,
	periodRepo portsrepo.PeriodReader,
	parkRepo portsrepo.ParkReader,
	employeeRepo portsrepo.EmployeeReader,
	clientRepo portsrepo.ClientReader,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		periodRepo:   periodRepo,
		parkRepo:     parkRepo,
		employeeRepo: employeeRepo,
		clientRepo:   clientRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// resolvePaymentEmployee enforces the employee link rules of the two
// EMPLOYEE_* categories: the id is mandatory and the employee's role must
// match the category. Other categories carry no employee.
func (s *paymentService) resolvePaymentEmployee(ctx context.Context, category domain.PaymentCategory, employeeID *int64) (*int64, error) {
	expectedRole, needsEmployee := category.EmployeeRole()
	if !needsEmployee {
		return nil, nil
	}
	if employeeID == nil || *employeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeId is required for %s category", apperrors.ErrValidation, category)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, *employeeID)
	if err != nil {
		return nil, fmt.Errorf("payment employee %d: %w", *employeeID, err)
	}
	if err := requireEmployeeRole(employee, expectedRole, "payment employee"); err != nil {
		return nil, err
	}
	return &employee.ID, nil
}

// resolveClientCNPJ normalizes and resolves an optional client reference.
// Blank input counts as absent.
func (s *paymentService) resolveClientCNPJ(ctx context.Context, raw *string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	cnpj, err := document.NormalizeCNPJ(*raw)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.FindClientByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", cnpj, err)
	}
	return &client.CNPJ, nil
}

// AddPaymentEntry records a new payment entry under a period.
func (s *paymentService) AddPaymentEntry(ctx context.Context, periodID int64, req dto.CreatePaymentEntryRequest) (*domain.PaymentEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}

	category := domain.PaymentOther
	if req.Category != nil {
		category = *req.Category
	}

	employeeID, err := s.resolvePaymentEmployee(ctx, category, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	clientCNPJ, err := s.resolveClientCNPJ(ctx, req.ClientCNPJ)
	if err != nil {
		return nil, err
	}
	if category == domain.PaymentClientPayment && clientCNPJ == nil {
		// Client payments default to the park's owning client.
		park, err := s.parkRepo.FindParkByID(ctx, period.ParkID)
		if err != nil {
			return nil, fmt.Errorf("park %d: %w", period.ParkID, err)
		}
		clientCNPJ = &park.ClientCNPJ
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: payment name is required", apperrors.ErrValidation)
	}
	amount := money.ZeroIfNil(req.Amount)
	if err := money.RequirePositive(amount, "amount"); err != nil {
		return nil, err
	}

	paymentDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.Time
	}

	payment := domain.PaymentEntry{
		PeriodID:      period.ID,
		PaymentDate:   paymentDate,
		Name:          strings.TrimSpace(req.Name),
		InvoiceNumber: req.InvoiceNumber,
		Amount:        amount,
		Category:      category,
		Notes:         req.Notes,
		EmployeeID:    employeeID,
		ClientCNPJ:    clientCNPJ,
		HasReceipt:    false,
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment entry: %w", err)
	}

	logger.Info("Payment entry recorded",
		slog.Int64("payment_id", saved.ID),
		slog.Int64("period_id", periodID),
		slog.String("category", string(saved.Category)),
		slog.String("amount", saved.Amount.String()),
	)
	return saved, nil
}

// ListPaymentEntries retrieves a period's payment entries.
func (s *paymentService) ListPaymentEntries(ctx context.Context, periodID int64) ([]domain.PaymentEntry, error) {
	if _, err := s.periodRepo.FindPeriodByID(ctx, periodID); err != nil {
		return nil, fmt.Errorf("period %d: %w", periodID, err)
	}
	return s.paymentRepo.ListPaymentsByPeriod(ctx, periodID)
}

// UpdatePaymentEntry applies a partial update. A category change re-runs the
// employee role resolution with the new category against the effective
// employee id (newly supplied or existing).
func (s *paymentService) UpdatePaymentEntry(ctx context.Context, paymentID int64, req dto.UpdatePaymentEntryRequest) (*domain.PaymentEntry, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment entry %d: %w", paymentID, err)
	}

	category := payment.Category
	if req.Category != nil {
		category = *req.Category
	}
	effectiveEmployeeID := payment.EmployeeID
	if req.EmployeeID != nil {
		effectiveEmployeeID = req.EmployeeID
	}
	employeeID, err := s.resolvePaymentEmployee(ctx, category, effectiveEmployeeID)
	if err != nil {
		return nil, err
	}

	if req.PaymentDate != nil {
		payment.PaymentDate = req.PaymentDate.Time
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		payment.Name = strings.TrimSpace(*req.Name)
	}
	if req.InvoiceNumber != nil {
		payment.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Amount != nil {
		if err := money.RequirePositive(*req.Amount, "amount"); err != nil {
			return nil, err
		}
		payment.Amount = *req.Amount
	}
	payment.Category = category
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}
	payment.EmployeeID = employeeID

	clientCNPJ := payment.ClientCNPJ
	if req.ClientCNPJ != nil {
		clientCNPJ, err = s.resolveClientCNPJ(ctx, req.ClientCNPJ)
		if err != nil {
			return nil, err
		}
	}
	if category == domain.PaymentClientPayment && clientCNPJ == nil {
		period, err := s.periodRepo.FindPeriodByID(ctx, payment.PeriodID)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", payment.PeriodID, err)
		}
		park, err := s.parkRepo.FindParkByID(ctx, period.ParkID)
		if err != nil {
			return nil, fmt.Errorf("park %d: %w", period.ParkID, err)
		}
		clientCNPJ = &park.ClientCNPJ
	}
	payment.ClientCNPJ = clientCNPJ

	return s.paymentRepo.UpdatePayment(ctx, *payment)
}

// DeletePaymentEntry removes a payment entry.
func (s *paymentService) DeletePaymentEntry(ctx context.Context, paymentID int64) error {
	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		return fmt.Errorf("payment entry %d: %w", paymentID, err)
	}
	return s.paymentRepo.DeletePayment(ctx, paymentID)
}

// receiptContentTypes is the whitelist of accepted receipt uploads.
var receiptContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
}

// normalizeReceiptContentType lower-cases the declared content type, falling
// back to the filename extension when the declaration is empty.
func normalizeReceiptContentType(contentType, fileName string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	if normalized == "" && fileName != "" {
		switch {
		case strings.HasSuffix(strings.ToLower(fileName), ".pdf"):
			normalized = "application/pdf"
		case strings.HasSuffix(strings.ToLower(fileName), ".png"):
			normalized = "image/png"
		case strings.HasSuffix(strings.ToLower(fileName), ".jpg"),
			strings.HasSuffix(strings.ToLower(fileName), ".jpeg"):
			normalized = "image/jpeg"
		case strings.HasSuffix(strings.ToLower(fileName), ".webp"):
			normalized = "image/webp"
		}
	}
	if _, ok := receiptContentTypes[normalized]; !ok {
		return "", fmt.Errorf("%w: only PDF or image files are accepted", apperrors.ErrValidation)
	}
	return normalized, nil
}

// normalizeReceiptFileName synthesizes a filename from the content type when
// none was supplied and strips path-separator characters otherwise.
func normalizeReceiptFileName(originalFilename, contentType string, paymentID int64) string {
	candidate := strings.TrimSpace(originalFilename)
	if candidate == "" {
		ext, ok := receiptContentTypes[contentType]
		if !ok {
			ext = ".jpg"
		}
		return fmt.Sprintf("payment-receipt-%d%s", paymentID, ext)
	}
	replacer := strings.NewReplacer("\r", "_", "\n", "_", "\\", "_", "/", "_")
	return replacer.Replace(candidate)
}

// UploadPaymentReceipt validates and attaches a receipt file to a payment.
func (s *paymentService) UploadPaymentReceipt(ctx context.Context, paymentID int64, originalFilename string, contentType string, data []byte) (*domain.PaymentEntry, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment entry %d: %w", paymentID, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: receipt file cannot be empty", apperrors.ErrValidation)
	}
	if len(data) > maxReceiptSizeBytes {
		return nil, fmt.Errorf("%w: receipt file cannot exceed 10MB", apperrors.ErrValidation)
	}

	normalizedType, err := normalizeReceiptContentType(contentType, originalFilename)
	if err != nil {
		return nil, err
	}
	fileName := normalizeReceiptFileName(originalFilename, normalizedType, paymentID)

	file := domain.ReceiptFile{
		FileName:    fileName,
		ContentType: normalizedType,
		Data:        data,
	}
	if err := s.paymentRepo.SaveReceipt(ctx, paymentID, file); err != nil {
		return nil, fmt.Errorf("failed to store receipt for payment %d: %w", paymentID, err)
	}

	payment.HasReceipt = true
	payment.ReceiptFileName = fileName
	payment.ReceiptContentType = normalizedType
	payment.ReceiptSize = int64(len(data))
	return payment, nil
}

// GetPaymentReceipt retrieves a payment's receipt file.
func (s *paymentService) GetPaymentReceipt(ctx context.Context, paymentID int64) (*domain.ReceiptFile, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment entry %d: %w", paymentID, err)
	}
	if !payment.HasReceipt {
		return nil, fmt.Errorf("%w: no receipt attached to this payment", apperrors.ErrNotFound)
	}

	file, err := s.paymentRepo.FindReceipt(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("receipt for payment %d: %w", paymentID, err)
	}
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("%w: no receipt attached to this payment", apperrors.ErrNotFound)
	}
	if file.ContentType == "" {
		file.ContentType = "application/octet-stream"
	}
	file.FileName = normalizeReceiptFileName(file.FileName, file.ContentType, paymentID)
	return file, nil
}
