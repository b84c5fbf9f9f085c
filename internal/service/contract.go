package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/logger"
	"rentamaq-backend/internal/pricing"
	"rentamaq-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrValidation marks input errors rejected before any write. Handlers map
// it to a 400.
var ErrValidation = errors.New("validation failed")

// createAttempts bounds the generate-then-insert retries when the unique
// constraint on numero_contrato reports a concurrent duplicate.
const createAttempts = 3

type contractService struct {
	contractRepo  repository.ContractRepository
	clientRepo    repository.ClientRepository
	equipmentRepo repository.EquipmentRepository
	numbering     NumberingService
	emailSvc      EmailService
	now           func() time.Time
}

func NewContractService(
	contractRepo repository.ContractRepository,
	clientRepo repository.ClientRepository,
	equipmentRepo repository.EquipmentRepository,
	numbering NumberingService,
	emailSvc EmailService,
	now func() time.Time,
) ContractService {
	return &contractService{
		contractRepo:  contractRepo,
		clientRepo:    clientRepo,
		equipmentRepo: equipmentRepo,
		numbering:     numbering,
		emailSvc:      emailSvc,
		now:           now,
	}
}

// CreateContract validates the request, prices it, mints the contract
// number and persists header plus lines atomically. On a duplicate number
// it regenerates and retries; the database unique constraint is the final
// arbiter.
func (s *contractService) CreateContract(ctx context.Context, req *CreateContractRequest) (*domain.Contract, error) {
	client, days, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	lines, totals, err := s.price(ctx, req, days)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= createAttempts; attempt++ {
		number, err := s.numbering.GenerateContractNumber(ctx)
		if err != nil {
			return nil, err
		}

		contract := s.buildContract(req, number, days, totals)
		err = s.contractRepo.CreateWithLines(ctx, contract, lines)
		if err == nil {
			if client.Email != "" {
				_ = s.emailSvc.SendContractCreatedNotification(ctx, client.Email, client.Name, contract.Number, contract.Total)
			}
			return contract, nil
		}
		if !errors.Is(err, domain.ErrDuplicateNumber) {
			return nil, err
		}
		logger.Warn("contract number collided, retrying", "number", number, "attempt", attempt)
	}
	return nil, fmt.Errorf("could not create contract: number collisions after %d attempts", createAttempts)
}

// QuoteContract prices the request without persisting anything. Totals come
// back rounded the same way a persisted contract would be.
func (s *contractService) QuoteContract(ctx context.Context, req *CreateContractRequest) (*ContractQuote, error) {
	_, days, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	lines, totals, err := s.price(ctx, req, days)
	if err != nil {
		return nil, err
	}
	return &ContractQuote{TotalDays: days, Lines: lines, Totals: totals}, nil
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, []domain.ContractLine, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.contractRepo.GetLines(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return contract, lines, nil
}

func (s *contractService) ListContracts(ctx context.Context, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.contractRepo.List(ctx, status, page, pageSize)
}

func (s *contractService) ChangeStatus(ctx context.Context, id int32, next domain.ContractStatus) (*domain.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !contract.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, contract.Status, next)
	}
	if err := s.contractRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	contract.Status = next
	return contract, nil
}

// validate fails fast so no partial write can happen. Returns the client
// (needed later for notifications) and the billed day count.
func (s *contractService) validate(ctx context.Context, req *CreateContractRequest) (*domain.Client, int32, error) {
	if req.ClientID <= 0 {
		return nil, 0, fmt.Errorf("%w: cliente_id is required", ErrValidation)
	}
	if req.StartDate == "" || req.EndDate == "" {
		return nil, 0, fmt.Errorf("%w: fecha_inicio and fecha_fin_estimada are required", ErrValidation)
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid fecha_inicio: %v", ErrValidation, err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid fecha_fin_estimada: %v", ErrValidation, err)
	}
	if !end.After(start) {
		return nil, 0, fmt.Errorf("%w: fecha_fin_estimada must be after fecha_inicio", ErrValidation)
	}
	if len(req.Lines) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one equipment line is required", ErrValidation)
	}
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, 0, fmt.Errorf("%w: line quantity must be positive", ErrValidation)
		}
		if l.UnitPriceOverride != nil && l.UnitPriceOverride.IsNegative() {
			return nil, 0, fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
		}
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, 0, fmt.Errorf("%w: descuento_porcentaje must be between 0 and 100", ErrValidation)
	}
	if req.TransportFee.IsNegative() || req.OperatorFee.IsNegative() {
		return nil, 0, fmt.Errorf("%w: surcharges cannot be negative", ErrValidation)
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("%w: client %d does not exist", ErrValidation, req.ClientID)
	}
	if err != nil {
		return nil, 0, err
	}

	return client, pricing.DayCount(start, end), nil
}

// price builds the priced lines from the catalog and the rate plan, applies
// per-line operator overrides, and computes the aggregate totals. Unit
// prices are copied out of the catalog here; the persisted lines never
// reference it again.
func (s *contractService) price(ctx context.Context, req *CreateContractRequest, days int32) ([]domain.ContractLine, pricing.Totals, error) {
	lines := make([]domain.ContractLine, 0, len(req.Lines))
	priced := make([]pricing.Line, 0, len(req.Lines))

	for _, lr := range req.Lines {
		eq, err := s.equipmentRepo.GetByID(ctx, lr.EquipmentID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricing.Totals{}, fmt.Errorf("%w: equipment %d does not exist", ErrValidation, lr.EquipmentID)
		}
		if err != nil {
			return nil, pricing.Totals{}, err
		}

		unitPrice := eq.PriceFor(req.RatePlan)
		periodCount, periodUnit := pricing.PeriodCount(days, req.RatePlan)

		if lr.UnitPriceOverride != nil {
			unitPrice = *lr.UnitPriceOverride
		}
		if lr.PeriodCountOverride != nil {
			periodCount = *lr.PeriodCountOverride
		}
		if lr.PeriodUnitOverride != "" {
			periodUnit = lr.PeriodUnitOverride
		}
		// Every line bills at least one period.
		if periodCount < 1 {
			periodCount = 1
		}

		subtotal := pricing.LineSubtotal(unitPrice, lr.Quantity, periodCount)
		lines = append(lines, domain.ContractLine{
			EquipmentID: lr.EquipmentID,
			Quantity:    lr.Quantity,
			UnitPrice:   unitPrice,
			PeriodUnit:  periodUnit,
			PeriodCount: periodCount,
			Subtotal:    subtotal.Round(2),
			Status:      domain.LineStatusPending,
		})
		priced = append(priced, pricing.Line{
			EquipmentID: lr.EquipmentID,
			Quantity:    lr.Quantity,
			UnitPrice:   unitPrice,
			PeriodCount: periodCount,
		})
	}

	transport := decimal.Zero
	if req.IncludesTransport {
		transport = req.TransportFee
	}
	operator := decimal.Zero
	if req.IncludesOperator {
		operator = req.OperatorFee
	}

	totals := pricing.ComputeTotals(priced, req.DiscountPercent, transport, operator).Rounded()
	return lines, totals, nil
}

func (s *contractService) buildContract(req *CreateContractRequest, number string, days int32, totals pricing.Totals) *domain.Contract {
	return &domain.Contract{
		Number:            number,
		ClientID:          req.ClientID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		TotalDays:         days,
		RatePlan:          req.RatePlan,
		Modality:          req.Modality,
		DeliveryAddress:   req.DeliveryAddress,
		ReturnAddress:     req.ReturnAddress,
		IncludesTransport: req.IncludesTransport,
		TransportFee:      req.TransportFee.Round(2),
		IncludesOperator:  req.IncludesOperator,
		OperatorFee:       req.OperatorFee.Round(2),
		Subtotal:          totals.Subtotal,
		DiscountPercent:   req.DiscountPercent,
		DiscountAmount:    totals.Discount,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Notes:             req.Notes,
		Status:            domain.ContractStatusDraft,
		CreatedOn:         s.now().Format(time.RFC3339),
	}
}
