package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/logger"
	"rentamaq-backend/internal/repository"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	contractRepo repository.ContractRepository
	clientRepo   repository.ClientRepository
	numbering    NumberingService
	emailSvc     EmailService
	now          func() time.Time
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
	clientRepo repository.ClientRepository,
	numbering NumberingService,
	emailSvc EmailService,
	now func() time.Time,
) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		numbering:    numbering,
		emailSvc:     emailSvc,
		now:          now,
	}
}

func (s *paymentService) RegisterPayment(ctx context.Context, req *RegisterPaymentRequest) (*domain.Payment, error) {
	if req.ContractID <= 0 {
		return nil, fmt.Errorf("%w: arriendo_id is required", ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: monto must be positive", ErrValidation)
	}
	if _, err := s.contractRepo.GetByID(ctx, req.ContractID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: contract %d does not exist", ErrValidation, req.ContractID)
		}
		return nil, err
	}

	paidOn := req.PaidOn
	if paidOn == "" {
		paidOn = s.now().Format("2006-01-02")
	}

	for attempt := 1; attempt <= createAttempts; attempt++ {
		number, err := s.numbering.GeneratePaymentNumber(ctx)
		if err != nil {
			return nil, err
		}

		payment := &domain.Payment{
			Number:     number,
			ContractID: req.ContractID,
			Amount:     req.Amount.Round(2),
			Method:     req.Method,
			Reference:  req.Reference,
			Status:     domain.PaymentStatusPending,
			PaidOn:     paidOn,
			CreatedOn:  s.now().Format(time.RFC3339),
		}
		err = s.paymentRepo.Create(ctx, payment)
		if err == nil {
			return payment, nil
		}
		if !errors.Is(err, domain.ErrDuplicateNumber) {
			return nil, err
		}
		logger.Warn("payment number collided, retrying", "number", number, "attempt", attempt)
	}
	return nil, fmt.Errorf("could not register payment: number collisions after %d attempts", createAttempts)
}

func (s *paymentService) ConfirmPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch payment.Status {
	case domain.PaymentStatusConfirmed:
		return payment, nil // already confirmed, nothing to do
	case domain.PaymentStatusVoided:
		return nil, fmt.Errorf("%w: cannot confirm a voided payment", domain.ErrInvalidTransition)
	}

	if err := s.paymentRepo.UpdateStatus(ctx, id, domain.PaymentStatusConfirmed); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusConfirmed

	// Best-effort notification; confirmation stands even if the email fails.
	if contract, err := s.contractRepo.GetByID(ctx, payment.ContractID); err == nil {
		if client, err := s.clientRepo.GetByID(ctx, contract.ClientID); err == nil && client.Email != "" {
			_ = s.emailSvc.SendPaymentConfirmedNotification(ctx, client.Email, payment.Number, contract.Number, payment.Amount)
		}
	}
	return payment, nil
}

func (s *paymentService) VoidPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusConfirmed {
		return nil, domain.ErrPaymentConfirmed
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, domain.PaymentStatusVoided); err != nil {
		return nil, err
	}
	payment.Status = domain.PaymentStatusVoided
	return payment, nil
}

// DeletePayment removes a payment record. Confirmed payments are immutable
// and deletion is refused with no state change.
func (s *paymentService) DeletePayment(ctx context.Context, id int32) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment.Status == domain.PaymentStatusConfirmed {
		return domain.ErrPaymentConfirmed
	}
	return s.paymentRepo.Delete(ctx, id)
}

func (s *paymentService) ListPayments(ctx context.Context, contractID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByContract(ctx, contractID)
}
