package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/logger"
	"rentamaq-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	numbering     NumberingService
	now           func() time.Time
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, numbering NumberingService, now func() time.Time) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, numbering: numbering, now: now}
}

// AddEquipment mints the catalog code (EQ-YYYY-NNNN) and inserts the item.
func (s *equipmentService) AddEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.Name == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	if eq.PricePerDay.IsNegative() || eq.PricePerWeek.IsNegative() || eq.PricePerMonth.IsNegative() {
		return fmt.Errorf("%w: catalog prices cannot be negative", ErrValidation)
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusAvailable
	}
	eq.CreatedOn = s.now().Format(time.RFC3339)

	for attempt := 1; attempt <= createAttempts; attempt++ {
		code, err := s.numbering.GenerateEquipmentCode(ctx)
		if err != nil {
			return err
		}
		eq.Code = code
		err = s.equipmentRepo.Create(ctx, eq)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateNumber) {
			return err
		}
		logger.Warn("equipment code collided, retrying", "code", code, "attempt", attempt)
	}
	return fmt.Errorf("could not add equipment: code collisions after %d attempts", createAttempts)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.PricePerDay.IsNegative() || eq.PricePerWeek.IsNegative() || eq.PricePerMonth.IsNegative() {
		return fmt.Errorf("%w: catalog prices cannot be negative", ErrValidation)
	}
	return s.equipmentRepo.Update(ctx, eq)
}

func (s *equipmentService) ListEquipment(ctx context.Context, status string) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx, status)
}
