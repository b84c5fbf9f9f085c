package service

import (
	"context"
	"fmt"
	"time"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
	"rentamaq-backend/internal/sequence"
)

type numberingService struct {
	seqRepo repository.SequenceRepository
	now     func() time.Time
}

// NewNumberingService builds the number generator. The clock is injected so
// tests can pin the bucket.
func NewNumberingService(seqRepo repository.SequenceRepository, now func() time.Time) NumberingService {
	return &numberingService{seqRepo: seqRepo, now: now}
}

func (s *numberingService) GenerateContractNumber(ctx context.Context) (string, error) {
	return s.generate(ctx, domain.SequenceContract)
}

func (s *numberingService) GeneratePaymentNumber(ctx context.Context) (string, error) {
	return s.generate(ctx, domain.SequencePayment)
}

func (s *numberingService) GenerateEquipmentCode(ctx context.Context) (string, error) {
	return s.generate(ctx, domain.SequenceEquipment)
}

// generate reserves the next counter value for the category's current
// bucket and formats the identifier. Read-only from the caller's point of
// view: the identifier only becomes "issued" once a row carrying it is
// persisted.
func (s *numberingService) generate(ctx context.Context, cat domain.SequenceCategory) (string, error) {
	bucket := sequence.Bucket(cat, s.now())
	n, err := s.seqRepo.NextValue(ctx, cat, bucket)
	if err != nil {
		return "", fmt.Errorf("could not generate number for %s: %w", cat, err)
	}
	return sequence.Format(cat, bucket, n), nil
}
