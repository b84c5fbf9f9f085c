package service

import (
	"context"
	"fmt"
	"time"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

func NewClientService(clientRepo repository.ClientRepository, now func() time.Time) ClientService {
	return &clientService{clientRepo: clientRepo, now: now}
}

func (s *clientService) CreateClient(ctx context.Context, c *domain.Client) error {
	if c.Name == "" {
		return fmt.Errorf("%w: nombre is required", ErrValidation)
	}
	if c.Document == "" {
		return fmt.Errorf("%w: ruc_dni is required", ErrValidation)
	}
	c.CreatedOn = s.now().Format(time.RFC3339)
	return s.clientRepo.Create(ctx, c)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}
