package repository

import (
	"context"

	"rentamaq-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	List(ctx context.Context, status string) ([]domain.Equipment, error)
}

type ContractRepository interface {
	// CreateWithLines persists the header and all line items in a single
	// transaction. On any failure nothing is committed.
	CreateWithLines(ctx context.Context, c *domain.Contract, lines []domain.ContractLine) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	GetLines(ctx context.Context, contractID int32) ([]domain.ContractLine, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error
	// ListDueForActivation returns approved contracts whose start date is on
	// or before the given date (yyyy-mm-dd).
	ListDueForActivation(ctx context.Context, asOf string) ([]domain.Contract, error)
	// ListEndingBetween returns active contracts whose estimated end date
	// falls within [from, to] (yyyy-mm-dd, inclusive).
	ListEndingBetween(ctx context.Context, from, to string) ([]domain.Contract, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int32) error
}

type SequenceRepository interface {
	// NextValue atomically reserves and returns the next counter value for
	// the (category, bucket) pair, seeding the counter from the highest
	// already-issued identifier when the bucket is first touched.
	NextValue(ctx context.Context, cat domain.SequenceCategory, bucket string) (int32, error)
}
