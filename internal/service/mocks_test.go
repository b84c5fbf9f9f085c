package service

import (
	"context"

	"rentamaq-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]domain.Client); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEquipmentRepo struct{ mock.Mock }

func (m *mockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *mockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if eq, ok := args.Get(0).(*domain.Equipment); ok {
		return eq, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	return m.Called(ctx, eq).Error(0)
}

func (m *mockEquipmentRepo) List(ctx context.Context, status string) ([]domain.Equipment, error) {
	args := m.Called(ctx, status)
	if eqs, ok := args.Get(0).([]domain.Equipment); ok {
		return eqs, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockContractRepo struct{ mock.Mock }

func (m *mockContractRepo) CreateWithLines(ctx context.Context, c *domain.Contract, lines []domain.ContractLine) error {
	return m.Called(ctx, c, lines).Error(0)
}

func (m *mockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Contract); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractRepo) GetLines(ctx context.Context, contractID int32) ([]domain.ContractLine, error) {
	args := m.Called(ctx, contractID)
	if ls, ok := args.Get(0).([]domain.ContractLine); ok {
		return ls, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if cs, ok := args.Get(0).([]domain.Contract); ok {
		return cs, args.Get(1).(int32), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockContractRepo) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockContractRepo) ListDueForActivation(ctx context.Context, asOf string) ([]domain.Contract, error) {
	args := m.Called(ctx, asOf)
	if cs, ok := args.Get(0).([]domain.Contract); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContractRepo) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Contract, error) {
	args := m.Called(ctx, from, to)
	if cs, ok := args.Get(0).([]domain.Contract); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, contractID)
	if ps, ok := args.Get(0).([]domain.Payment); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

type mockSequenceRepo struct{ mock.Mock }

func (m *mockSequenceRepo) NextValue(ctx context.Context, cat domain.SequenceCategory, bucket string) (int32, error) {
	args := m.Called(ctx, cat, bucket)
	return args.Get(0).(int32), args.Error(1)
}

type mockNumbering struct{ mock.Mock }

func (m *mockNumbering) GenerateContractNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockNumbering) GeneratePaymentNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockNumbering) GenerateEquipmentCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockEmail struct{ mock.Mock }

func (m *mockEmail) SendContractCreatedNotification(ctx context.Context, email, clientName, number string, total decimal.Decimal) error {
	return m.Called(ctx, email, clientName, number, total).Error(0)
}

func (m *mockEmail) SendPaymentConfirmedNotification(ctx context.Context, email, paymentNumber, contractNumber string, amount decimal.Decimal) error {
	return m.Called(ctx, email, paymentNumber, contractNumber, amount).Error(0)
}

func (m *mockEmail) SendReturnReminder(ctx context.Context, email, clientName, contractNumber, endDate string) error {
	return m.Called(ctx, email, clientName, contractNumber, endDate).Error(0)
}
