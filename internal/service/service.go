package service

import (
	"context"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/pricing"

	"github.com/shopspring/decimal"
)

type NumberingService interface {
	GenerateContractNumber(ctx context.Context) (string, error)
	GeneratePaymentNumber(ctx context.Context) (string, error)
	GenerateEquipmentCode(ctx context.Context) (string, error)
}

// CreateContractLine is one equipment selection. The override fields let the
// operator edit quantity, unit count, unit or unit price after selection;
// when nil the values derived from the catalog and rate plan apply.
type CreateContractLine struct {
	EquipmentID       int32
	Quantity          int32
	UnitPriceOverride *decimal.Decimal
	PeriodCountOverride *int32
	PeriodUnitOverride  domain.PeriodUnit
}

type CreateContractRequest struct {
	ClientID  int32
	StartDate string // yyyy-mm-dd
	EndDate   string // yyyy-mm-dd
	RatePlan  domain.RatePlan
	Modality  domain.Modality
	Lines     []CreateContractLine

	DeliveryAddress string
	ReturnAddress   string

	IncludesTransport bool
	TransportFee      decimal.Decimal
	IncludesOperator  bool
	OperatorFee       decimal.Decimal

	DiscountPercent decimal.Decimal
	Notes           string
}

// ContractQuote is a priced preview of a contract request, nothing persisted.
type ContractQuote struct {
	TotalDays int32
	Lines     []domain.ContractLine
	Totals    pricing.Totals
}

type ContractService interface {
	CreateContract(ctx context.Context, req *CreateContractRequest) (*domain.Contract, error)
	QuoteContract(ctx context.Context, req *CreateContractRequest) (*ContractQuote, error)
	GetContract(ctx context.Context, id int32) (*domain.Contract, []domain.ContractLine, error)
	ListContracts(ctx context.Context, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	ChangeStatus(ctx context.Context, id int32, next domain.ContractStatus) (*domain.Contract, error)
}

type RegisterPaymentRequest struct {
	ContractID int32
	Amount     decimal.Decimal
	Method     domain.PaymentMethod
	Reference  string
	PaidOn     string // yyyy-mm-dd, defaults to today
}

type PaymentService interface {
	RegisterPayment(ctx context.Context, req *RegisterPaymentRequest) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, id int32) (*domain.Payment, error)
	VoidPayment(ctx context.Context, id int32) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int32) error
	ListPayments(ctx context.Context, contractID int32) ([]domain.Payment, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) error
	ListEquipment(ctx context.Context, status string) ([]domain.Equipment, error)
}

type ClientService interface {
	CreateClient(ctx context.Context, c *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type EmailService interface {
	SendContractCreatedNotification(ctx context.Context, email, clientName, number string, total decimal.Decimal) error
	SendPaymentConfirmedNotification(ctx context.Context, email, paymentNumber, contractNumber string, amount decimal.Decimal) error
	SendReturnReminder(ctx context.Context, email, clientName, contractNumber, endDate string) error
}
