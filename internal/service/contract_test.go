package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rentamaq-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
}

type contractFixture struct {
	contracts *mockContractRepo
	clients   *mockClientRepo
	equipment *mockEquipmentRepo
	numbering *mockNumbering
	email     *mockEmail
	svc       ContractService
}

func newContractFixture() *contractFixture {
	f := &contractFixture{
		contracts: &mockContractRepo{},
		clients:   &mockClientRepo{},
		equipment: &mockEquipmentRepo{},
		numbering: &mockNumbering{},
		email:     &mockEmail{},
	}
	f.svc = NewContractService(f.contracts, f.clients, f.equipment, f.numbering, f.email, fixedNow)
	return f
}

func validCreateRequest() *CreateContractRequest {
	return &CreateContractRequest{
		ClientID:          3,
		StartDate:         "2025-01-01",
		EndDate:           "2025-01-10",
		RatePlan:          domain.RatePlanDaily,
		Modality:          domain.ModalityEquipmentOnly,
		Lines:             []CreateContractLine{{EquipmentID: 1, Quantity: 2}},
		IncludesTransport: true,
		TransportFee:      decimal.NewFromInt(50),
		DiscountPercent:   decimal.NewFromInt(10),
	}
}

func TestCreateContractValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateContractRequest)
	}{
		{"MissingClient", func(r *CreateContractRequest) { r.ClientID = 0 }},
		{"MissingDates", func(r *CreateContractRequest) { r.StartDate = "" }},
		{"UnparsableDate", func(r *CreateContractRequest) { r.EndDate = "10-01-2025" }},
		{"EndBeforeStart", func(r *CreateContractRequest) { r.EndDate = "2024-12-31" }},
		{"EndEqualsStart", func(r *CreateContractRequest) { r.EndDate = r.StartDate }},
		{"NoLines", func(r *CreateContractRequest) { r.Lines = nil }},
		{"ZeroQuantity", func(r *CreateContractRequest) { r.Lines[0].Quantity = 0 }},
		{"NegativePriceOverride", func(r *CreateContractRequest) {
			neg := decimal.NewFromInt(-5)
			r.Lines[0].UnitPriceOverride = &neg
		}},
		{"DiscountOverHundred", func(r *CreateContractRequest) { r.DiscountPercent = decimal.NewFromInt(101) }},
		{"NegativeDiscount", func(r *CreateContractRequest) { r.DiscountPercent = decimal.NewFromInt(-1) }},
		{"NegativeTransportFee", func(r *CreateContractRequest) { r.TransportFee = decimal.NewFromInt(-10) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContractFixture()
			req := validCreateRequest()
			tt.mutate(req)

			_, err := f.svc.CreateContract(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			// Nothing was written and no number was consumed.
			f.contracts.AssertNotCalled(t, "CreateWithLines", mock.Anything, mock.Anything, mock.Anything)
			f.numbering.AssertNotCalled(t, "GenerateContractNumber", mock.Anything)
		})
	}
}

func TestCreateContractUnknownClient(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).Return(nil, sql.ErrNoRows)

	_, err := f.svc.CreateContract(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrValidation)
	f.contracts.AssertNotCalled(t, "CreateWithLines", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateContractUnknownEquipment(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).Return(&domain.Client{ID: 3, Name: "Constructora Sur"}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).Return(nil, sql.ErrNoRows)

	_, err := f.svc.CreateContract(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrValidation)
	f.contracts.AssertNotCalled(t, "CreateWithLines", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateContractSuccess(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Client{ID: 3, Name: "Constructora Sur", Email: "pagos@sur.pe"}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).
		Return(&domain.Equipment{ID: 1, Code: "EQ-2025-0001", Name: "Excavadora", PricePerDay: decimal.NewFromInt(100)}, nil)
	f.numbering.On("GenerateContractNumber", mock.Anything).Return("ARR-202501-0001", nil)

	var savedLines []domain.ContractLine
	f.contracts.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.ContractLine)
		}).
		Return(nil)
	f.email.On("SendContractCreatedNotification", mock.Anything, "pagos@sur.pe", "Constructora Sur", "ARR-202501-0001", mock.Anything).
		Return(nil)

	contract, err := f.svc.CreateContract(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "ARR-202501-0001", contract.Number)
	assert.Equal(t, domain.ContractStatusDraft, contract.Status)
	assert.Equal(t, int32(9), contract.TotalDays)

	// 2 units x 100/day x 9 days = 1800; 10% off = 180; +50 transport = 1670
	// taxable; IGV 300.60.
	assert.True(t, decimal.NewFromInt(1800).Equal(contract.Subtotal), "subtotal: %s", contract.Subtotal)
	assert.True(t, decimal.NewFromInt(180).Equal(contract.DiscountAmount), "discount: %s", contract.DiscountAmount)
	assert.True(t, decimal.NewFromFloat(300.60).Equal(contract.Tax), "tax: %s", contract.Tax)
	assert.True(t, decimal.NewFromFloat(1970.60).Equal(contract.Total), "total: %s", contract.Total)

	require.Len(t, savedLines, 1)
	assert.Equal(t, domain.PeriodUnitDay, savedLines[0].PeriodUnit)
	assert.Equal(t, int32(9), savedLines[0].PeriodCount)
	assert.True(t, decimal.NewFromInt(100).Equal(savedLines[0].UnitPrice))
	assert.Equal(t, domain.LineStatusPending, savedLines[0].Status)

	f.email.AssertExpectations(t)
}

func TestCreateContractRetriesOnDuplicateNumber(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Client{ID: 3, Name: "Constructora Sur"}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).
		Return(&domain.Equipment{ID: 1, PricePerDay: decimal.NewFromInt(100)}, nil)

	f.numbering.On("GenerateContractNumber", mock.Anything).Return("ARR-202501-0005", nil).Once()
	f.numbering.On("GenerateContractNumber", mock.Anything).Return("ARR-202501-0006", nil).Once()
	f.contracts.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrDuplicateNumber).Once()
	f.contracts.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()

	contract, err := f.svc.CreateContract(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "ARR-202501-0006", contract.Number)
	f.numbering.AssertNumberOfCalls(t, "GenerateContractNumber", 2)
}

func TestCreateContractGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Client{ID: 3}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).
		Return(&domain.Equipment{ID: 1, PricePerDay: decimal.NewFromInt(100)}, nil)
	f.numbering.On("GenerateContractNumber", mock.Anything).Return("ARR-202501-0005", nil)
	f.contracts.On("CreateWithLines", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrDuplicateNumber)

	_, err := f.svc.CreateContract(context.Background(), validCreateRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "number collisions")
	f.numbering.AssertNumberOfCalls(t, "GenerateContractNumber", createAttempts)
}

func TestQuoteContractPersistsNothing(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Client{ID: 3}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).
		Return(&domain.Equipment{ID: 1, PricePerDay: decimal.NewFromInt(80), PricePerWeek: decimal.NewFromInt(350)}, nil)

	req := validCreateRequest()
	req.RatePlan = domain.RatePlanWeekly
	req.Lines[0].Quantity = 1

	quote, err := f.svc.QuoteContract(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int32(9), quote.TotalDays)
	require.Len(t, quote.Lines, 1)
	// 9 days on a weekly plan bill as 2 weeks at the weekly rate.
	assert.Equal(t, int32(2), quote.Lines[0].PeriodCount)
	assert.Equal(t, domain.PeriodUnitWeek, quote.Lines[0].PeriodUnit)
	assert.True(t, decimal.NewFromInt(350).Equal(quote.Lines[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(700).Equal(quote.Totals.Subtotal))

	f.contracts.AssertNotCalled(t, "CreateWithLines", mock.Anything, mock.Anything, mock.Anything)
	f.numbering.AssertNotCalled(t, "GenerateContractNumber", mock.Anything)
}

func TestQuoteContractAppliesOverrides(t *testing.T) {
	f := newContractFixture()
	f.clients.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Client{ID: 3}, nil)
	f.equipment.On("GetByID", mock.Anything, int32(1)).
		Return(&domain.Equipment{ID: 1, PricePerDay: decimal.NewFromInt(100)}, nil)

	override := decimal.NewFromInt(90)
	periods := int32(5)
	req := validCreateRequest()
	req.Lines[0].UnitPriceOverride = &override
	req.Lines[0].PeriodCountOverride = &periods

	quote, err := f.svc.QuoteContract(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(quote.Lines[0].UnitPrice))
	assert.Equal(t, int32(5), quote.Lines[0].PeriodCount)
	// 2 x 90 x 5
	assert.True(t, decimal.NewFromInt(900).Equal(quote.Lines[0].Subtotal))
}

func TestChangeStatus(t *testing.T) {
	t.Run("DraftToApproved", func(t *testing.T) {
		f := newContractFixture()
		f.contracts.On("GetByID", mock.Anything, int32(5)).
			Return(&domain.Contract{ID: 5, Status: domain.ContractStatusDraft}, nil)
		f.contracts.On("UpdateStatus", mock.Anything, int32(5), domain.ContractStatusApproved).
			Return(nil)

		contract, err := f.svc.ChangeStatus(context.Background(), 5, domain.ContractStatusApproved)

		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusApproved, contract.Status)
	})

	t.Run("CompletedIsTerminal", func(t *testing.T) {
		f := newContractFixture()
		f.contracts.On("GetByID", mock.Anything, int32(5)).
			Return(&domain.Contract{ID: 5, Status: domain.ContractStatusCompleted}, nil)

		_, err := f.svc.ChangeStatus(context.Background(), 5, domain.ContractStatusActive)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		f.contracts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ActiveCannotBeCancelled", func(t *testing.T) {
		f := newContractFixture()
		f.contracts.On("GetByID", mock.Anything, int32(5)).
			Return(&domain.Contract{ID: 5, Status: domain.ContractStatusActive}, nil)

		_, err := f.svc.ChangeStatus(context.Background(), 5, domain.ContractStatusCancelled)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestListContractsDefaultsPaging(t *testing.T) {
	f := newContractFixture()
	f.contracts.On("List", mock.Anything, "", int32(1), int32(20)).
		Return([]domain.Contract{}, int32(0), nil)

	_, _, err := f.svc.ListContracts(context.Background(), "", 0, 0)

	require.NoError(t, err)
	f.contracts.AssertExpectations(t)
}
