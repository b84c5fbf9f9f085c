package domain

import "github.com/shopspring/decimal"

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "borrador"
	ContractStatusApproved  ContractStatus = "aprobado"
	ContractStatusActive    ContractStatus = "activo"
	ContractStatusCompleted ContractStatus = "completado"
	ContractStatusCancelled ContractStatus = "cancelado"
)

// CanTransitionTo reports whether the status change is legal:
// borrador -> aprobado -> activo -> completado, with cancelado
// reachable from borrador and aprobado.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	switch s {
	case ContractStatusDraft:
		return next == ContractStatusApproved || next == ContractStatusCancelled
	case ContractStatusApproved:
		return next == ContractStatusActive || next == ContractStatusCancelled
	case ContractStatusActive:
		return next == ContractStatusCompleted
	default:
		return false
	}
}

type RatePlan string

const (
	RatePlanDaily   RatePlan = "diario"
	RatePlanWeekly  RatePlan = "semanal"
	RatePlanMonthly RatePlan = "mensual"
	RatePlanCustom  RatePlan = "personalizado"
)

type Modality string

const (
	ModalityEquipmentOnly Modality = "solo_equipo"
	ModalityWithOperator  Modality = "con_operador"
)

type PeriodUnit string

const (
	PeriodUnitDay   PeriodUnit = "dia"
	PeriodUnitWeek  PeriodUnit = "semana"
	PeriodUnitMonth PeriodUnit = "mes"
)

type Contract struct {
	ID        int32    `json:"id"`
	Number    string   `json:"numero_contrato"`
	ClientID  int32    `json:"cliente_id"`
	StartDate string   `json:"fecha_inicio"`
	EndDate   string   `json:"fecha_fin_estimada"`
	TotalDays int32    `json:"dias_totales"`
	RatePlan  RatePlan `json:"tipo_arriendo"`
	Modality  Modality `json:"modalidad"`

	DeliveryAddress string `json:"lugar_entrega"`
	ReturnAddress   string `json:"lugar_devolucion"`

	IncludesTransport bool            `json:"incluye_transporte"`
	TransportFee      decimal.Decimal `json:"costo_transporte"`
	IncludesOperator  bool            `json:"incluye_operador"`
	OperatorFee       decimal.Decimal `json:"costo_operador"`

	// Monetary fields are snapshots taken at creation time. Later catalog
	// price changes never touch a persisted contract.
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"descuento_porcentaje"`
	DiscountAmount  decimal.Decimal `json:"descuento_monto"`
	Tax             decimal.Decimal `json:"igv"`
	Total           decimal.Decimal `json:"total"`

	Notes     string         `json:"observaciones"`
	Status    ContractStatus `json:"estado"`
	CreatedOn string         `json:"creado_en"`
}

type LineStatus string

const (
	LineStatusPending   LineStatus = "pendiente"
	LineStatusDelivered LineStatus = "entregado"
	LineStatusReturned  LineStatus = "devuelto"
)

// ContractLine is one equipment selection within a contract. The unit price
// is copied from the catalog when the line is built, never referenced live.
type ContractLine struct {
	ID          int32           `json:"id"`
	ContractID  int32           `json:"arriendo_id"`
	EquipmentID int32           `json:"equipo_id"`
	Quantity    int32           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	PeriodUnit  PeriodUnit      `json:"unidad_tiempo"`
	PeriodCount int32           `json:"cantidad_tiempo"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Status      LineStatus      `json:"estado"`
}
