package domain

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pendiente"
	PaymentStatusReceived  PaymentStatus = "recibido"
	PaymentStatusConfirmed PaymentStatus = "confirmado"
	PaymentStatusVoided    PaymentStatus = "anulado"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "efectivo"
	PaymentMethodTransfer PaymentMethod = "transferencia"
	PaymentMethodCard     PaymentMethod = "tarjeta"
	PaymentMethodCheck    PaymentMethod = "cheque"
)

type Payment struct {
	ID         int32           `json:"id"`
	Number     string          `json:"numero_pago"`
	ContractID int32           `json:"arriendo_id"`
	Amount     decimal.Decimal `json:"monto"`
	Method     PaymentMethod   `json:"metodo"`
	Reference  string          `json:"referencia"`
	Status     PaymentStatus   `json:"estado"`
	PaidOn     string          `json:"fecha_pago"`
	CreatedOn  string          `json:"creado_en"`
}
