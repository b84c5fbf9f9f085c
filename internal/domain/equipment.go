package domain

import "github.com/shopspring/decimal"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "disponible"
	EquipmentStatusRented      EquipmentStatus = "arrendado"
	EquipmentStatusMaintenance EquipmentStatus = "mantenimiento"
	EquipmentStatusRetired     EquipmentStatus = "baja"
)

// Equipment is a catalog item. The pricing engine only reads its list
// prices; contract lines copy the chosen price at selection time.
type Equipment struct {
	ID            int32           `json:"id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nombre"`
	Category      string          `json:"categoria"`
	Brand         string          `json:"marca"`
	Model         string          `json:"modelo"`
	SerialNumber  string          `json:"numero_serie"`
	PricePerDay   decimal.Decimal `json:"precio_dia"`
	PricePerWeek  decimal.Decimal `json:"precio_semana"`
	PricePerMonth decimal.Decimal `json:"precio_mes"`
	Status        EquipmentStatus `json:"estado"`
	CreatedOn     string          `json:"creado_en"`
}

// PriceFor returns the catalog list price matching the billing cadence.
// Weekly and monthly plans fall back to the daily price when the specific
// rate is not set; custom plans always start from the daily price.
func (e *Equipment) PriceFor(plan RatePlan) decimal.Decimal {
	switch plan {
	case RatePlanWeekly:
		if e.PricePerWeek.IsPositive() {
			return e.PricePerWeek
		}
	case RatePlanMonthly:
		if e.PricePerMonth.IsPositive() {
			return e.PricePerMonth
		}
	}
	return e.PricePerDay
}
