package domain

// SequenceCategory names one independent identifier series. Each category
// has its own prefix and time bucket; suffixes restart at 1 per bucket.
type SequenceCategory string

const (
	SequenceContract  SequenceCategory = "arriendo"
	SequencePayment   SequenceCategory = "pago"
	SequenceEquipment SequenceCategory = "equipo"
)
