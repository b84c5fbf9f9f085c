package postgres

import (
	"database/sql"
	"errors"

	"rentamaq-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.EquipmentRepository
	repository.ContractRepository
	repository.PaymentRepository
	repository.SequenceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		ClientRepository:    NewClientRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		ContractRepository:  NewContractRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		SequenceRepository:  NewSequenceRepository(db),
	}
}

// isUniqueViolation reports whether err is the postgres unique-constraint
// error (23505). The unique index on business numbers is the final arbiter
// of identifier uniqueness.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
