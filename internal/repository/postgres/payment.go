package postgres

import (
	"context"
	"database/sql"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, numero_pago, arriendo_id, monto, metodo, referencia, estado, fecha_pago, creado_en`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO pagos (numero_pago, arriendo_id, monto, metodo, referencia, estado, fecha_pago, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		p.Number, p.ContractID, p.Amount, p.Method, p.Reference, p.Status, p.PaidOn, p.CreatedOn,
	).Scan(&p.ID)
	if err != nil {
		return translateUnique(err)
	}
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM pagos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Number, &p.ContractID, &p.Amount, &p.Method, &p.Reference, &p.Status, &p.PaidOn, &p.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM pagos WHERE arriendo_id = $1 ORDER BY creado_en DESC`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Number, &p.ContractID, &p.Amount, &p.Method,
			&p.Reference, &p.Status, &p.PaidOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE pagos SET estado = $1 WHERE id = $2`, status, id)
	return err
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pagos WHERE id = $1`, id)
	return err
}
