package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, numero_contrato, cliente_id, fecha_inicio, fecha_fin_estimada, dias_totales,
	tipo_arriendo, modalidad, lugar_entrega, lugar_devolucion,
	incluye_transporte, costo_transporte, incluye_operador, costo_operador,
	subtotal, descuento_porcentaje, descuento_monto, igv, total,
	observaciones, estado, creado_en`

// CreateWithLines writes the contract header and every line item inside one
// transaction. A failure on any insert rolls back the whole contract; a
// unique violation on numero_contrato comes back as ErrDuplicateNumber so
// the service can regenerate and retry.
func (r *contractRepository) CreateWithLines(ctx context.Context, c *domain.Contract, lines []domain.ContractLine) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin contract transaction: %w", err)
	}
	defer tx.Rollback()

	headerQuery := `INSERT INTO arriendos (numero_contrato, cliente_id, fecha_inicio, fecha_fin_estimada, dias_totales,
		tipo_arriendo, modalidad, lugar_entrega, lugar_devolucion,
		incluye_transporte, costo_transporte, incluye_operador, costo_operador,
		subtotal, descuento_porcentaje, descuento_monto, igv, total,
		observaciones, estado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`
	err = tx.QueryRowContext(ctx, headerQuery,
		c.Number, c.ClientID, c.StartDate, c.EndDate, c.TotalDays,
		c.RatePlan, c.Modality, c.DeliveryAddress, c.ReturnAddress,
		c.IncludesTransport, c.TransportFee, c.IncludesOperator, c.OperatorFee,
		c.Subtotal, c.DiscountPercent, c.DiscountAmount, c.Tax, c.Total,
		c.Notes, c.Status, c.CreatedOn,
	).Scan(&c.ID)
	if err != nil {
		return translateUnique(err)
	}

	lineQuery := `INSERT INTO arriendo_items (arriendo_id, equipo_id, cantidad, precio_unitario, unidad_tiempo, cantidad_tiempo, subtotal, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	for i := range lines {
		lines[i].ContractID = c.ID
		l := &lines[i]
		err = tx.QueryRowContext(ctx, lineQuery,
			l.ContractID, l.EquipmentID, l.Quantity, l.UnitPrice,
			l.PeriodUnit, l.PeriodCount, l.Subtotal, l.Status,
		).Scan(&l.ID)
		if err != nil {
			return fmt.Errorf("insert contract line %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit contract: %w", err)
	}
	return nil
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	c := &domain.Contract{}
	query := `SELECT ` + contractColumns + ` FROM arriendos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Number, &c.ClientID, &c.StartDate, &c.EndDate, &c.TotalDays,
		&c.RatePlan, &c.Modality, &c.DeliveryAddress, &c.ReturnAddress,
		&c.IncludesTransport, &c.TransportFee, &c.IncludesOperator, &c.OperatorFee,
		&c.Subtotal, &c.DiscountPercent, &c.DiscountAmount, &c.Tax, &c.Total,
		&c.Notes, &c.Status, &c.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) GetLines(ctx context.Context, contractID int32) ([]domain.ContractLine, error) {
	query := `SELECT id, arriendo_id, equipo_id, cantidad, precio_unitario, unidad_tiempo, cantidad_tiempo, subtotal, estado
		FROM arriendo_items WHERE arriendo_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.ContractLine
	for rows.Next() {
		var l domain.ContractLine
		if err := rows.Scan(&l.ID, &l.ContractID, &l.EquipmentID, &l.Quantity,
			&l.UnitPrice, &l.PeriodUnit, &l.PeriodCount, &l.Subtotal, &l.Status); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *contractRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + contractColumns + ` FROM arriendos`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE estado = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY creado_en DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(
			&c.ID, &c.Number, &c.ClientID, &c.StartDate, &c.EndDate, &c.TotalDays,
			&c.RatePlan, &c.Modality, &c.DeliveryAddress, &c.ReturnAddress,
			&c.IncludesTransport, &c.TransportFee, &c.IncludesOperator, &c.OperatorFee,
			&c.Subtotal, &c.DiscountPercent, &c.DiscountAmount, &c.Tax, &c.Total,
			&c.Notes, &c.Status, &c.CreatedOn,
		); err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE arriendos SET estado = $1 WHERE id = $2`, status, id)
	return err
}

func (r *contractRepository) ListDueForActivation(ctx context.Context, asOf string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM arriendos WHERE estado = $1 AND fecha_inicio <= $2`
	return r.queryContracts(ctx, query, domain.ContractStatusApproved, asOf)
}

func (r *contractRepository) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM arriendos WHERE estado = $1 AND fecha_fin_estimada BETWEEN $2 AND $3`
	return r.queryContracts(ctx, query, domain.ContractStatusActive, from, to)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, args ...interface{}) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(
			&c.ID, &c.Number, &c.ClientID, &c.StartDate, &c.EndDate, &c.TotalDays,
			&c.RatePlan, &c.Modality, &c.DeliveryAddress, &c.ReturnAddress,
			&c.IncludesTransport, &c.TransportFee, &c.IncludesOperator, &c.OperatorFee,
			&c.Subtotal, &c.DiscountPercent, &c.DiscountAmount, &c.Tax, &c.Total,
			&c.Notes, &c.Status, &c.CreatedOn,
		); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
