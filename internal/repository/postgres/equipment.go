package postgres

import (
	"context"
	"database/sql"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `id, codigo, nombre, categoria, marca, modelo, numero_serie, precio_dia, precio_semana, precio_mes, estado, creado_en`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	query := `INSERT INTO equipos (codigo, nombre, categoria, marca, modelo, numero_serie, precio_dia, precio_semana, precio_mes, estado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		eq.Code, eq.Name, eq.Category, eq.Brand, eq.Model, eq.SerialNumber,
		eq.PricePerDay, eq.PricePerWeek, eq.PricePerMonth, eq.Status, eq.CreatedOn,
	).Scan(&eq.ID)
	if err != nil {
		return translateUnique(err)
	}
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	query := `SELECT ` + equipmentColumns + ` FROM equipos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&eq.ID, &eq.Code, &eq.Name, &eq.Category, &eq.Brand, &eq.Model, &eq.SerialNumber,
		&eq.PricePerDay, &eq.PricePerWeek, &eq.PricePerMonth, &eq.Status, &eq.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return eq, nil
}

func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipos SET nombre=$1, categoria=$2, marca=$3, modelo=$4, numero_serie=$5,
		precio_dia=$6, precio_semana=$7, precio_mes=$8, estado=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Category, eq.Brand, eq.Model, eq.SerialNumber,
		eq.PricePerDay, eq.PricePerWeek, eq.PricePerMonth, eq.Status, eq.ID)
	return err
}

func (r *equipmentRepository) List(ctx context.Context, status string) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipos`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE estado = $1`
		args = append(args, status)
	}
	query += ` ORDER BY codigo`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		if err := rows.Scan(&eq.ID, &eq.Code, &eq.Name, &eq.Category, &eq.Brand, &eq.Model,
			&eq.SerialNumber, &eq.PricePerDay, &eq.PricePerWeek, &eq.PricePerMonth,
			&eq.Status, &eq.CreatedOn); err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}
