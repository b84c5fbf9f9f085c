package postgres

import (
	"context"
	"database/sql"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clientes (nombre, ruc_dni, email, telefono, direccion, persona_contacto, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Document, c.Email, c.Phone, c.Address, c.Contact, c.CreatedOn,
	).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, nombre, ruc_dni, email, telefono, direccion, persona_contacto, creado_en FROM clientes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address, &c.Contact, &c.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, nombre, ruc_dni, email, telefono, direccion, persona_contacto, creado_en FROM clientes ORDER BY nombre`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address, &c.Contact, &c.CreatedOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
