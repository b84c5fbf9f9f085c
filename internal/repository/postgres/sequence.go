package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentamaq-backend/internal/domain"
	"rentamaq-backend/internal/repository"
	"rentamaq-backend/internal/sequence"
)

type sequenceRepository struct {
	db *sql.DB
}

func NewSequenceRepository(db *sql.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// seedQueries return the lexicographically greatest identifier already
// issued in a bucket. Identifiers are fixed-width zero-padded, so the
// lexicographic max is the numeric max.
var seedQueries = map[domain.SequenceCategory]string{
	domain.SequenceContract:  `SELECT numero_contrato FROM arriendos WHERE numero_contrato LIKE $1 ORDER BY numero_contrato DESC LIMIT 1`,
	domain.SequencePayment:   `SELECT numero_pago FROM pagos WHERE numero_pago LIKE $1 ORDER BY numero_pago DESC LIMIT 1`,
	domain.SequenceEquipment: `SELECT codigo FROM equipos WHERE codigo LIKE $1 ORDER BY codigo DESC LIMIT 1`,
}

// NextValue reserves the next counter value for the bucket. The counter row
// is locked with FOR UPDATE so two concurrent requests in the same bucket
// serialize on the increment instead of both reading the same maximum.
func (r *sequenceRepository) NextValue(ctx context.Context, cat domain.SequenceCategory, bucket string) (int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sequence transaction: %w", err)
	}
	defer tx.Rollback()

	var last int32
	err = tx.QueryRowContext(ctx,
		`SELECT last_value FROM sequence_counters WHERE categoria = $1 AND bucket = $2 FOR UPDATE`,
		cat, bucket).Scan(&last)

	var next int32
	switch {
	case errors.Is(err, sql.ErrNoRows):
		seed, err := r.seedFromIssued(ctx, tx, cat, bucket)
		if err != nil {
			return 0, err
		}
		next = seed + 1
		// A concurrent first touch of the same bucket hits the primary key
		// here; the caller retries.
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sequence_counters (categoria, bucket, last_value) VALUES ($1, $2, $3)`,
			cat, bucket, next); err != nil {
			return 0, fmt.Errorf("insert sequence counter: %w", translateUnique(err))
		}
	case err != nil:
		return 0, fmt.Errorf("lock sequence counter: %w", err)
	default:
		next = last + 1
		if _, err := tx.ExecContext(ctx,
			`UPDATE sequence_counters SET last_value = $3 WHERE categoria = $1 AND bucket = $2`,
			cat, bucket, next); err != nil {
			return 0, fmt.Errorf("advance sequence counter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence counter: %w", err)
	}
	return next, nil
}

// seedFromIssued scans the legacy identifier column for the highest suffix
// already issued in the bucket. An empty bucket or an unparsable identifier
// seeds at 0, restarting the series at 1.
func (r *sequenceRepository) seedFromIssued(ctx context.Context, tx *sql.Tx, cat domain.SequenceCategory, bucket string) (int32, error) {
	query, ok := seedQueries[cat]
	if !ok {
		return 0, fmt.Errorf("unknown sequence category %q", cat)
	}

	pattern := sequence.Prefix(cat) + bucket + "-%"
	var identifier string
	err := tx.QueryRowContext(ctx, query, pattern).Scan(&identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("seed sequence counter: %w", err)
	}

	suffix, ok := sequence.ParseSuffix(identifier)
	if !ok {
		return 0, nil
	}
	return suffix, nil
}

func translateUnique(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrDuplicateNumber
	}
	return err
}
