package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

const calculationsSchema = `
CREATE TABLE IF NOT EXISTS calculations (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	house_type  TEXT NOT NULL,
	input_data  JSONB NOT NULL,
	result_data JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS calculations_user_id_idx ON calculations (user_id);`

type calculationRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	HouseType  string    `db:"house_type"`
	InputData  []byte    `db:"input_data"`
	ResultData []byte    `db:"result_data"`
	CreatedAt  time.Time `db:"created_at"`
}

// CalculationPostgresRepository persists Calculation entities in PostgreSQL
// with the geometry and result kept as JSONB.

type CalculationPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.ICalculationRepository = (*CalculationPostgresRepository)(nil)

func NewCalculationPostgresRepository(db *sqlx.DB) *CalculationPostgresRepository {
	return &CalculationPostgresRepository{db: db}
}

// EnsureSchema creates the calculations table when missing.
func (r *CalculationPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, calculationsSchema); err != nil {
		return fmt.Errorf("failed to create calculations schema: %w", err)
	}
	return nil
}

func (r *CalculationPostgresRepository) Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error) {
	row, err := toCalculationRow(c)
	if err != nil {
		return entities.Calculation{}, err
	}

	const query = `
		INSERT INTO calculations (id, user_id, house_type, input_data, result_data, created_at)
		VALUES (:id, :user_id, :house_type, :input_data, :result_data, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return entities.Calculation{}, fmt.Errorf("failed to insert calculation: %w", err)
	}
	return c, nil
}

func (r *CalculationPostgresRepository) GetByID(ctx context.Context, id string) (entities.Calculation, error) {
	const query = `
		SELECT id, user_id, house_type, input_data, result_data, created_at
		FROM calculations
		WHERE id = $1`

	var row calculationRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Calculation{}, nil
		}
		return entities.Calculation{}, fmt.Errorf("failed to query calculation: %w", err)
	}
	return fromCalculationRow(row)
}

func (r *CalculationPostgresRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Calculation, error) {
	const query = `
		SELECT id, user_id, house_type, input_data, result_data, created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at`

	var rows []calculationRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}

	items := make([]entities.Calculation, 0, len(rows))
	for _, row := range rows {
		c, err := fromCalculationRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}

func toCalculationRow(c entities.Calculation) (calculationRow, error) {
	input, err := json.Marshal(c.InputData)
	if err != nil {
		return calculationRow{}, fmt.Errorf("marshal input data: %w", err)
	}
	result, err := json.Marshal(c.ResultData)
	if err != nil {
		return calculationRow{}, fmt.Errorf("marshal result data: %w", err)
	}
	return calculationRow{
		ID:         c.ID,
		UserID:     c.UserID,
		HouseType:  string(c.HouseType),
		InputData:  input,
		ResultData: result,
		CreatedAt:  c.CreatedAt.UTC(),
	}, nil
}

func fromCalculationRow(row calculationRow) (entities.Calculation, error) {
	c := entities.Calculation{
		ID:        row.ID,
		UserID:    row.UserID,
		HouseType: entities.HouseType(row.HouseType),
		CreatedAt: row.CreatedAt.UTC(),
	}
	if err := json.Unmarshal(row.InputData, &c.InputData); err != nil {
		return entities.Calculation{}, fmt.Errorf("unmarshal input data: %w", err)
	}
	if err := json.Unmarshal(row.ResultData, &c.ResultData); err != nil {
		return entities.Calculation{}, fmt.Errorf("unmarshal result data: %w", err)
	}
	return c, nil
}
