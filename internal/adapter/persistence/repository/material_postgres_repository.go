package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

const materialsSchema = `
CREATE TABLE IF NOT EXISTS materials (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	type           TEXT NOT NULL,
	house_type     TEXT,
	price_per_unit DOUBLE PRECISION NOT NULL,
	unit           TEXT NOT NULL,
	description    TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS materials_house_type_idx ON materials (house_type);`

type materialRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Type         string         `db:"type"`
	HouseType    sql.NullString `db:"house_type"`
	PricePerUnit float64        `db:"price_per_unit"`
	Unit         string         `db:"unit"`
	Description  sql.NullString `db:"description"`
}

// MaterialPostgresRepository stores the price catalog in PostgreSQL. Listing
// order is insertion order so price lookups stay stable.

type MaterialPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IMaterialRepository = (*MaterialPostgresRepository)(nil)

func NewMaterialPostgresRepository(db *sqlx.DB) *MaterialPostgresRepository {
	return &MaterialPostgresRepository{db: db}
}

func (r *MaterialPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, materialsSchema); err != nil {
		return fmt.Errorf("failed to create materials schema: %w", err)
	}
	return nil
}

func (r *MaterialPostgresRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	const query = `
		INSERT INTO materials (id, name, type, house_type, price_per_unit, unit, description)
		VALUES (:id, :name, :type, :house_type, :price_per_unit, :unit, :description)`
	if _, err := r.db.NamedExecContext(ctx, query, toMaterialRow(m)); err != nil {
		return entities.Material{}, fmt.Errorf("failed to insert material: %w", err)
	}
	return m, nil
}

func (r *MaterialPostgresRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	const query = `
		SELECT id, name, type, house_type, price_per_unit, unit, description
		FROM materials
		WHERE id = $1`

	var row materialRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Material{}, nil
		}
		return entities.Material{}, fmt.Errorf("failed to query material: %w", err)
	}
	return fromMaterialRow(row), nil
}

func (r *MaterialPostgresRepository) List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error) {
	query := `
		SELECT id, name, type, house_type, price_per_unit, unit, description
		FROM materials`
	var args []any
	if houseType != nil {
		query += ` WHERE house_type = $1`
		args = append(args, string(*houseType))
	}
	query += ` ORDER BY created_at, id`

	var rows []materialRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}

	items := make([]entities.Material, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromMaterialRow(row))
	}
	return items, nil
}

func (r *MaterialPostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM materials`); err != nil {
		return 0, fmt.Errorf("failed to count materials: %w", err)
	}
	return n, nil
}

func toMaterialRow(m entities.Material) materialRow {
	row := materialRow{
		ID:           m.ID,
		Name:         m.Name,
		Type:         string(m.Type),
		PricePerUnit: m.PricePerUnit,
		Unit:         m.Unit,
		Description:  sql.NullString{String: m.Description, Valid: m.Description != ""},
	}
	if m.HouseType != nil {
		row.HouseType = sql.NullString{String: string(*m.HouseType), Valid: true}
	}
	return row
}

func fromMaterialRow(row materialRow) entities.Material {
	m := entities.Material{
		ID:           row.ID,
		Name:         row.Name,
		Type:         entities.MaterialType(row.Type),
		PricePerUnit: row.PricePerUnit,
		Unit:         row.Unit,
		Description:  row.Description.String,
	}
	if row.HouseType.Valid && row.HouseType.String != "" {
		ht := entities.HouseType(row.HouseType.String)
		m.HouseType = &ht
	}
	return m
}
