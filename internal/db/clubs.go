package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"youthhub/internal/models"
)

// GetClubs returns all clubs, optionally filtered by category.
func (d *DB) GetClubs(ctx context.Context, category string) ([]models.Club, error) {
	query := `
		SELECT id, name, description, category, created_by, created_at
		FROM clubs
	`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name ASC`

	rows, err := d.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

// GetClubByID retrieves a single club.
func (d *DB) GetClubByID(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	var c models.Club
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, name, description, category, created_by, created_at
		FROM clubs WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.CreatedBy, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateClub inserts a new club.
func (d *DB) CreateClub(ctx context.Context, c *models.Club) error {
	return d.conn(ctx).QueryRow(ctx, `
		INSERT INTO clubs (name, description, category, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, c.Name, c.Description, c.Category, c.CreatedBy).Scan(&c.ID, &c.CreatedAt)
}

// DeleteClub removes a club.
func (d *DB) DeleteClub(ctx context.Context, id uuid.UUID) error {
	result, err := d.conn(ctx).Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrClubNotFound
	}
	return nil
}
