package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"youthhub/internal/models"
)

// GetUpcomingEvents returns events starting after now, soonest first.
func (d *DB) GetUpcomingEvents(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, title, description, location, starts_at, created_by, created_at
		FROM events
		WHERE starts_at >= NOW()
		ORDER BY starts_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEventByID retrieves a single event.
func (d *DB) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var e models.Event
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, title, description, location, starts_at, created_by, created_at
		FROM events WHERE id = $1
	`, id).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsAt, &e.CreatedBy, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEvent inserts a new event.
func (d *DB) CreateEvent(ctx context.Context, e *models.Event) error {
	return d.conn(ctx).QueryRow(ctx, `
		INSERT INTO events (title, description, location, starts_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, e.Title, e.Description, e.Location, e.StartsAt, e.CreatedBy).Scan(&e.ID, &e.CreatedAt)
}

// DeleteEvent removes an event.
func (d *DB) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result, err := d.conn(ctx).Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}
