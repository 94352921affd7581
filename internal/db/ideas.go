package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

// IdeaStore is the pgx-backed implementation of the workflow's idea store
// contract.
type IdeaStore struct {
	db *DB
}

// Ideas returns the idea store backed by this database.
func (d *DB) Ideas() *IdeaStore {
	return &IdeaStore{db: d}
}

const ideaColumns = `id, owner_id, title, description, category, status, supervisor_id, created_at, updated_at`

func scanIdea(row pgx.Row) (*models.Idea, error) {
	var idea models.Idea
	err := row.Scan(
		&idea.ID,
		&idea.OwnerID,
		&idea.Title,
		&idea.Description,
		&idea.Category,
		&idea.Status,
		&idea.SupervisorID,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workflow.ErrIdeaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByOwner retrieves an owner's idea, any status.
func (s *IdeaStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Idea, error) {
	return scanIdea(s.db.conn(ctx).QueryRow(ctx,
		`SELECT `+ideaColumns+` FROM ideas WHERE owner_id = $1`, ownerID))
}

// GetByID retrieves an idea by its id.
func (s *IdeaStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	return scanIdea(s.db.conn(ctx).QueryRow(ctx,
		`SELECT `+ideaColumns+` FROM ideas WHERE id = $1`, id))
}

// Insert creates a new idea row. The one-idea-per-owner unique index backs
// the coordinator's check against concurrent creates.
func (s *IdeaStore) Insert(ctx context.Context, idea *models.Idea) error {
	query := `
		INSERT INTO ideas (id, owner_id, title, description, category, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := s.db.conn(ctx).QueryRow(ctx, query,
		idea.ID,
		idea.OwnerID,
		idea.Title,
		idea.Description,
		idea.Category,
		idea.Status,
	).Scan(&idea.CreatedAt, &idea.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workflow.ErrDuplicateIdea
		}
		return err
	}
	return nil
}

// UpdateContent replaces the owner-editable content fields.
func (s *IdeaStore) UpdateContent(ctx context.Context, id uuid.UUID, title, description, category string) error {
	result, err := s.db.conn(ctx).Exec(ctx, `
		UPDATE ideas
		SET title = $1, description = $2, category = $3, updated_at = NOW()
		WHERE id = $4
	`, title, description, category, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrIdeaNotFound
	}
	return nil
}

// SetStatus transitions the idea's status. supervisorID is recorded when the
// idea goes public and cleared otherwise.
func (s *IdeaStore) SetStatus(ctx context.Context, id uuid.UUID, status string, supervisorID *uuid.UUID) error {
	result, err := s.db.conn(ctx).Exec(ctx, `
		UPDATE ideas
		SET status = $1, supervisor_id = $2, updated_at = NOW()
		WHERE id = $3
	`, status, supervisorID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrIdeaNotFound
	}
	return nil
}

// Delete removes an idea row.
func (s *IdeaStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.conn(ctx).Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrIdeaNotFound
	}
	return nil
}

// GetPublicIdeas returns all public ideas with owner and supervisor names
// for the mobile app's sparks feed. An empty category matches everything.
func (d *DB) GetPublicIdeas(ctx context.Context, category string, limit int) ([]models.Idea, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT i.id, i.owner_id, i.title, i.description, i.category, i.status,
			i.supervisor_id, i.created_at, i.updated_at,
			COALESCE(o.name, ''), COALESCE(s.name, '')
		FROM ideas i
		JOIN users o ON o.id = i.owner_id
		LEFT JOIN users s ON s.id = i.supervisor_id
		WHERE i.status = $1 AND ($2 = '' OR i.category = $2)
		ORDER BY i.updated_at DESC
		LIMIT $3
	`, models.IdeaStatusPublic, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var idea models.Idea
		if err := rows.Scan(
			&idea.ID, &idea.OwnerID, &idea.Title, &idea.Description, &idea.Category,
			&idea.Status, &idea.SupervisorID, &idea.CreatedAt, &idea.UpdatedAt,
			&idea.OwnerName, &idea.SupervisorName,
		); err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// CountIdeasByStatus returns idea counts keyed by status, for metrics.
func (d *DB) CountIdeasByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := d.conn(ctx).Query(ctx,
		`SELECT status, COUNT(*) FROM ideas GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
