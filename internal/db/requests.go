package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"youthhub/internal/models"
	"youthhub/internal/workflow"
)

// RequestStore is the pgx-backed implementation of the workflow's
// supervision request store contract.
type RequestStore struct {
	db *DB
}

// Requests returns the request store backed by this database.
func (d *DB) Requests() *RequestStore {
	return &RequestStore{db: d}
}

const requestColumns = `id, idea_id, owner_id, supervisor_id, status, created_at, decided_at`

func scanRequest(row pgx.Row) (*models.SupervisionRequest, error) {
	var req models.SupervisionRequest
	err := row.Scan(
		&req.ID,
		&req.IdeaID,
		&req.OwnerID,
		&req.SupervisorID,
		&req.Status,
		&req.CreatedAt,
		&req.DecidedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workflow.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetPendingByOwner retrieves the owner's pending request, if any. The
// partial unique index guarantees at most one row.
func (s *RequestStore) GetPendingByOwner(ctx context.Context, ownerID uuid.UUID) (*models.SupervisionRequest, error) {
	return scanRequest(s.db.conn(ctx).QueryRow(ctx,
		`SELECT `+requestColumns+` FROM supervision_requests WHERE owner_id = $1 AND status = $2`,
		ownerID, models.RequestStatusPending))
}

// GetByID retrieves a request by its id.
func (s *RequestStore) GetByID(ctx context.Context, id uuid.UUID) (*models.SupervisionRequest, error) {
	return scanRequest(s.db.conn(ctx).QueryRow(ctx,
		`SELECT `+requestColumns+` FROM supervision_requests WHERE id = $1`, id))
}

// Insert creates a new request row. The one-pending-per-owner partial
// unique index backs the coordinator's duplicate check.
func (s *RequestStore) Insert(ctx context.Context, req *models.SupervisionRequest) error {
	query := `
		INSERT INTO supervision_requests (id, idea_id, owner_id, supervisor_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.conn(ctx).Exec(ctx, query,
		req.ID,
		req.IdeaID,
		req.OwnerID,
		req.SupervisorID,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return workflow.ErrDuplicatePending
		}
		return err
	}
	return nil
}

// SetStatus transitions a request's status and records the decision time.
func (s *RequestStore) SetStatus(ctx context.Context, id uuid.UUID, status string, decidedAt *time.Time) error {
	result, err := s.db.conn(ctx).Exec(ctx, `
		UPDATE supervision_requests
		SET status = $1, decided_at = $2
		WHERE id = $3
	`, status, decidedAt, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return workflow.ErrRequestNotFound
	}
	return nil
}

// GetPendingForSupervisor returns the supervisor's review queue with idea
// and owner info joined in.
func (d *DB) GetPendingForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]models.SupervisionRequest, error) {
	return d.queryRequestsWithInfo(ctx, `
		SELECT r.id, r.idea_id, r.owner_id, r.supervisor_id, r.status, r.created_at, r.decided_at,
			COALESCE(i.title, ''), COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM supervision_requests r
		LEFT JOIN ideas i ON i.id = r.idea_id
		JOIN users u ON u.id = r.owner_id
		WHERE r.supervisor_id = $1 AND r.status = $2
		ORDER BY r.created_at ASC
	`, supervisorID, models.RequestStatusPending)
}

// GetAllPendingRequests returns every pending request, for the admin
// dashboard.
func (d *DB) GetAllPendingRequests(ctx context.Context) ([]models.SupervisionRequest, error) {
	return d.queryRequestsWithInfo(ctx, `
		SELECT r.id, r.idea_id, r.owner_id, r.supervisor_id, r.status, r.created_at, r.decided_at,
			COALESCE(i.title, ''), COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM supervision_requests r
		LEFT JOIN ideas i ON i.id = r.idea_id
		JOIN users u ON u.id = r.owner_id
		WHERE r.status = $1
		ORDER BY r.created_at ASC
	`, models.RequestStatusPending)
}

// GetStalePendingRequests returns pending requests created before the
// cutoff, oldest first, for the reminder job.
func (d *DB) GetStalePendingRequests(ctx context.Context, olderThan time.Time, limit int) ([]models.SupervisionRequest, error) {
	return d.queryRequestsWithInfo(ctx, `
		SELECT r.id, r.idea_id, r.owner_id, r.supervisor_id, r.status, r.created_at, r.decided_at,
			COALESCE(i.title, ''), COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM supervision_requests r
		LEFT JOIN ideas i ON i.id = r.idea_id
		JOIN users u ON u.id = r.owner_id
		WHERE r.status = $1 AND r.created_at < $2
		ORDER BY r.created_at ASC
		LIMIT $3
	`, models.RequestStatusPending, olderThan, limit)
}

func (d *DB) queryRequestsWithInfo(ctx context.Context, sql string, args ...any) ([]models.SupervisionRequest, error) {
	rows, err := d.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.SupervisionRequest
	for rows.Next() {
		var req models.SupervisionRequest
		if err := rows.Scan(
			&req.ID, &req.IdeaID, &req.OwnerID, &req.SupervisorID, &req.Status,
			&req.CreatedAt, &req.DecidedAt,
			&req.IdeaTitle, &req.OwnerName, &req.OwnerEmail,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// CountPendingRequests returns the number of pending requests, for metrics.
func (d *DB) CountPendingRequests(ctx context.Context) (int64, error) {
	var n int64
	err := d.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM supervision_requests WHERE status = $1`,
		models.RequestStatusPending).Scan(&n)
	return n, err
}
