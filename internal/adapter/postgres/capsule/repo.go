// Package capsule implements the time capsule repository using PostgreSQL.
package capsule

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gulzeynep/GiftCapsule-web/internal/adapter/postgres"
	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

const (
	table  = "time_capsules"
	entity = "time_capsule"
)

var columns = []string{
	"id", "creator_email", "title", "message", "media_url",
	"open_date", "is_opened", "notification_sent", "created_at",
}

// Repo provides capsule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new capsule repository. db is usually a *pgxpool.Pool; a
// transaction in ctx takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a capsule by primary key.
// Returns domain.ErrNotFound if the capsule does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Capsule, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	c, err := scanCapsule(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return c, nil
}

// ListPending returns every capsule that is neither notified nor opened.
// Order is unspecified.
func (r *Repo) ListPending(ctx context.Context) ([]domain.Capsule, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"notification_sent": false}).
		Where(sq.Eq{"is_opened": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending %ss: %w", entity, err)
	}
	defer rows.Close()

	capsules := make([]domain.Capsule, 0)
	for rows.Next() {
		c, err := scanCapsule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", entity, err)
		}
		capsules = append(capsules, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending %ss: %w", entity, err)
	}

	return capsules, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a capsule with both flags false. The id is assigned by the
// database; the persisted row is returned.
func (r *Repo) Create(ctx context.Context, c *domain.Capsule) (*domain.Capsule, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("creator_email", "title", "message", "media_url", "open_date", "is_opened", "notification_sent", "created_at").
		Values(c.CreatorEmail, c.Title, c.Message, c.MediaURL, c.OpenDate.UTC(), false, false, c.CreatedAt.UTC()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	created, err := scanCapsule(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, "new")
	}

	return created, nil
}

// MarkNotificationSent sets notification_sent only if it is still false.
// It reports whether this call flipped the flag. A capsule that does not
// exist or was already notified yields false with no error.
func (r *Repo) MarkNotificationSent(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("notification_sent", true).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"notification_sent": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build mark notified: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, entity, id)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkOpened sets is_opened. Returns domain.ErrNotFound if no row matched.
func (r *Repo) MarkOpened(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_opened", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark opened: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanCapsule(row scanner) (*domain.Capsule, error) {
	var c domain.Capsule
	if err := row.Scan(
		&c.ID,
		&c.CreatorEmail,
		&c.Title,
		&c.Message,
		&c.MediaURL,
		&c.OpenDate,
		&c.IsOpened,
		&c.NotificationSent,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.OpenDate = c.OpenDate.UTC()
	c.CreatedAt = c.CreatedAt.UTC()

	return &c, nil
}
