// Package gift implements the gift repository using PostgreSQL.
package gift

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
	table  = "gifts"
	entity = "gift"
)

var columns = []string{
	"id", "sender_name", "recipient_name", "recipient_email",
	"card_template", "message", "is_viewed", "created_at",
}

// Repo provides gift persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new gift repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a gift by primary key.
// Returns domain.ErrNotFound if the gift does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Gift, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	g, err := scanGift(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return g, nil
}

// Create inserts an unviewed gift and returns the persisted row.
func (r *Repo) Create(ctx context.Context, g *domain.Gift) (*domain.Gift, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("sender_name", "recipient_name", "recipient_email", "card_template", "message", "is_viewed", "created_at").
		Values(g.SenderName, g.RecipientName, g.RecipientEmail, g.CardTemplate, g.Message, false, g.CreatedAt.UTC()).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	created, err := scanGift(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, "new")
	}

	return created, nil
}

// MarkViewed sets is_viewed. Returns domain.ErrNotFound if no row matched.
func (r *Repo) MarkViewed(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_viewed", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark viewed: %w", err)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanGift(row scanner) (*domain.Gift, error) {
	var g domain.Gift
	if err := row.Scan(
		&g.ID,
		&g.SenderName,
		&g.RecipientName,
		&g.RecipientEmail,
		&g.CardTemplate,
		&g.Message,
		&g.IsViewed,
		&g.CreatedAt,
	); err != nil {
		return nil, err
	}
	g.CreatedAt = g.CreatedAt.UTC()
	return &g, nil
}
