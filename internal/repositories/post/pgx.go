package post

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/repositories"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

const postColumns = "p.id, p.organization_id, p.platform, p.platform_post_id, p.content, COALESCE(p.media_url, ''), a.access_token, p.published_at"

// GetByID returns a single post record
func (p *Pgx) GetByID(ctx context.Context, id uuid.UUID) (*domain.PostRecord, error) {
	query, args, err := repositories.SqBuilder.
		Select(postColumns).
		From("posts p").
		Join("social_accounts a ON a.id = p.account_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var record domain.PostRecord
	err = p.pg.QueryRow(ctx, query, args...).Scan(
		&record.ID,
		&record.OrganizationID,
		&record.Platform,
		&record.PlatformPostID,
		&record.Content,
		&record.MediaURL,
		&record.AccessToken,
		&record.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &record, nil
}

// ListDueForCollection returns posts whose metrics are missing or stale.
func (p *Pgx) ListDueForCollection(ctx context.Context, orgID uuid.UUID, publishedAfter, staleBefore time.Time) ([]*domain.PostRecord, error) {
	query, args, err := repositories.SqBuilder.
		Select(postColumns).
		From("posts p").
		Join("social_accounts a ON a.id = p.account_id").
		LeftJoin("post_analytics s ON s.post_id = p.id").
		Where(sq.And{
			sq.Eq{"p.organization_id": orgID},
			sq.GtOrEq{"p.published_at": publishedAfter},
			sq.Or{
				sq.Eq{"s.id": nil},
				sq.Lt{"s.last_fetched_at": staleBefore},
			},
		}).
		OrderBy("p.published_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.PostRecord
	for rows.Next() {
		var record domain.PostRecord
		if err := rows.Scan(
			&record.ID,
			&record.OrganizationID,
			&record.Platform,
			&record.PlatformPostID,
			&record.Content,
			&record.MediaURL,
			&record.AccessToken,
			&record.PublishedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
