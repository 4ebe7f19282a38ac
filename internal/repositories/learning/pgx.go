package learning

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/brandbrain/metrics-pipeline/internal/domain"
	"github.com/brandbrain/metrics-pipeline/internal/repositories"
	"github.com/brandbrain/metrics-pipeline/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("LearningRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create appends a new learning to the brand's store and fills in its ID
func (p *Pgx) Create(ctx context.Context, learning *domain.Learning) error {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("brand_learnings").
		Columns("organization_id", "type", "insight", "evidence", "confidence", "is_active", "created_at").
		Values(learning.OrganizationID, learning.Type, learning.Insight, learning.Evidence, learning.Confidence, true, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if err := p.pg.QueryRow(ctx, query, args...).Scan(&learning.ID); err != nil {
		return err
	}

	learning.IsActive = true
	learning.CreatedAt = now
	return nil
}

// ListActive returns the brand's active learnings, newest first
func (p *Pgx) ListActive(ctx context.Context, orgID uuid.UUID) ([]*domain.Learning, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "organization_id", "type", "insight", "evidence", "confidence", "is_active", "created_at").
		From("brand_learnings").
		Where(sq.And{
			sq.Eq{"organization_id": orgID},
			sq.Eq{"is_active": true},
		}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var learnings []*domain.Learning
	for rows.Next() {
		var l domain.Learning
		if err := rows.Scan(&l.ID, &l.OrganizationID, &l.Type, &l.Insight, &l.Evidence, &l.Confidence, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, err
		}
		learnings = append(learnings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return learnings, nil
}

// TouchLastAnalyzed records when the brand was last analyzed
func (p *Pgx) TouchLastAnalyzed(ctx context.Context, orgID uuid.UUID) error {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("brand_brains").
		Columns("organization_id", "last_analyzed_at").
		Values(orgID, now).
		Suffix("ON CONFLICT (organization_id) DO UPDATE SET last_analyzed_at = EXCLUDED.last_analyzed_at").
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}
