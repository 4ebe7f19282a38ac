package organization

import (
	"context"
	"errors"

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
		logger: logger.WithComponent("OrganizationRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// GetByID returns a single organization
func (p *Pgx) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "created_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var org domain.Organization
	err = p.pg.QueryRow(ctx, query, args...).Scan(&org.ID, &org.Name, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &org, nil
}

// ListAll returns every organization, used by the batch jobs
func (p *Pgx) ListAll(ctx context.Context) ([]*domain.Organization, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "created_at").
		From("organizations").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orgs, nil
}
