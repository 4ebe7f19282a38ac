package snapshot

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
		logger: logger.WithComponent("SnapshotRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Upsert writes the snapshot for a post, keyed by post_id.
func (p *Pgx) Upsert(ctx context.Context, snap domain.MetricSnapshot) error {
	now := time.Now()

	query, args, err := repositories.SqBuilder.
		Insert("post_analytics").
		Columns(
			"post_id", "organization_id", "platform",
			"impressions", "reach", "likes", "comments", "shares", "saves",
			"clicks", "video_views", "profile_visits", "engagement_rate",
			"content", "content_length", "has_hashtags", "hashtag_count",
			"has_emojis", "has_links", "has_question", "has_cta", "has_media",
			"day_of_week", "hour_of_day", "published_at",
			"fetch_count", "first_fetched_at", "last_fetched_at",
		).
		Values(
			snap.PostID, snap.OrganizationID, snap.Platform,
			snap.Metrics.Impressions, snap.Metrics.Reach, snap.Metrics.Likes,
			snap.Metrics.Comments, snap.Metrics.Shares, snap.Metrics.Saves,
			snap.Metrics.Clicks, snap.Metrics.VideoViews, snap.Metrics.ProfileVisits,
			snap.EngagementRate,
			snap.Content, snap.Features.Length, snap.Features.HasHashtags,
			snap.Features.HashtagCount, snap.Features.HasEmojis, snap.Features.HasLinks,
			snap.Features.HasQuestion, snap.Features.HasCTA, snap.Features.HasMedia,
			snap.Features.DayOfWeek, snap.Features.HourOfDay, snap.PublishedAt,
			1, now, now,
		).
		Suffix(`ON CONFLICT (post_id) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			reach = EXCLUDED.reach,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			saves = EXCLUDED.saves,
			clicks = EXCLUDED.clicks,
			video_views = EXCLUDED.video_views,
			profile_visits = EXCLUDED.profile_visits,
			engagement_rate = EXCLUDED.engagement_rate,
			fetch_count = post_analytics.fetch_count + 1,
			last_fetched_at = EXCLUDED.last_fetched_at`).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}

const snapshotColumns = `id, post_id, organization_id, platform,
	impressions, reach, likes, comments, shares, saves, clicks, video_views, profile_visits,
	engagement_rate, content, content_length, has_hashtags, hashtag_count, has_emojis,
	has_links, has_question, has_cta, has_media, day_of_week, hour_of_day, published_at,
	fetch_count, first_fetched_at, last_fetched_at`

func scanSnapshot(row pgx.Row) (*domain.MetricSnapshot, error) {
	var snap domain.MetricSnapshot
	err := row.Scan(
		&snap.ID, &snap.PostID, &snap.OrganizationID, &snap.Platform,
		&snap.Metrics.Impressions, &snap.Metrics.Reach, &snap.Metrics.Likes,
		&snap.Metrics.Comments, &snap.Metrics.Shares, &snap.Metrics.Saves,
		&snap.Metrics.Clicks, &snap.Metrics.VideoViews, &snap.Metrics.ProfileVisits,
		&snap.EngagementRate, &snap.Content, &snap.Features.Length,
		&snap.Features.HasHashtags, &snap.Features.HashtagCount, &snap.Features.HasEmojis,
		&snap.Features.HasLinks, &snap.Features.HasQuestion, &snap.Features.HasCTA,
		&snap.Features.HasMedia, &snap.Features.DayOfWeek, &snap.Features.HourOfDay,
		&snap.PublishedAt, &snap.FetchCount, &snap.FirstFetchedAt, &snap.LastFetchedAt,
	)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetByPostID returns the live snapshot for a post
func (p *Pgx) GetByPostID(ctx context.Context, postID uuid.UUID) (*domain.MetricSnapshot, error) {
	query, args, err := repositories.SqBuilder.
		Select(snapshotColumns).
		From("post_analytics").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	snap, err := scanSnapshot(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return snap, nil
}

// ListByOrg returns all snapshots in the publish-time window.
func (p *Pgx) ListByOrg(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]*domain.MetricSnapshot, error) {
	query, args, err := repositories.SqBuilder.
		Select(snapshotColumns).
		From("post_analytics").
		Where(sq.And{
			sq.Eq{"organization_id": orgID},
			sq.GtOrEq{"published_at": start},
			sq.LtOrEq{"published_at": end},
		}).
		OrderBy("published_at ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*domain.MetricSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snaps, nil
}

// CleanupOldRecords deletes snapshots for posts published before the cutoff
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	query, args, err := repositories.SqBuilder.
		Delete("post_analytics").
		Where(sq.Lt{"published_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
