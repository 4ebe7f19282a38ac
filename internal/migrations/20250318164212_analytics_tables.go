package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upAnalyticsTables, downAnalyticsTables)
}

func upAnalyticsTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE post_analytics (
		id BIGSERIAL PRIMARY KEY,
		post_id UUID NOT NULL UNIQUE REFERENCES posts(id) ON DELETE CASCADE,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		platform VARCHAR NOT NULL,
		impressions BIGINT NOT NULL DEFAULT 0,
		reach BIGINT NOT NULL DEFAULT 0,
		likes BIGINT NOT NULL DEFAULT 0,
		comments BIGINT NOT NULL DEFAULT 0,
		shares BIGINT NOT NULL DEFAULT 0,
		saves BIGINT NOT NULL DEFAULT 0,
		clicks BIGINT NOT NULL DEFAULT 0,
		video_views BIGINT NOT NULL DEFAULT 0,
		profile_visits BIGINT NOT NULL DEFAULT 0,
		engagement_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		content TEXT NOT NULL DEFAULT '',
		content_length INT NOT NULL DEFAULT 0,
		has_hashtags BOOLEAN NOT NULL DEFAULT FALSE,
		hashtag_count INT NOT NULL DEFAULT 0,
		has_emojis BOOLEAN NOT NULL DEFAULT FALSE,
		has_links BOOLEAN NOT NULL DEFAULT FALSE,
		has_question BOOLEAN NOT NULL DEFAULT FALSE,
		has_cta BOOLEAN NOT NULL DEFAULT FALSE,
		has_media BOOLEAN NOT NULL DEFAULT FALSE,
		day_of_week INT NOT NULL DEFAULT 0,
		hour_of_day INT NOT NULL DEFAULT 0,
		published_at TIMESTAMPTZ NOT NULL,
		fetch_count INT NOT NULL DEFAULT 1,
		first_fetched_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_fetched_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX idx_post_analytics_org_published ON post_analytics (organization_id, published_at);

	CREATE TABLE brand_brains (
		organization_id UUID PRIMARY KEY REFERENCES organizations(id),
		last_analyzed_at TIMESTAMPTZ
	);

	CREATE TABLE brand_learnings (
		id BIGSERIAL PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		type VARCHAR NOT NULL,
		insight TEXT NOT NULL,
		evidence TEXT NOT NULL DEFAULT '',
		confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX idx_brand_learnings_org_active ON brand_learnings (organization_id, is_active);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downAnalyticsTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE brand_learnings;
	DROP TABLE brand_brains;
	DROP TABLE post_analytics;
	`)
	if err != nil {
		return err
	}
	return nil
}
