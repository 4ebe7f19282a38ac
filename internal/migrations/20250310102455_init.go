package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upInit, downInit)
}

func upInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	CREATE TABLE organizations (
		id UUID PRIMARY KEY,
		name VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE social_accounts (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		platform VARCHAR NOT NULL,
		access_token VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE posts (
		id UUID PRIMARY KEY,
		organization_id UUID NOT NULL REFERENCES organizations(id),
		account_id UUID NOT NULL REFERENCES social_accounts(id),
		platform VARCHAR NOT NULL,
		platform_post_id VARCHAR NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		media_url VARCHAR,
		published_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(tx *sql.Tx) error {
	_, err := tx.Exec(`
	DROP TABLE posts;
	DROP TABLE social_accounts;
	DROP TABLE organizations;
	`)
	if err != nil {
		return err
	}
	return nil
}
