package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/optiregistry/framestock-service/internal/model"
)

// PGRepository stores frames in a single table:
//
//	CREATE TABLE frames (
//	    id                  UUID PRIMARY KEY,
//	    name                TEXT NOT NULL DEFAULT '',
//	    brand               TEXT NOT NULL DEFAULT '',
//	    model_code          TEXT NOT NULL DEFAULT '',
//	    color_code          TEXT NOT NULL DEFAULT '',
//	    size                TEXT NOT NULL DEFAULT '',
//	    ean                 TEXT NOT NULL DEFAULT '',
//	    gender              TEXT NOT NULL DEFAULT '',
//	    channel             TEXT NOT NULL,
//	    status              TEXT NOT NULL,
//	    quantity            INT  NOT NULL DEFAULT 0,
//	    sold_channel        TEXT NOT NULL DEFAULT '',
//	    sold_quantity       INT  NOT NULL DEFAULT 0,
//	    sold_at             TIMESTAMPTZ,
//	    buyer               JSONB,
//	    has_channel_listing BOOLEAN NOT NULL DEFAULT FALSE,
//	    purchase_price      DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    channel_price       DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    lens_width          INT NOT NULL DEFAULT 0,
//	    lens_height         INT NOT NULL DEFAULT 0,
//	    temple_length       INT NOT NULL DEFAULT 0,
//	    bridge_size         INT NOT NULL DEFAULT 0,
//	    front_color         TEXT NOT NULL DEFAULT '',
//	    front_material      TEXT NOT NULL DEFAULT '',
//	    temple_material     TEXT NOT NULL DEFAULT '',
//	    lens_color          TEXT NOT NULL DEFAULT '',
//	    lens_material       TEXT NOT NULL DEFAULT '',
//	    polarized           BOOLEAN NOT NULL DEFAULT FALSE,
//	    created_at          TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX frames_identity_idx ON frames (brand, model_code, color_code);
//	CREATE INDEX frames_channel_status_idx ON frames (channel, status);
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const insertQuery = `
    INSERT INTO frames (
        id, name, brand, model_code, color_code, size, ean, gender,
        channel, status, quantity,
        sold_channel, sold_quantity, sold_at, buyer,
        has_channel_listing, purchase_price, channel_price,
        lens_width, lens_height, temple_length, bridge_size,
        front_color, front_material, temple_material, lens_color, lens_material, polarized,
        created_at
    )
    VALUES (
        :id, :name, :brand, :model_code, :color_code, :size, :ean, :gender,
        :channel, :status, :quantity,
        :sold_channel, :sold_quantity, :sold_at, :buyer,
        :has_channel_listing, :purchase_price, :channel_price,
        :lens_width, :lens_height, :temple_length, :bridge_size,
        :front_color, :front_material, :temple_material, :lens_color, :lens_material, :polarized,
        :created_at
    )
`

const updateQuery = `
    UPDATE frames SET
        name = :name, brand = :brand, model_code = :model_code, color_code = :color_code,
        size = :size, ean = :ean, gender = :gender,
        channel = :channel, status = :status, quantity = :quantity,
        sold_channel = :sold_channel, sold_quantity = :sold_quantity, sold_at = :sold_at, buyer = :buyer,
        has_channel_listing = :has_channel_listing,
        purchase_price = :purchase_price, channel_price = :channel_price,
        lens_width = :lens_width, lens_height = :lens_height,
        temple_length = :temple_length, bridge_size = :bridge_size,
        front_color = :front_color, front_material = :front_material,
        temple_material = :temple_material, lens_color = :lens_color,
        lens_material = :lens_material, polarized = :polarized
    WHERE id = :id
`

func (r *PGRepository) LoadAll(ctx context.Context) ([]model.Frame, error) {
	var frames []model.Frame
	err := r.DB.SelectContext(ctx, &frames, `SELECT * FROM frames ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("load frames: %w", err)
	}
	for i := range frames {
		// Rows imported from older data may predate the channel column.
		if frames[i].Channel == "" {
			frames[i].Channel = model.ChannelInventory
		}
	}
	return frames, nil
}

// ReplaceAll swaps the full record set in one transaction.
func (r *PGRepository) ReplaceAll(ctx context.Context, frames []model.Frame) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM frames`); err != nil {
		return fmt.Errorf("clear frames: %w", err)
	}
	for i := range frames {
		if _, err := tx.NamedExecContext(ctx, insertQuery, &frames[i]); err != nil {
			return fmt.Errorf("insert frame %s: %w", frames[i].ID, err)
		}
	}
	return tx.Commit()
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Frame, error) {
	var f model.Frame
	err := r.DB.GetContext(ctx, &f, `SELECT * FROM frames WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGRepository) Insert(ctx context.Context, f *model.Frame) error {
	_, err := r.DB.NamedExecContext(ctx, insertQuery, f)
	return err
}

func (r *PGRepository) InsertBatch(ctx context.Context, frames []model.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range frames {
		if _, err := tx.NamedExecContext(ctx, insertQuery, &frames[i]); err != nil {
			return fmt.Errorf("insert frame %s: %w", frames[i].ID, err)
		}
	}
	return tx.Commit()
}

func (r *PGRepository) Update(ctx context.Context, f *model.Frame) error {
	_, err := r.DB.NamedExecContext(ctx, updateQuery, f)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM frames WHERE id = $1`, id)
	return err
}

func (r *PGRepository) DeleteByChannel(ctx context.Context, channel model.Channel) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM frames WHERE channel = $1 AND status <> $2`, channel, model.StatusSold)
	return err
}

func (r *PGRepository) DeleteSold(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM frames WHERE status = $1`, model.StatusSold)
	return err
}
