package exhibitor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketboard/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const selectCols = `id, name, category, short_desc, long_desc, image_url,
		website_url, address, facebook_url, instagram_url, twitter_url`

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Exhibitor, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+selectCols+`
		FROM exhibitors
		WHERE id = ?
	`, id)

	e, err := scanExhibitor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return e, nil
}

// List returns every exhibitor ordered by name ascending. A non-empty
// category narrows the result; an unknown category matches nothing.
func (r *Repo) List(ctx context.Context, category string) ([]models.Exhibitor, error) {
	sqlStr := `
		SELECT ` + selectCols + `
		FROM exhibitors
	`
	var args []any
	if category != "" {
		sqlStr += " WHERE category = ?"
		args = append(args, category)
	}
	sqlStr += " ORDER BY name ASC"

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Exhibitor, 0)
	for rows.Next() {
		e, err := scanExhibitor(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, e models.Exhibitor) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO exhibitors
			(id, name, category, short_desc, long_desc, image_url,
			 website_url, address, facebook_url, instagram_url, twitter_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.ID, e.Name, string(e.Category), e.ShortDesc, e.LongDesc,
		nullString(e.ImageURL), nullString(e.WebsiteURL), nullString(e.Address),
		nullString(e.FacebookURL), nullString(e.InstagramURL), nullString(e.TwitterURL),
	)
	if err != nil {
		return fmt.Errorf("create exhibitor: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, e models.Exhibitor) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE exhibitors
		SET name = ?, category = ?, short_desc = ?, long_desc = ?, image_url = ?,
		    website_url = ?, address = ?, facebook_url = ?, instagram_url = ?,
		    twitter_url = ?, updated_at = ?
		WHERE id = ?
	`,
		e.Name, string(e.Category), e.ShortDesc, e.LongDesc,
		nullString(e.ImageURL), nullString(e.WebsiteURL), nullString(e.Address),
		nullString(e.FacebookURL), nullString(e.InstagramURL), nullString(e.TwitterURL),
		time.Now().UTC(), e.ID,
	)
	if err != nil {
		return fmt.Errorf("update exhibitor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update exhibitor rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update exhibitor: not found")
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM exhibitors WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete exhibitor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete exhibitor rows: %w", err)
	}
	return affected > 0, nil
}

// Upsert keeps CSV re-imports idempotent.
func (r *Repo) Upsert(ctx context.Context, e models.Exhibitor) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO exhibitors
			(id, name, category, short_desc, long_desc, image_url,
			 website_url, address, facebook_url, instagram_url, twitter_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  name = excluded.name,
		  category = excluded.category,
		  short_desc = excluded.short_desc,
		  long_desc = excluded.long_desc,
		  image_url = excluded.image_url,
		  website_url = excluded.website_url,
		  address = excluded.address,
		  facebook_url = excluded.facebook_url,
		  instagram_url = excluded.instagram_url,
		  twitter_url = excluded.twitter_url,
		  updated_at = CURRENT_TIMESTAMP
	`,
		e.ID, e.Name, string(e.Category), e.ShortDesc, e.LongDesc,
		nullString(e.ImageURL), nullString(e.WebsiteURL), nullString(e.Address),
		nullString(e.FacebookURL), nullString(e.InstagramURL), nullString(e.TwitterURL),
	)
	if err != nil {
		return fmt.Errorf("upsert exhibitor: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExhibitor(s scanner) (*models.Exhibitor, error) {
	var (
		e          models.Exhibitor
		category   string
		imageURL   sql.NullString
		websiteURL sql.NullString
		address    sql.NullString
		facebook   sql.NullString
		instagram  sql.NullString
		twitter    sql.NullString
	)

	if err := s.Scan(
		&e.ID, &e.Name, &category, &e.ShortDesc, &e.LongDesc, &imageURL,
		&websiteURL, &address, &facebook, &instagram, &twitter,
	); err != nil {
		return nil, err
	}

	e.Category = models.Category(category)
	e.ImageURL = imageURL.String
	e.WebsiteURL = websiteURL.String
	e.Address = address.String
	e.FacebookURL = facebook.String
	e.InstagramURL = instagram.String
	e.TwitterURL = twitter.String
	return &e, nil
}

func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}
