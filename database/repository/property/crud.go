// File: database/repository/property/crud.go
package propertyRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentaldesk/models"
)

const propertyColumns = `id, title, description, address, city, state, zip, price,
	bedrooms, bathrooms, sqft, available, pets_allowed, features, created_at, updated_at`

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Address, &p.City, &p.State, &p.Zip,
		&p.Price, &p.Bedrooms, &p.Bathrooms, &p.Sqft, &p.Available, &p.PetsAllowed,
		&p.Features, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresPropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var props []models.Property
	byID := make(map[string]int)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		p.Images = []models.PropertyImage{}
		byID[p.ID] = len(props)
		props = append(props, *p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	imgRows, err := r.pool.Query(ctx, `SELECT id, property_id, url FROM property_images`)
	if err != nil {
		return nil, err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img models.PropertyImage
		if err := imgRows.Scan(&img.ID, &img.PropertyID, &img.URL); err != nil {
			return nil, err
		}
		if i, ok := byID[img.PropertyID]; ok {
			props[i].Images = append(props[i].Images, img)
		}
	}
	if imgRows.Err() != nil {
		return nil, imgRows.Err()
	}
	return props, nil
}

func (r *postgresPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProperty(r.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}

	imgs, err := r.imagesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Images = imgs
	return p, nil
}

func (r *postgresPropertyRepo) imagesFor(ctx context.Context, propertyID string) ([]models.PropertyImage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, property_id, url FROM property_images WHERE property_id = $1
	`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	imgs := []models.PropertyImage{}
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.URL); err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, rows.Err()
}

func (r *postgresPropertyRepo) Create(ctx context.Context, p *models.Property, imageURLs []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO properties
			(id, title, description, address, city, state, zip, price, bedrooms,
			 bathrooms, sqft, available, pets_allowed, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Address, p.City, p.State, p.Zip, p.Price,
		p.Bedrooms, p.Bathrooms, p.Sqft, p.Available, p.PetsAllowed, p.Features,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	p.Images = []models.PropertyImage{}
	for _, url := range imageURLs {
		img := models.PropertyImage{ID: uuid.New().String(), PropertyID: p.ID, URL: url}
		if _, err := tx.Exec(ctx, `
			INSERT INTO property_images (id, property_id, url) VALUES ($1, $2, $3)
		`, img.ID, img.PropertyID, img.URL); err != nil {
			return err
		}
		p.Images = append(p.Images, img)
	}

	return tx.Commit(ctx)
}

func (r *postgresPropertyRepo) Update(ctx context.Context, id string, upd models.UpdatePropertyRequest) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		UPDATE properties SET
			title        = COALESCE($2, title),
			description  = COALESCE($3, description),
			address      = COALESCE($4, address),
			city         = COALESCE($5, city),
			state        = COALESCE($6, state),
			zip          = COALESCE($7, zip),
			price        = COALESCE($8, price),
			bedrooms     = COALESCE($9, bedrooms),
			bathrooms    = COALESCE($10, bathrooms),
			sqft         = COALESCE($11, sqft),
			available    = COALESCE($12, available),
			pets_allowed = COALESCE($13, pets_allowed),
			features     = COALESCE($14, features),
			updated_at   = now()
		WHERE id = $1
	`, id, upd.Title, upd.Description, upd.Address, upd.City, upd.State, upd.Zip,
		upd.Price, upd.Bedrooms, upd.Bathrooms, upd.Sqft, upd.Available,
		upd.PetsAllowed, upd.Features)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresPropertyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
