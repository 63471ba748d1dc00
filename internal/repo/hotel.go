package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// HotelRepo defines the persistence operations for Hotels.
type HotelRepo interface {
	// Create inserts a new hotel and returns the persisted record with
	// DB-generated id and timestamps.
	Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)

	// GetByID retrieves a single hotel. Returns domain.ErrNotFound if missing.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error)

	// ListPaged returns one page of hotels ordered by name, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error)

	// Update overwrites the mutable fields of a hotel.
	// Returns domain.ErrNotFound if no hotel with that ID exists.
	Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)

	// Delete removes a hotel by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgHotelRepo is the Postgres implementation of HotelRepo.
type pgHotelRepo struct {
	db db
}

// NewHotelRepo constructs a HotelRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHotelRepo(db db) HotelRepo {
	return &pgHotelRepo{db: db}
}

const hotelColumns = `id, name, city, base_price::text, created_at, updated_at`

func (r *pgHotelRepo) Create(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	const q = `
		INSERT INTO hotels (name, city, base_price)
		VALUES (@name, @city, @base_price)
		RETURNING ` + hotelColumns

	args := pgx.NamedArgs{
		"name":       hotel.Name,
		"city":       hotel.City,
		"base_price": hotel.BasePrice.String(),
	}

	result, err := scanHotel(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.Create: %w", writeErr(err))
	}
	return result, nil
}

func (r *pgHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	const q = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = @id`

	result, err := scanHotel(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgHotelRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Hotel, int64, error) {
	total, err := count(ctx, r.db, `SELECT count(*) FROM hotels`)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + hotelColumns + `
		FROM hotels
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: scan: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.HotelRepo.ListPaged: rows: %w", err)
	}

	return hotels, total, nil
}

func (r *pgHotelRepo) Update(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error) {
	const q = `
		UPDATE hotels
		SET name       = @name,
		    city       = @city,
		    base_price = @base_price,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + hotelColumns

	args := pgx.NamedArgs{
		"id":         hotel.ID,
		"name":       hotel.Name,
		"city":       hotel.City,
		"base_price": hotel.BasePrice.String(),
	}

	result, err := scanHotel(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.HotelRepo.Update: %w", writeErr(err))
	}
	return result, nil
}

func (r *pgHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.HotelRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HotelRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var (
		h     domain.Hotel
		id    pgtype.UUID
		price string
	)

	err := s.Scan(&id, &h.Name, &h.City, &price, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}

	h.ID = uuid.UUID(id.Bytes)
	if h.BasePrice, err = parseNumeric("base_price", price); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}
