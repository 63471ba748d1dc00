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

// BookingRepo defines the persistence operations for Bookings.
// Bookings are append-only: there is no Update.
type BookingRepo interface {
	// Create inserts a booking with its price snapshot.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// GetByID retrieves a booking. Returns domain.ErrNotFound if missing.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// CountByUser returns how many bookings the user has made.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `
	id, hotel_id, user_id, check_in_date, check_out_date, room_count,
	base_price::text, discount_rate::text, final_price::text, applied_rules,
	priced_at, created_at`

func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (hotel_id, user_id, check_in_date, check_out_date, room_count,
		                      base_price, discount_rate, final_price, applied_rules, priced_at)
		VALUES (@hotel_id, @user_id, @check_in_date, @check_out_date, @room_count,
		        @base_price, @discount_rate, @final_price, @applied_rules, @priced_at)
		RETURNING ` + bookingColumns

	applied := b.AppliedRules
	if applied == nil {
		applied = []string{}
	}

	args := pgx.NamedArgs{
		"hotel_id":       b.HotelID,
		"user_id":        b.UserID,
		"check_in_date":  pgtype.Date{Time: b.CheckInDate, Valid: true},
		"check_out_date": pgtype.Date{Time: b.CheckOutDate, Valid: true},
		"room_count":     b.RoomCount,
		"base_price":     b.BasePrice.String(),
		"discount_rate":  b.DiscountRate.String(),
		"final_price":    b.FinalPrice.String(),
		"applied_rules":  applied,
		"priced_at":      b.PricedAt,
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", writeErr(err))
	}
	return result, nil
}

func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBookingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := count(ctx, r.db, `SELECT count(*) FROM bookings WHERE user_id = @user_id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("repo.BookingRepo.CountByUser: %w", err)
	}
	return n, nil
}

func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b                           domain.Booking
		id, hotelID, userID         pgtype.UUID
		checkIn, checkOut           pgtype.Date
		basePrice, rate, finalPrice string
	)

	err := s.Scan(&id, &hotelID, &userID, &checkIn, &checkOut, &b.RoomCount,
		&basePrice, &rate, &finalPrice, &b.AppliedRules, &b.PricedAt, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.HotelID = uuid.UUID(hotelID.Bytes)
	if userID.Valid {
		u := uuid.UUID(userID.Bytes)
		b.UserID = &u
	}
	b.CheckInDate = checkIn.Time
	b.CheckOutDate = checkOut.Time

	if b.BasePrice, err = parseNumeric("base_price", basePrice); err != nil {
		return domain.Booking{}, err
	}
	if b.DiscountRate, err = parseNumeric("discount_rate", rate); err != nil {
		return domain.Booking{}, err
	}
	if b.FinalPrice, err = parseNumeric("final_price", finalPrice); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}
