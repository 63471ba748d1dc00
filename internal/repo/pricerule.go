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

// PriceRuleRepo is the rule store: admin CRUD plus the active-rule snapshot
// read that every quote performs.
type PriceRuleRepo interface {
	// Create inserts a new rule and returns the persisted record.
	Create(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error)

	// GetByID retrieves a single rule. Returns domain.ErrNotFound if missing.
	GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error)

	// ListPaged returns one page of rules matching f, oldest first, and the
	// total number of matches.
	ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) ([]domain.PriceRule, int64, error)

	// ListActive returns every active rule that is global or scoped to
	// hotelID, ordered by created_at then id. The result is read in a single
	// statement, so it reflects one point in time.
	ListActive(ctx context.Context, hotelID uuid.UUID) ([]domain.PriceRule, error)

	// Update overwrites the mutable fields of a rule.
	// Returns domain.ErrNotFound if no rule with that ID exists.
	Update(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error)

	// Delete removes a rule by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgPriceRuleRepo struct {
	db db
}

// NewPriceRuleRepo constructs a PriceRuleRepo backed by the provided db connection.
func NewPriceRuleRepo(db db) PriceRuleRepo {
	return &pgPriceRuleRepo{db: db}
}

const ruleColumns = `
	id, hotel_id, name, rule_type, start_date, end_date, day_of_week, min_nights,
	discount_rate::text, is_active, description, created_at, updated_at`

// ruleFilterWhere matches globals alongside a hotel's own rules, mirroring
// how quotes resolve rules.
const ruleFilterWhere = `
	WHERE (@hotel_id::uuid IS NULL OR hotel_id = @hotel_id OR hotel_id IS NULL)
	  AND (@is_active::boolean IS NULL OR is_active = @is_active)`

func (r *pgPriceRuleRepo) Create(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	const q = `
		INSERT INTO price_rules (hotel_id, name, rule_type, start_date, end_date,
		                         day_of_week, min_nights, discount_rate, is_active, description)
		VALUES (@hotel_id, @name, @rule_type, @start_date, @end_date,
		        @day_of_week, @min_nights, @discount_rate, @is_active, @description)
		RETURNING ` + ruleColumns

	result, err := scanRule(r.db.QueryRow(ctx, q, ruleArgs(rule)))
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("repo.PriceRuleRepo.Create: %w", writeErr(err))
	}
	return result, nil
}

func (r *pgPriceRuleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PriceRule, error) {
	const q = `SELECT ` + ruleColumns + ` FROM price_rules WHERE id = @id`

	result, err := scanRule(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("repo.PriceRuleRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPriceRuleRepo) ListPaged(ctx context.Context, f domain.RuleFilter, p domain.PaginationParams) ([]domain.PriceRule, int64, error) {
	filter := pgx.NamedArgs{"hotel_id": f.HotelID, "is_active": f.IsActive}

	total, err := count(ctx, r.db, `SELECT count(*) FROM price_rules`+ruleFilterWhere, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PriceRuleRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + ruleColumns + ` FROM price_rules` + ruleFilterWhere + `
		ORDER BY created_at, id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"hotel_id":  f.HotelID,
		"is_active": f.IsActive,
		"limit":     p.Limit,
		"offset":    p.Offset(),
	}

	rules, err := r.queryRules(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PriceRuleRepo.ListPaged: %w", err)
	}
	return rules, total, nil
}

func (r *pgPriceRuleRepo) ListActive(ctx context.Context, hotelID uuid.UUID) ([]domain.PriceRule, error) {
	const q = `
		SELECT ` + ruleColumns + `
		FROM price_rules
		WHERE is_active
		  AND (hotel_id = @hotel_id OR hotel_id IS NULL)
		ORDER BY created_at, id`

	rules, err := r.queryRules(ctx, q, pgx.NamedArgs{"hotel_id": hotelID})
	if err != nil {
		return nil, fmt.Errorf("repo.PriceRuleRepo.ListActive: %w", err)
	}
	return rules, nil
}

func (r *pgPriceRuleRepo) Update(ctx context.Context, rule domain.PriceRule) (domain.PriceRule, error) {
	const q = `
		UPDATE price_rules
		SET hotel_id      = @hotel_id,
		    name          = @name,
		    rule_type     = @rule_type,
		    start_date    = @start_date,
		    end_date      = @end_date,
		    day_of_week   = @day_of_week,
		    min_nights    = @min_nights,
		    discount_rate = @discount_rate,
		    is_active     = @is_active,
		    description   = @description,
		    updated_at    = now()
		WHERE id = @id
		RETURNING ` + ruleColumns

	args := ruleArgs(rule)
	args["id"] = rule.ID

	result, err := scanRule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PriceRule{}, fmt.Errorf("repo.PriceRuleRepo.Update: %w", writeErr(err))
	}
	return result, nil
}

func (r *pgPriceRuleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM price_rules WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PriceRuleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PriceRuleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgPriceRuleRepo) queryRules(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.PriceRule, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.PriceRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return rules, nil
}

// ruleArgs maps the writable columns. Nil pointers become NULL.
func ruleArgs(rule domain.PriceRule) pgx.NamedArgs {
	return pgx.NamedArgs{
		"hotel_id":      rule.HotelID,
		"name":          rule.Name,
		"rule_type":     string(rule.Type),
		"start_date":    rule.StartDate,
		"end_date":      rule.EndDate,
		"day_of_week":   rule.DayOfWeek,
		"min_nights":    rule.MinNights,
		"discount_rate": rule.DiscountRate.String(),
		"is_active":     rule.IsActive,
		"description":   rule.Description,
	}
}

func scanRule(s scanner) (domain.PriceRule, error) {
	var (
		rule      domain.PriceRule
		id        pgtype.UUID
		hotelID   pgtype.UUID
		ruleType  string
		startDate pgtype.Date
		endDate   pgtype.Date
		dayOfWeek pgtype.Int4
		minNights pgtype.Int4
		rate      string
	)

	err := s.Scan(&id, &hotelID, &rule.Name, &ruleType, &startDate, &endDate,
		&dayOfWeek, &minNights, &rate, &rule.IsActive, &rule.Description,
		&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PriceRule{}, domain.ErrNotFound
		}
		return domain.PriceRule{}, err
	}

	rule.ID = uuid.UUID(id.Bytes)
	rule.Type = domain.RuleType(ruleType)
	if hotelID.Valid {
		h := uuid.UUID(hotelID.Bytes)
		rule.HotelID = &h
	}
	if startDate.Valid {
		d := startDate.Time
		rule.StartDate = &d
	}
	if endDate.Valid {
		d := endDate.Time
		rule.EndDate = &d
	}
	if dayOfWeek.Valid {
		v := int(dayOfWeek.Int32)
		rule.DayOfWeek = &v
	}
	if minNights.Valid {
		v := int(minNights.Int32)
		rule.MinNights = &v
	}
	if rule.DiscountRate, err = parseNumeric("discount_rate", rate); err != nil {
		return domain.PriceRule{}, err
	}
	return rule, nil
}
