package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const reservationConstraint = "coupons_reservation_key"

var selectColumns = []string{
	"id",
	"user_id",
	"name",
	"discount_amount",
	"used",
	"expiry_date",
	"reservation_id",
	"created_at",
}

// Repository stores discount coupons
type Repository struct {
	db DBExecutor
}

// NewRepository creates a coupon repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a freshly minted coupon
func (r *Repository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coupons").
		Columns(
			"user_id",
			"name",
			"discount_amount",
			"used",
			"expiry_date",
		).
		Values(
			coupon.UserID,
			coupon.Name,
			coupon.DiscountAmount,
			coupon.Used,
			coupon.ExpiryDate,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&coupon.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	coupon.CreatedAt = createdAt.Time
	return coupon, nil
}

// GetByID returns a coupon by id, locking it inside a transaction
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("coupons").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	coupon, err := scanCoupon(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan coupon: %v", ErrScanRow, err)
	}

	return coupon, nil
}

// GetAvailableByUser lists the user's unused coupons expiring after today, largest discount first
func (r *Repository) GetAvailableByUser(ctx context.Context, userID int64, today time.Time) ([]*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("coupons").
		Where(squirrel.Eq{"user_id": userID, "used": false}).
		Where(squirrel.Gt{"expiry_date": domain.DateOnly(today)}).
		OrderBy("discount_amount DESC", "expiry_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAvailableByUser - scan row: %v", ErrScanRow, err)
		}
		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByUser - rows error: %v", ErrScanRow, err)
	}

	return coupons, nil
}

// MarkUsed flips an unused coupon to used and links it to the reservation it discounted.
// A coupon that is already used is left untouched and ErrCouponAlreadyUsed is returned.
func (r *Repository) MarkUsed(ctx context.Context, id int64, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons").
		Set("used", true).
		Set("reservation_id", reservationID).
		Where(squirrel.Eq{"id": id, "used": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkUsed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsUniqueViolation(err, reservationConstraint) {
			return ErrCouponAlreadyUsed
		}
		return fmt.Errorf("%w: MarkUsed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkUsed - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCouponAlreadyUsed
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var (
		coupon        domain.Coupon
		reservationID sql.NullInt64
		createdAt     sql.NullTime
	)

	err := row.Scan(
		&coupon.ID,
		&coupon.UserID,
		&coupon.Name,
		&coupon.DiscountAmount,
		&coupon.Used,
		&coupon.ExpiryDate,
		&reservationID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if reservationID.Valid {
		coupon.ReservationID = &reservationID.Int64
	}
	coupon.ExpiryDate = domain.DateOnly(coupon.ExpiryDate)
	coupon.CreatedAt = createdAt.Time

	return &coupon, nil
}
