package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const activeSlotConstraint = "reservations_active_slot_key"

// selectColumns is shared by every read; staff name comes from the joined users row
var selectColumns = []string{
	"r.id",
	"r.customer_id",
	"r.staff_id",
	"r.reservation_date",
	"r.time_slot",
	"r.menu",
	"r.status",
	"r.applied_discount",
	"s.name",
	"r.created_at",
	"r.updated_at",
}

// Repository stores reservations
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation.
// A write that collides with another active reservation on the same
// (staff, date, time) is rejected by the partial unique index and reported as ErrSlotTaken.
// Under SERIALIZABLE the same race may surface as a serialization failure, which maps the same way.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_id",
			"staff_id",
			"reservation_date",
			"time_slot",
			"menu",
			"status",
			"applied_discount",
		).
		Values(
			reservation.CustomerID,
			reservation.StaffID,
			reservation.ReservationDate,
			reservation.TimeSlot,
			reservation.Menu,
			reservation.Status,
			reservation.AppliedDiscount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pgerrors.IsUniqueViolation(err, activeSlotConstraint) || pgerrors.IsSerializationFailure(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID returns a reservation by id.
// Inside a transaction the row is locked (FOR UPDATE) until commit.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("users s ON s.id = r.staff_id").
		Where(squirrel.Eq{"r.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByFilter returns reservations matching the filter.
//
// Ordering: for a single date (availability, conflict checks) rows come by
// time ascending; for ranges and histories newest first.
// Inside a transaction the matched rows are locked so that a concurrent
// booking of the same slot waits for this one to finish.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("reservations r").
		LeftJoin("users s ON s.id = r.staff_id")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.customer_id": *filter.CustomerID})
	}
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.staff_id": *filter.StaffID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.reservation_date": *filter.EndDate})
	}
	if filter.TimeSlot != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.time_slot": *filter.TimeSlot})
	}
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.id": *filter.ExcludeID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": statuses})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("r.time_slot ASC", "r.id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("r.reservation_date DESC", "r.time_slot DESC", "r.id DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update rewrites the mutable fields of a reservation
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("staff_id", reservation.StaffID).
		Set("reservation_date", reservation.ReservationDate).
		Set("time_slot", reservation.TimeSlot).
		Set("menu", reservation.Menu).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if pgerrors.IsUniqueViolation(err, activeSlotConstraint) || pgerrors.IsSerializationFailure(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	reservation.UpdatedAt = updatedAt.Time
	return reservation, nil
}

// UpdateStatus moves a reservation to a new lifecycle status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SetDiscount records a coupon discount.
// Only a reservation without a discount is updated; otherwise ErrDiscountAlreadySet.
func (r *Repository) SetDiscount(ctx context.Context, id int64, amount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("applied_discount", amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "applied_discount": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDiscount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetDiscount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetDiscount - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDiscountAlreadySet
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		staffID              sql.NullInt64
		staffName            sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.CustomerID,
		&staffID,
		&reservation.ReservationDate,
		&reservation.TimeSlot,
		&reservation.Menu,
		&reservation.Status,
		&reservation.AppliedDiscount,
		&staffName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if staffID.Valid {
		reservation.StaffID = &staffID.Int64
	}
	if staffName.Valid {
		reservation.StaffName = &staffName.String
	}
	reservation.ReservationDate = domain.DateOnly(reservation.ReservationDate)
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations collects every row of the result set
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
