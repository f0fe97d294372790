package shift

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

const (
	timeRangeConstraint = "shifts_time_range_check"
	staffFKConstraint   = "shifts_staff_id_fkey"
)

var selectColumns = []string{
	"id",
	"staff_id",
	"shift_date",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository stores staff shifts
type Repository struct {
	db DBExecutor
}

// NewRepository creates a shift repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert creates the shift for (staff, date) or replaces its window if one exists.
// The returned shift carries the id of the stored row.
func (r *Repository) Upsert(ctx context.Context, shift *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns(
			"staff_id",
			"shift_date",
			"start_time",
			"end_time",
		).
		Values(
			shift.StaffID,
			shift.ShiftDate,
			shift.StartTime,
			shift.EndTime,
		).
		Suffix("ON CONFLICT (staff_id, shift_date) DO UPDATE SET " +
			"start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shift.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		switch {
		case pgerrors.IsCheckViolation(err, timeRangeConstraint):
			return nil, ErrInvalidTimeRange
		case pgerrors.IsForeignKeyViolation(err, staffFKConstraint):
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	shift.CreatedAt = createdAt.Time
	shift.UpdatedAt = updatedAt.Time

	return shift, nil
}

// GetByID returns a shift by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shift, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %v", ErrScanRow, err)
	}

	return shift, nil
}

// GetByStaffAndDate returns the staff member's shift for the date, or ErrShiftNotFound
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("shifts").
		Where(squirrel.Eq{"staff_id": staffID, "shift_date": date})

	// Booking transactions hold the shift so it cannot shrink under them
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - build select query: %v", ErrBuildQuery, err)
	}

	shift, err := scanShift(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndDate - scan shift: %v", ErrScanRow, err)
	}

	return shift, nil
}

// GetByFilter lists shifts ordered by date and start time
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("shifts").
		OrderBy("shift_date ASC", "start_time ASC", "staff_id ASC")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"shift_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"shift_date": *filter.EndDate})
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

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan row: %v", ErrScanRow, err)
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}

// Delete removes a shift by id
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var (
		shift                domain.Shift
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&shift.ID,
		&shift.StaffID,
		&shift.ShiftDate,
		&shift.StartTime,
		&shift.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	shift.ShiftDate = domain.DateOnly(shift.ShiftDate)
	shift.CreatedAt = createdAt.Time
	shift.UpdatedAt = updatedAt.Time

	return &shift, nil
}
