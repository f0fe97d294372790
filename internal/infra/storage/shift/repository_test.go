package shift

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (staff_id, shift_date) DO UPDATE SET")).
		WithArgs(int64(3), date, "09:00", "17:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(8, now, now))

	got, err := repo.Upsert(context.Background(), &domain.Shift{
		StaffID:   3,
		ShiftDate: date,
		StartTime: types.MustTimeString("09:00"),
		EndTime:   types.MustTimeString("17:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_ConstraintErrors(t *testing.T) {
	repo, mock := newRepo(t)
	shift := &domain.Shift{
		StaffID:   3,
		StartTime: types.MustTimeString("17:00"),
		EndTime:   types.MustTimeString("09:00"),
	}

	mock.ExpectQuery("INSERT INTO shifts").
		WillReturnError(&pq.Error{Code: "23514", Constraint: timeRangeConstraint})
	mock.ExpectQuery("INSERT INTO shifts").
		WillReturnError(&pq.Error{Code: "23503", Constraint: staffFKConstraint})

	_, err := repo.Upsert(context.Background(), shift)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = repo.Upsert(context.Background(), shift)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestRepository_GetByStaffAndDate(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shifts WHERE shift_date = $1 AND staff_id = $2")).
		WithArgs(date, int64(3)).
		WillReturnRows(sqlmock.NewRows(selectColumns).
			AddRow(8, 3, date, "09:00:00", "12:00:00", date, date))

	got, err := repo.GetByStaffAndDate(context.Background(), 3, date)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), got.StartTime)
	assert.Equal(t, types.TimeString("12:00"), got.EndTime)

	mock.ExpectQuery("FROM shifts").WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByStaffAndDate(context.Background(), 3, date)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestRepository_GetByStaffAndDate_LocalZone(t *testing.T) {
	saved := time.Local
	time.Local = time.FixedZone("JST", 9*60*60)
	t.Cleanup(func() { time.Local = saved })

	repo, mock := newRepo(t)
	stored := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("FROM shifts").
		WillReturnRows(sqlmock.NewRows(selectColumns).
			AddRow(8, 3, stored, "09:00:00", "12:00:00", stored, stored))

	got, err := repo.GetByStaffAndDate(context.Background(), 3, day)

	require.NoError(t, err)
	assert.Equal(t, day, got.ShiftDate)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shifts WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shifts WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 8))
	require.ErrorIs(t, repo.Delete(context.Background(), 9), ErrShiftNotFound)
}
