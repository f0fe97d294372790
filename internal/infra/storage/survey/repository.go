package survey

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const reservationConstraint = "survey_responses_reservation_key"

var selectColumns = []string{
	"id",
	"user_id",
	"reservation_id",
	"staff_rating",
	"service_rating",
	"comment",
	"created_at",
}

// Repository stores survey responses
type Repository struct {
	db DBExecutor
}

// NewRepository creates a survey repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a survey response. One response per reservation.
func (r *Repository) Create(ctx context.Context, response *domain.SurveyResponse) (*domain.SurveyResponse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("survey_responses").
		Columns(
			"user_id",
			"reservation_id",
			"staff_rating",
			"service_rating",
			"comment",
		).
		Values(
			response.UserID,
			response.ReservationID,
			response.StaffRating,
			response.ServiceRating,
			response.Comment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&response.ID, &createdAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err, reservationConstraint) {
			return nil, ErrSurveyAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	response.CreatedAt = createdAt.Time
	return response, nil
}

// ExistsByReservation reports whether the reservation already has a response
func (r *Repository) ExistsByReservation(ctx context.Context, reservationID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("survey_responses").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByReservation - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByReservation - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// CountByUser returns how many responses the user has submitted in total
func (r *Repository) CountByUser(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("survey_responses").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByUser - scan: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetAll lists every response, newest first
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SurveyResponse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("survey_responses").
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	responses := make([]*domain.SurveyResponse, 0)
	for rows.Next() {
		var (
			response  domain.SurveyResponse
			comment   sql.NullString
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&response.ID,
			&response.UserID,
			&response.ReservationID,
			&response.StaffRating,
			&response.ServiceRating,
			&comment,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		if comment.Valid {
			response.Comment = &comment.String
		}
		response.CreatedAt = createdAt.Time

		responses = append(responses, &response)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return responses, nil
}
