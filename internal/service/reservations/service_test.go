package reservations

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reservations/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeReservations struct {
	rows    map[int64]*domain.Reservation
	filters []domain.ReservationsFilter
	updates int
}

func (f *fakeReservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservations) GetByFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.filters = append(f.filters, filter)

	result := make([]*domain.Reservation, 0)
	for _, r := range f.rows {
		if filter.CustomerID != nil && *filter.CustomerID != r.CustomerID {
			continue
		}
		if filter.StaffID != nil && (r.StaffID == nil || *filter.StaffID != *r.StaffID) {
			continue
		}
		if filter.StartDate != nil && r.ReservationDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.ReservationDate.After(*filter.EndDate) {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, r.Status) {
			continue
		}
		result = append(result, r)
	}
	slices.SortFunc(result, func(a, b *domain.Reservation) int { return int(b.ID - a.ID) })
	return result, nil
}

func (f *fakeReservations) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.rows[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	f.updates++
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	cancelled []events.ReservationCancelled
}

func (f *fakePublisher) PublishReservationCancelled(_ context.Context, e events.ReservationCancelled) error {
	f.cancelled = append(f.cancelled, e)
	return nil
}

type fakeMetrics struct {
	events []string
}

func (f *fakeMetrics) IncReservation(event string) {
	f.events = append(f.events, event)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	now   = time.Date(2025, 5, 10, 12, 0, 0, 0, time.Local)
	today = time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)

	admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	aki   = domain.Actor{UserID: 3, Role: domain.RoleStaff}
	hana  = domain.Actor{UserID: 7, Role: domain.RoleCustomer}
	ren   = domain.Actor{UserID: 8, Role: domain.RoleCustomer}
)

type deps struct {
	reservations *fakeReservations
	publisher    *fakePublisher
	metrics      *fakeMetrics
}

func reservation(id, customer int64, staff *int64, date time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		CustomerID:      customer,
		StaffID:         staff,
		ReservationDate: date,
		TimeSlot:        types.MustTimeString("10:00"),
		Menu:            "cut",
		Status:          status,
	}
}

func newService() (*Service, *deps) {
	d := &deps{
		reservations: &fakeReservations{rows: map[int64]*domain.Reservation{
			40: reservation(40, 7, ptr.Ptr(int64(3)), today, domain.StatusBooked),
			41: reservation(41, 7, nil, today.AddDate(0, 0, -20), domain.StatusCancelled),
			42: reservation(42, 7, ptr.Ptr(int64(3)), today.AddDate(0, 0, 3), domain.StatusDeleted),
			43: reservation(43, 8, ptr.Ptr(int64(3)), today.AddDate(0, 0, 1), domain.StatusBooked),
			44: reservation(44, 8, ptr.Ptr(int64(4)), today.AddDate(0, 0, 8), domain.StatusBooked),
		}},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}

	svc := NewService(d.reservations, passthroughTx{}, d.publisher, d.metrics, logger.Nop())
	svc.timeProvider = fixedTime{now: now}
	return svc, d
}

func ids(list []models.ReservationResponse) []int64 {
	result := make([]int64, 0, len(list))
	for _, r := range list {
		result = append(result, r.ID)
	}
	return result
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), hana, 40)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-10", resp.Date)
	assert.Equal(t, "10:00", resp.TimeSlot)

	_, err = svc.GetByID(context.Background(), aki, 43)
	assert.NoError(t, err, "staff see every reservation")

	_, err = svc.GetByID(context.Background(), ren, 40)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), admin, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound, "deleted reservations are hidden")

	_, err = svc.GetByID(context.Background(), admin, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListMine_ExcludesDeleted(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.ListMine(context.Background(), hana)

	require.NoError(t, err)
	assert.Equal(t, []int64{41, 40}, ids(resp.Reservations))
}

func TestListForStaff(t *testing.T) {
	svc, d := newService()

	resp, err := svc.ListForStaff(context.Background(), &models.ListStaffRequest{Actor: aki})
	require.NoError(t, err)
	assert.Equal(t, []int64{43, 40}, ids(resp.Reservations))

	day := today.Add(9 * time.Hour)
	resp, err = svc.ListForStaff(context.Background(), &models.ListStaffRequest{Actor: aki, Date: &day})
	require.NoError(t, err)
	assert.Equal(t, []int64{40}, ids(resp.Reservations))
	last := d.reservations.filters[len(d.reservations.filters)-1]
	assert.Equal(t, today, *last.StartDate)

	_, err = svc.ListForStaff(context.Background(), &models.ListStaffRequest{Actor: hana})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListRange(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.ListRange(context.Background(), &models.ListRangeRequest{
		Actor: admin,
		From:  today,
		To:    today.AddDate(0, 0, 8),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{44, 43, 40}, ids(resp.Reservations))

	_, err = svc.ListRange(context.Background(), &models.ListRangeRequest{Actor: aki, From: today, To: today})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListRange(context.Background(), &models.ListRangeRequest{Actor: admin, From: today, To: today.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDashboard(t *testing.T) {
	tests := []struct {
		name  string
		actor domain.Actor
		want  []int64
		from  string
		to    string
	}{
		{"admin sees a week around today", admin, []int64{43, 40}, "2025-05-03", "2025-05-17"},
		{"staff sees own reservations for today", aki, []int64{40}, "2025-05-10", "2025-05-10"},
		{"customer sees full history", hana, []int64{41, 40}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()

			resp, err := svc.Dashboard(context.Background(), tt.actor)

			require.NoError(t, err)
			assert.Equal(t, string(tt.actor.Role), resp.Role)
			assert.Equal(t, tt.want, ids(resp.Reservations))
			assert.Equal(t, tt.from, resp.From)
			assert.Equal(t, tt.to, resp.To)
		})
	}
}

func TestCancel_Idempotent(t *testing.T) {
	svc, d := newService()

	first, err := svc.Cancel(context.Background(), hana, 40)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", first.Status)

	second, err := svc.Cancel(context.Background(), hana, 40)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", second.Status)

	assert.Equal(t, 1, d.reservations.updates)
	assert.Equal(t, []string{"cancelled"}, d.metrics.events)
	require.Len(t, d.publisher.cancelled, 1)
	assert.Equal(t, int64(40), d.publisher.cancelled[0].ReservationID)
}

func TestCancel_Rejections(t *testing.T) {
	svc, d := newService()

	_, err := svc.Cancel(context.Background(), ren, 40)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Cancel(context.Background(), hana, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	assert.Zero(t, d.reservations.updates)
	assert.Empty(t, d.publisher.cancelled)
}

func TestCancel_ByStaff(t *testing.T) {
	svc, d := newService()

	_, err := svc.Cancel(context.Background(), aki, 43)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, d.reservations.rows[43].Status)
}

func TestDelete(t *testing.T) {
	svc, d := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), aki, 40), ErrAccessDenied)
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, 42), ErrReservationNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), admin, 41), ErrReservationNotActive)
	assert.Equal(t, domain.StatusCancelled, d.reservations.rows[41].Status)

	require.NoError(t, svc.Delete(context.Background(), admin, 40))
	assert.Equal(t, domain.StatusDeleted, d.reservations.rows[40].Status)
	assert.Equal(t, []string{"deleted"}, d.metrics.events)
}
