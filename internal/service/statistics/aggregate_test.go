package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func date(day int) time.Time {
	return time.Date(2025, 5, day, 0, 0, 0, 0, time.Local)
}

func sample() []*domain.Reservation {
	aki, mio := ptr.Ptr("Aki"), ptr.Ptr("Mio")
	return []*domain.Reservation{
		{Menu: "cut", StaffID: ptr.Ptr(int64(3)), StaffName: aki, ReservationDate: date(1), Status: domain.StatusBooked},
		{Menu: "cut", StaffID: ptr.Ptr(int64(3)), StaffName: aki, ReservationDate: date(10), Status: domain.StatusBooked},
		{Menu: "color", StaffID: ptr.Ptr(int64(4)), StaffName: mio, ReservationDate: date(5), Status: domain.StatusBooked},
		{Menu: "color", ReservationDate: date(6), Status: domain.StatusBooked},
		{Menu: "perm", StaffID: ptr.Ptr(int64(4)), StaffName: mio, ReservationDate: date(5), Status: domain.StatusCancelled},
		{Menu: "perm", StaffID: ptr.Ptr(int64(4)), StaffName: mio, ReservationDate: date(5), Status: domain.StatusDeleted},
		{Menu: "cut", StaffID: ptr.Ptr(int64(3)), StaffName: aki, ReservationDate: date(11), Status: domain.StatusBooked},
	}
}

func TestCountByMenu(t *testing.T) {
	period := domain.StatisticsPeriod{From: date(1), To: date(10)}

	got := countByMenu(sample(), period)

	assert.Equal(t, map[string]int{"cut": 2, "color": 2}, got)
}

func TestCountByStaff_SkipsStaffless(t *testing.T) {
	period := domain.StatisticsPeriod{From: date(1), To: date(10)}

	got := countByStaff(sample(), period)

	assert.Equal(t, map[string]int{"Aki": 2, "Mio": 1}, got)
}

func TestCountByMenu_SumsToTotal(t *testing.T) {
	period := domain.StatisticsPeriod{From: date(1), To: date(31)}
	list := sample()

	sum := 0
	for _, c := range countByMenu(list, period) {
		sum += c
	}

	assert.Equal(t, countTotal(list, period), sum)
	assert.Equal(t, 5, sum)
}

func TestCountByStaff_NamelessStaff(t *testing.T) {
	list := []*domain.Reservation{{StaffID: ptr.Ptr(int64(9)), ReservationDate: date(2), Status: domain.StatusBooked}}

	got := countByStaff(list, domain.StatisticsPeriod{From: date(1), To: date(3)})

	assert.Equal(t, map[string]int{"staff #9": 1}, got)
}
