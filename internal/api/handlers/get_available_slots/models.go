package get_available_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StaffID    int64    `json:"staffId"`
	StaffName  string   `json:"staffName"`
	Date       string   `json:"date"`
	ShiftStart *string  `json:"shiftStart,omitempty"`
	ShiftEnd   *string  `json:"shiftEnd,omitempty"`
	Slots      []string `json:"slots"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	result := &AvailableSlotsResponse{
		StaffID:   resp.StaffID,
		StaffName: resp.StaffName,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
	if resp.ShiftStart != nil && resp.ShiftEnd != nil {
		start, end := resp.ShiftStart.String(), resp.ShiftEnd.String()
		result.ShiftStart, result.ShiftEnd = &start, &end
	}
	return result
}
