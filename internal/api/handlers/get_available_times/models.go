package get_available_times

import (
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	availableTimes "github.com/m04kA/BarberShop-BookingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP модель ответа
type AvailableTimesResponse struct {
	BarberID string         `json:"barberId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest разбирает дату из query параметра
func ToUseCaseRequest(barberID string, dateStr string) (*availableTimes.Request, error) {
	date, err := domain.ParseCalendarDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &availableTimes.Request{
		BarberID: barberID,
		Date:     date,
	}, nil
}

func FromUseCaseResponse(resp *availableTimes.Response) *AvailableTimesResponse {
	out := &AvailableTimesResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
		})
	}
	return out
}
