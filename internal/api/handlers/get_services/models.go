package get_services

import "github.com/m04kA/BarberShop-BookingService/internal/domain"

// ServiceResponse HTTP модель услуги
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse список активных услуг по возрастанию цены
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func FromDomain(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return resp
}
