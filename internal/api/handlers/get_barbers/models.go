package get_barbers

import "github.com/m04kA/BarberShop-BookingService/internal/domain"

// BarberResponse HTTP модель барбера
type BarberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Rating    float64 `json:"rating"`
}

// BarberListResponse список активных барберов по имени
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

func FromDomain(providers []domain.Provider) *BarberListResponse {
	resp := &BarberListResponse{Barbers: make([]BarberResponse, 0, len(providers))}
	for _, p := range providers {
		item := BarberResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			Rating:    p.Rating,
		}
		if p.AvatarURL != "" {
			avatar := p.AvatarURL
			item.AvatarURL = &avatar
		}
		resp.Barbers = append(resp.Barbers, item)
	}
	return resp
}
