package domain

// Service bookable service from the catalog
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
}

// Provider barber available for booking
type Provider struct {
	ID        string
	Name      string
	Specialty string
	AvatarURL string
	Rating    float64
}
