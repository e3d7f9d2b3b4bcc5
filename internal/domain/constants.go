package domain

// Catalog display defaults
const (
	DefaultSpecialty     = "Barbeiro"
	DefaultBarberRating  = 5.0
	MinCustomerNameChars = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TransitionTargets статусы, в которые менеджер может перевести запись
var TransitionTargets = []AppointmentStatus{
	StatusConfirmed,
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие время мастера
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
