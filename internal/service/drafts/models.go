package drafts

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// DateTimeUpdate выбор даты и времени, nil - поле не меняется
type DateTimeUpdate struct {
	Date *time.Time
	Time *types.TimeString
}

// CustomerUpdate изменение данных клиента, nil - поле не меняется
type CustomerUpdate struct {
	Name  *string
	Phone *string
	Email *string
}
