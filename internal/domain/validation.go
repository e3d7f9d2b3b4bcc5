package domain

import (
	"regexp"
	"strings"

	"github.com/m04kA/BarberShop-BookingService/pkg/phone"
)

// Field names used in field-scoped validation errors
const (
	FieldService = "service"
	FieldBarber  = "barber"
	FieldDate    = "date"
	FieldTime    = "time"
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
)

const (
	msgServiceRequired = "Selecione um serviço"
	msgBarberRequired  = "Selecione um barbeiro"
	msgDateRequired    = "Selecione uma data"
	msgTimeRequired    = "Selecione um horário"
	msgNameInvalid     = "Nome completo é obrigatório (mínimo 3 caracteres)"
	msgPhoneInvalid    = "Telefone inválido"
	msgEmailInvalid    = "Email inválido"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError structured validation failure for a single field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateCustomerName requires at least 3 characters after trimming
func ValidateCustomerName(name string) *FieldError {
	if len([]rune(strings.TrimSpace(name))) < MinCustomerNameChars {
		return &FieldError{Field: FieldName, Message: msgNameInvalid}
	}
	return nil
}

// ValidateCustomerPhone requires 10 or 11 digits, formatting is ignored
func ValidateCustomerPhone(raw string) *FieldError {
	if !phone.IsValid(raw) {
		return &FieldError{Field: FieldPhone, Message: msgPhoneInvalid}
	}
	return nil
}

// ValidateCustomerEmail email is optional, but must look like an address when present
func ValidateCustomerEmail(email string) *FieldError {
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return &FieldError{Field: FieldEmail, Message: msgEmailInvalid}
	}
	return nil
}
