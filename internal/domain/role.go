package domain

// Role роль текущего пользователя, полученная от сервиса авторизации
type Role string

const (
	RoleNone  Role = "none"
	RoleStaff Role = "staff"
	RoleOwner Role = "owner"
)

// ParseRole неизвестные значения трактуются как RoleNone
func ParseRole(raw string) Role {
	switch r := Role(raw); r {
	case RoleStaff, RoleOwner:
		return r
	default:
		return RoleNone
	}
}

// CanManageAppointments staff и owner одинаково допущены к работе с записями
func (r Role) CanManageAppointments() bool {
	return r == RoleStaff || r == RoleOwner
}

// CanViewReports отчёты доступны только владельцу
func (r Role) CanViewReports() bool {
	return r == RoleOwner
}
