// Package phone нормализует ввод телефонного номера по маске (DD) DDDDD-DDDD.
//
// Format никогда не возвращает ошибку и терпит частичный ввод на каждом нажатии клавиши,
// поэтому его можно вызывать при каждом обновлении поля.
package phone

import "strings"

const (
	MinDigits = 10
	MaxDigits = 11
)

// Digits оставляет только цифры
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format применяет маску к произвольному (в том числе частичному) вводу
//
// Примеры:
// - "11"          → "11"
// - "119123"      → "(11) 9123"
// - "1133334444"  → "(11) 3333-4444"
// - "11912345678" → "(11) 91234-5678"
func Format(s string) string {
	d := Digits(s)
	if len(d) > MaxDigits {
		d = d[:MaxDigits]
	}

	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 7:
		return "(" + d[:2] + ") " + d[2:]
	case n == MinDigits:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// IsValid true, если в номере от 10 до 11 цифр
func IsValid(s string) bool {
	n := len(Digits(s))
	return n >= MinDigits && n <= MaxDigits
}
