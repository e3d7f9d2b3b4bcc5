package domain

// DailyStats counters for one day of appointments
type DailyStats struct {
	Pending   int
	Confirmed int
	Total     int
}

// SummarizeDay derives the day's counters from already loaded appointments
func SummarizeDay(appointments []*Appointment) DailyStats {
	stats := DailyStats{Total: len(appointments)}
	for _, a := range appointments {
		switch a.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		}
	}
	return stats
}
