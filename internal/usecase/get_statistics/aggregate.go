package get_statistics

import "github.com/m04kA/SMC-PetCareScheduler/internal/domain"

// Aggregate считает статистику по записям с startDate <= date <= endDate.
// Даты сравниваются как строки YYYY-MM-DD.
func Aggregate(appointments []*domain.Appointment, startDate, endDate string) *domain.Statistics {
	stats := &domain.Statistics{
		StartDate:  startDate,
		EndDate:    endDate,
		ByService:  make(map[string]int),
		ByEmployee: make(map[string]int),
	}

	for _, a := range appointments {
		if a.Date < startDate || a.Date > endDate {
			continue
		}

		stats.Total++

		switch a.Status {
		case domain.StatusScheduled:
			stats.ByStatus.Scheduled++
		case domain.StatusConfirmed:
			stats.ByStatus.Confirmed++
		case domain.StatusInProgress:
			stats.ByStatus.InProgress++
		case domain.StatusCompleted:
			stats.ByStatus.Completed++
		case domain.StatusCancelled:
			stats.ByStatus.Cancelled++
		case domain.StatusNoShow:
			stats.ByStatus.NoShow++
		}

		stats.ByService[a.ServiceName]++

		if a.EmployeeName != "" {
			stats.ByEmployee[a.EmployeeName]++
		}
	}

	return stats
}
