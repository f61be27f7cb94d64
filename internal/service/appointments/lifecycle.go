package appointments

import "github.com/m04kA/SMC-PetCareScheduler/internal/domain"

// allowedTransitions граф переходов строгого режима. Терминальные статусы не имеют исходящих ребер.
var allowedTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.StatusScheduled:  {domain.StatusConfirmed, domain.StatusCancelled, domain.StatusNoShow},
	domain.StatusConfirmed:  {domain.StatusInProgress, domain.StatusCancelled, domain.StatusNoShow},
	domain.StatusInProgress: {domain.StatusCompleted},
}

// CanTransition проверяет переход from -> to.
// В нестрогом режиме разрешено все; повторная установка текущего статуса разрешена всегда.
func CanTransition(from, to domain.AppointmentStatus, strict bool) bool {
	if !strict || from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
