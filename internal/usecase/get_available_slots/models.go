package get_available_slots

import "github.com/m04kA/SMC-PetCareScheduler/pkg/types"

// Request модель запроса на получение свободных слотов
type Request struct {
	Date      string // Дата "2025-01-10"
	ServiceID string // Принимается, но на сетку не влияет
}

// Response модель ответа со свободными слотами по возрастанию
type Response struct {
	Date      string
	ServiceID string
	Slots     []types.TimeString
}

// BusinessDay сетка рабочего дня
type BusinessDay struct {
	Start       types.TimeString // начало первого слота
	End         types.TimeString // слоты начинаются строго раньше End
	StepMinutes int
}
