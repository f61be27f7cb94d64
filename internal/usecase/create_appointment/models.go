package create_appointment

// Request модель запроса на создание записи
type Request struct {
	CustomerID      string `json:"customerId" validate:"required,max=200"`
	CustomerName    string `json:"customerName" validate:"max=200"`
	PetID           string `json:"petId" validate:"required,max=200"`
	PetName         string `json:"petName" validate:"max=200"`
	ServiceID       string `json:"serviceId" validate:"required,max=200"`
	ServiceName     string `json:"serviceName" validate:"max=200"`
	ServiceCategory string `json:"serviceCategory" validate:"max=200"`
	EmployeeID      string `json:"employeeId" validate:"max=200"`
	EmployeeName    string `json:"employeeName" validate:"max=200"`

	Date            string `json:"date" validate:"required,isodate"`      // "2025-01-10"
	StartTime       string `json:"startTime" validate:"required,hhmm"`    // "09:00"
	EndTime         string `json:"endTime" validate:"required,hhmm"`      // "10:00"
	DurationMinutes int    `json:"duration" validate:"gte=0"`             // 0 - вычислить из интервала
	Status          string `json:"status" validate:"omitempty,statusof"` // пусто - scheduled

	Notes        string `json:"notes" validate:"max=1000"`
	ReminderSent bool   `json:"reminderSent"`
	CreatedBy    string `json:"-"`
}
