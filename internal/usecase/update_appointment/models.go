package update_appointment

// Request частичное обновление записи. nil означает "не менять".
type Request struct {
	ID string `json:"-"`

	CustomerID      *string `json:"customerId,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	PetID           *string `json:"petId,omitempty"`
	PetName         *string `json:"petName,omitempty"`
	ServiceID       *string `json:"serviceId,omitempty"`
	ServiceName     *string `json:"serviceName,omitempty"`
	ServiceCategory *string `json:"serviceCategory,omitempty"`
	EmployeeID      *string `json:"employeeId,omitempty"`
	EmployeeName    *string `json:"employeeName,omitempty"`

	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Status          *string `json:"status,omitempty"`

	Notes        *string `json:"notes,omitempty"`
	ReminderSent *bool   `json:"reminderSent,omitempty"`
}

// record итоговые значения после слияния, валидируются так же, как при создании
type record struct {
	CustomerID      string `json:"customerId" validate:"required,max=200"`
	CustomerName    string `json:"customerName" validate:"max=200"`
	PetID           string `json:"petId" validate:"required,max=200"`
	PetName         string `json:"petName" validate:"max=200"`
	ServiceID       string `json:"serviceId" validate:"required,max=200"`
	ServiceName     string `json:"serviceName" validate:"max=200"`
	ServiceCategory string `json:"serviceCategory" validate:"max=200"`
	EmployeeID      string `json:"employeeId" validate:"max=200"`
	EmployeeName    string `json:"employeeName" validate:"max=200"`
	Date            string `json:"date" validate:"required,isodate"`
	StartTime       string `json:"startTime" validate:"required,hhmm"`
	EndTime         string `json:"endTime" validate:"required,hhmm"`
	DurationMinutes int    `json:"duration" validate:"gte=0"`
	Status          string `json:"status" validate:"required,statusof"`
	Notes           string `json:"notes" validate:"max=1000"`
}
