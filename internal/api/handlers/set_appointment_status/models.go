package set_appointment_status

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"`
}
