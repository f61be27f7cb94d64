package timeblocks

// CreateRequest запрос на создание блокировки времени
type CreateRequest struct {
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	Reason    string `json:"reason" validate:"max=500"`
	CreatedBy string `json:"-"`
}
