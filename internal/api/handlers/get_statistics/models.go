package get_statistics

import "github.com/m04kA/SMC-PetCareScheduler/internal/domain"

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	Total      int            `json:"total"`
	ByStatus   ByStatus       `json:"byStatus"`
	ByService  map[string]int `json:"byService"`
	ByEmployee map[string]int `json:"byEmployee"`
}

// ByStatus количество записей по статусам, ключи совпадают со значениями статусов
type ByStatus struct {
	Scheduled  int `json:"scheduled"`
	Confirmed  int `json:"confirmed"`
	InProgress int `json:"in-progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	NoShow     int `json:"no-show"`
}

func FromDomain(s *domain.Statistics) *StatisticsResponse {
	byService := s.ByService
	if byService == nil {
		byService = map[string]int{}
	}
	byEmployee := s.ByEmployee
	if byEmployee == nil {
		byEmployee = map[string]int{}
	}

	return &StatisticsResponse{
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Total:     s.Total,
		ByStatus: ByStatus{
			Scheduled:  s.ByStatus.Scheduled,
			Confirmed:  s.ByStatus.Confirmed,
			InProgress: s.ByStatus.InProgress,
			Completed:  s.ByStatus.Completed,
			Cancelled:  s.ByStatus.Cancelled,
			NoShow:     s.ByStatus.NoShow,
		},
		ByService:  byService,
		ByEmployee: byEmployee,
	}
}
