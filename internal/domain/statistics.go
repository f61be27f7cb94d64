package domain

// StatusCounts количество записей по статусам
type StatusCounts struct {
	Scheduled  int
	Confirmed  int
	InProgress int
	Completed  int
	Cancelled  int
	NoShow     int
}

// Sum сумма по всем статусам
func (c StatusCounts) Sum() int {
	return c.Scheduled + c.Confirmed + c.InProgress + c.Completed + c.Cancelled + c.NoShow
}

// Statistics агрегаты по записям за период
type Statistics struct {
	StartDate  string
	EndDate    string
	Total      int
	ByStatus   StatusCounts
	ByService  map[string]int // название услуги -> количество
	ByEmployee map[string]int // имя сотрудника -> количество (только назначенные)
}
