package get_statistics

// Request период статистики, обе границы включительно
type Request struct {
	StartDate string // "2025-01-01"
	EndDate   string // "2025-01-31"
}
