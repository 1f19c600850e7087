package domain

// TripExportRow is a single row in the trips export: a flat, string-formatted
// view of one trip, suitable for CSV or JSON download.
// Dates are "2006-01-02" formatted; Budget keeps two decimal places.
type TripExportRow struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Budget      string `json:"budget"`
	TravelType  string `json:"travel_type"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}
