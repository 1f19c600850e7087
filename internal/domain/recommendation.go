package domain

// RecommendationRequest carries the structured trip parameters sent to the
// external recommendation function. Days is the calendar-day difference
// between the trip's end and start dates and must be positive; the service
// layer rejects the request before any network call otherwise.
type RecommendationRequest struct {
	Destination string
	Budget      float64
	TravelType  TravelType
	Interests   []string
	Days        int
}
