package domain

type Venue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VenueArea struct {
	ID       string `json:"id"`
	VenueID  string `json:"venue_id"`
	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
}
