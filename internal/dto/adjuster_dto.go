package dto

type CreateAdjusterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	State     string `json:"state"`
	City      string `json:"city,omitempty"`
	Company   string `json:"company,omitempty"`
	License   string `json:"license,omitempty"`
}

// SearchResult is one ranked row from the search endpoint. AvgRating is nil
// when the adjuster has no approved reviews; "no rating" is not "zero
// rating".
type SearchResult struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	State       string   `json:"state"`
	City        string   `json:"city,omitempty"`
	Company     string   `json:"company,omitempty"`
	ReviewCount int      `json:"review_count"`
	AvgRating   *float64 `json:"avg_rating,omitempty"`
}

type SearchResponse struct {
	Adjusters []SearchResult `json:"adjusters"`
	Message   string         `json:"message,omitempty"`
}

type StateOverview struct {
	State string `json:"state"`
	Count int64  `json:"count"`
}
