package request_models

type CountryRef struct {
	CountryID uint `json:"country_id"`
}

type AddJourneyRequest struct {
	UserID      uint         `json:"user_id"`
	TypeID      uint         `json:"type_id"`
	Title       string       `json:"title"`
	Dates       string       `json:"dates"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	Countries   []CountryRef `json:"countries"`
}
