package response_models

// JourneyWithCountries flattens the journey row with its type name and
// the flags of every linked country.
type JourneyWithCountries struct {
	JourneyID   uint     `json:"journey_id"`
	UserID      uint     `json:"user_id"`
	JourneyType string   `json:"journey_type"`
	Title       string   `json:"title"`
	Dates       string   `json:"dates"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Countries   []string `json:"countries"`
}

type JourneySaved struct {
	ID          uint     `json:"id"`
	UserID      uint     `json:"user_id"`
	TypeID      uint     `json:"type_id"`
	Title       string   `json:"title"`
	Dates       string   `json:"dates"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	CountryIDs  []uint   `json:"country"`
}
