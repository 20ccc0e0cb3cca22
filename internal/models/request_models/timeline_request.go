package request_models

type AddTimelineEventRequest struct {
	CreatedAt     string `json:"created_at"`
	UserID        uint   `json:"user_id"`
	Link          string `json:"link"`
	EventCategory string `json:"event_category"`
	EventTemplate string `json:"event_template"`
	Event         string `json:"event"`
	Emotion       string `json:"emotion"`
}

type EditTimelineEventRequest struct {
	EventID       uint   `json:"event_id"`
	CreatedAt     string `json:"created_at"`
	Link          string `json:"link"`
	EventCategory string `json:"event_category"`
	EventTemplate string `json:"event_template"`
	Event         string `json:"event"`
	Emotion       string `json:"emotion"`
}

// DeleteTimelineEventRequest identifies the acting user by email+name
// instead of an id. Deliberate contract: the pair works as a capability
// check for the destructive call.
type DeleteTimelineEventRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	EventID uint   `json:"event_id"`
}

type AddReactionRequest struct {
	CreatedAt   string `json:"created_at"`
	UserID      uint   `json:"user_id"`
	EventID     uint   `json:"event_id"`
	CategoryID  uint   `json:"category_id"`
	Reaction    string `json:"reaction"`
	Description string `json:"description"`
	Emotion     string `json:"emotion"`
}
