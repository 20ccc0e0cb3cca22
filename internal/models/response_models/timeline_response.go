package response_models

type CategoryWithTemplates struct {
	CategoryName   string   `json:"category_name"`
	ID             uint     `json:"id"`
	EventTemplates []string `json:"event_templates"`
}

// CatalogOrdering is the ordering heuristic's outcome: the (possibly
// re-ordered) category list plus the two bookkeeping strings the client
// shows for transparency.
type CatalogOrdering struct {
	Categories     []CategoryWithTemplates
	ResultOrdering string
	Reason         string
}

type TimelineEventItem struct {
	ID          uint   `json:"id"`
	Event       string `json:"event"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	Emotion     string `json:"emotion"`
	CatName     string `json:"cat_name"`
	TemplName   string `json:"templ_name"`
	CustomEvent string `json:"custom_event"`
}

type UserTimelineEvents struct {
	UserID         uint                `json:"user_id"`
	TimelineEvents []TimelineEventItem `json:"timeline_events"`
}

type EventSaved struct {
	EventSavedID uint `json:"event_saved_id"`
}

type ResStatus struct {
	ResStatus string `json:"res_status"`
}
