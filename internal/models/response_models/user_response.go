package response_models

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// TimelineID rides along only when the user has a timeline.
	TimelineID uint `json:"timeline_id,omitempty"`
}

type NewUserResult struct {
	NewUserSavedID              uint `json:"new_user_saved_id"`
	NewUserTimelineSavedID      uint `json:"new_user_timeline_saved_id"`
	NewUserTimelineEventSavedID uint `json:"new_user_timeline_event_saved_id"`
}
