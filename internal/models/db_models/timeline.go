package db_models

import "time"

// Reserved catalog texts. System-generated events always land in the
// technical category; handlers must use these constants instead of
// spelling the strings out.
const (
	TechnicalTimelineCategory = "App Achievements"
	PollPassedEventFormat     = "Passed %s poll"
	RegistrationEventText     = "Registration in App"

	// CustomTemplateName marks events whose text was typed by the user
	// instead of picked from a template.
	CustomTemplateName = "Custom"
)

// Canned emotion glyphs attached to system-generated events.
const (
	EmotionGood   = "🙂"
	EmotionNormal = "😐"
	EmotionBad    = "🙁"
)

type UsersTimeline struct {
	BaseModel
	UserID      uint      `gorm:"not null" json:"user"`
	StartDt     time.Time `gorm:"autoCreateTime" json:"start_dt"`
	Description string    `gorm:"size:500" json:"description"`

	User *DiaryUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UsersTimeline) TableName() string { return "users_timelines" }

type TimelineEventCategory struct {
	BaseModel
	CategoryName string `gorm:"size:100;not null" json:"category_name"`
}

func (TimelineEventCategory) TableName() string { return "timeline_event_categories" }

type TimelineEventTemplate struct {
	BaseModel
	EventCategoryID uint   `gorm:"not null" json:"event_category"`
	Event           string `gorm:"size:200;not null" json:"event"`

	EventCategory *TimelineEventCategory `gorm:"foreignKey:EventCategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TimelineEventTemplate) TableName() string { return "timeline_event_templates" }

type UsersTimelineEvent struct {
	BaseModel
	UserID          uint      `gorm:"not null" json:"user"`
	CreatedAt       time.Time `json:"created_at"`
	TimelineID      uint      `gorm:"not null" json:"timeline"`
	CategoryID      uint      `gorm:"not null" json:"category"`
	EventTemplateID uint      `gorm:"not null" json:"event_template"`
	Event           string    `gorm:"size:500" json:"event"`
	Link            string    `gorm:"size:500" json:"link"`
	Description     string    `gorm:"size:500" json:"description"`
	Emotion         string    `gorm:"size:100" json:"emotion"`

	User          *DiaryUser             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timeline      *UsersTimeline         `gorm:"foreignKey:TimelineID;constraint:OnDelete:CASCADE" json:"-"`
	Category      *TimelineEventCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	EventTemplate *TimelineEventTemplate `gorm:"foreignKey:EventTemplateID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UsersTimelineEvent) TableName() string { return "users_timeline_events" }
