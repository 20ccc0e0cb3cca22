package db_models

import "time"

type EventReactionCategory struct {
	BaseModel
	CategoryName string `gorm:"size:100;not null" json:"category_name"`
}

func (EventReactionCategory) TableName() string { return "event_reaction_categories" }

type UsersTimelineEventReaction struct {
	BaseModel
	UserID      uint      `gorm:"not null" json:"user"`
	EventID     uint      `gorm:"not null" json:"event"`
	CreatedAt   time.Time `json:"created_at"`
	CategoryID  uint      `gorm:"not null" json:"category"`
	Reaction    string    `gorm:"size:500" json:"reaction"`
	Description string    `gorm:"size:500" json:"description"`
	Emotion     string    `gorm:"size:100" json:"emotion"`

	User     *DiaryUser             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Event    *UsersTimelineEvent    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Category *EventReactionCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UsersTimelineEventReaction) TableName() string { return "users_timeline_event_reactions" }
