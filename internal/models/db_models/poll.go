package db_models

import "time"

// UsersCompletedPoll is a poll session. It is created when the user
// starts answering a questions group, before any answer rows exist,
// because every answer must reference its session id.
type UsersCompletedPoll struct {
	BaseModel
	UserID           uint      `gorm:"not null" json:"user"`
	QuestionsGroupID uint      `gorm:"not null" json:"questions_group"`
	CompletedAt      time.Time `gorm:"autoCreateTime" json:"completed_at"`

	User           *DiaryUser      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionsGroup *QuestionsGroup `gorm:"foreignKey:QuestionsGroupID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UsersCompletedPoll) TableName() string { return "users_completed_polls" }

type UsersAnswer struct {
	BaseModel
	UserID              uint      `gorm:"not null" json:"user"`
	QuestionID          uint      `gorm:"not null" json:"question"`
	AnswerID            uint      `gorm:"not null" json:"answer"`
	UserCompletedPollID uint      `gorm:"not null" json:"user_completed_poll"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`

	User              *DiaryUser          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Question          *Question           `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Answer            *Choice             `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
	UserCompletedPoll *UsersCompletedPoll `gorm:"foreignKey:UserCompletedPollID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UsersAnswer) TableName() string { return "users_answers" }
