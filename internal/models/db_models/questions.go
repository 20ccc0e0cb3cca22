package db_models

import (
	"fmt"

	"gorm.io/gorm"
)

type QuestionsGroup struct {
	BaseModel
	GroupName        string       `gorm:"size:100;unique;not null" json:"group_name"`
	GroupTitle       string       `gorm:"size:100" json:"group_title"`
	GroupDescription string       `gorm:"size:500" json:"group_description"`
	GroupTimeToPass  string       `gorm:"size:100" json:"group_time_to_pass"`
	GroupFrequency   string       `gorm:"size:100" json:"group_frequency"`
	MaxScore         int          `json:"max_score"`
	ResultTypes      ResultRanges `json:"result_types"`

	Questions []Question `gorm:"foreignKey:QuestionsGroupID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuestionsGroup) TableName() string { return "questions_groups" }

// AfterSave mirrors the group onto the timeline catalog: the technical
// "App Achievements" category is created once, and a fresh
// "Passed <group> poll" template row is inserted on every save, edits
// included. The duplicate rows are a known trait of the product and
// must not be deduplicated here.
func (g *QuestionsGroup) AfterSave(tx *gorm.DB) error {
	var cat TimelineEventCategory
	err := tx.Where("category_name = ?", TechnicalTimelineCategory).First(&cat).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		cat = TimelineEventCategory{CategoryName: TechnicalTimelineCategory}
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}
	}

	tmpl := TimelineEventTemplate{
		EventCategoryID: cat.ID,
		Event:           fmt.Sprintf(PollPassedEventFormat, g.GroupName),
	}
	return tx.Create(&tmpl).Error
}

type Question struct {
	BaseModel
	QuestionsGroupID uint   `gorm:"not null" json:"questions_group"`
	QuestionText     string `gorm:"size:500;not null" json:"question_text"`
	Order            int    `gorm:"column:order;default:1" json:"order"`

	QuestionsGroup *QuestionsGroup `gorm:"foreignKey:QuestionsGroupID;constraint:OnDelete:CASCADE" json:"-"`
	Choices        []Choice        `gorm:"many2many:choices_questions" json:"-"`
}

func (Question) TableName() string { return "questions" }

// Choice is shared between questions: the same answer text can serve
// several questions of a group, so the relation is many-to-many.
// Order is the 1-based position shown to the user; the scoring engine
// maps it to a 0-based score.
type Choice struct {
	BaseModel
	ChoiceText string `gorm:"size:500;not null" json:"choice_text"`
	Order      int    `gorm:"column:order;default:1" json:"order"`

	Questions []Question `gorm:"many2many:choices_questions" json:"-"`
}

func (Choice) TableName() string { return "choices" }
