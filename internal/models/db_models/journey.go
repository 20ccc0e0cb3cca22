package db_models

type JourneyType struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
}

func (JourneyType) TableName() string { return "journey_types" }

type JourneyCountry struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
	Lang string `gorm:"size:100" json:"lang"`
	Flag string `gorm:"size:100" json:"flag"`
}

func (JourneyCountry) TableName() string { return "journey_countries" }

// Journey is a user-authored travel story. Dates is free text on
// purpose: stories like "summer of 2010" don't fit a timestamp.
type Journey struct {
	BaseModel
	UserID      uint   `gorm:"not null" json:"user"`
	Title       string `gorm:"size:100;not null" json:"title"`
	TypeID      uint   `gorm:"not null" json:"type"`
	Dates       string `gorm:"size:500" json:"dates"`
	Description string `gorm:"size:500" json:"description"`
	Link        string `gorm:"size:500" json:"link"`

	User      *DiaryUser       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type      *JourneyType     `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"-"`
	Countries []JourneyCountry `gorm:"many2many:journeys_countries" json:"-"`
}

func (Journey) TableName() string { return "journeys" }
