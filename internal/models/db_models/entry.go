package db_models

import "time"

type EntryTag struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
}

func (EntryTag) TableName() string { return "entry_tags" }

type EntryCategory struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

func (EntryCategory) TableName() string { return "entry_categories" }

// Entry is a diary note. Image and audio are opaque blobs; base64 is
// strictly a boundary encoding and never reaches this layer.
type Entry struct {
	BaseModel
	UserID      uint      `gorm:"not null" json:"user"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	DateTime    time.Time `json:"date_time"`
	Description string    `gorm:"size:500" json:"description"`
	Text        string    `gorm:"type:text" json:"text"`
	Image       []byte    `json:"-"`
	ImageName   string    `gorm:"size:100" json:"image_name"`
	Audio       []byte    `json:"-"`
	AudioName   string    `gorm:"size:100" json:"audio_name"`
	CategoryID  uint      `gorm:"not null" json:"category"`

	User     *DiaryUser     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category *EntryCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Tags     []EntryTag     `gorm:"many2many:entries_tags" json:"-"`
}

func (Entry) TableName() string { return "entries" }
