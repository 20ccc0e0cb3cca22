package db_models

import (
	"strings"

	"gorm.io/gorm"
)

type DiaryUser struct {
	BaseModel
	Name  string `gorm:"size:200" json:"name"`
	Email string `gorm:"size:200;not null" json:"email"`
}

func (DiaryUser) TableName() string { return "diary_users" }

// BeforeSave lowercases the email no matter what case the caller sent,
// so the application-level uniqueness check stays case-insensitive.
func (u *DiaryUser) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(u.Email)
	return nil
}
