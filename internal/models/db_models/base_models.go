package db_models

// BaseModel carries the integer primary key shared by every table.
// The store's schema predates this service, so keys stay plain
// auto-increment integers instead of UUIDs.
type BaseModel struct {
	ID uint `gorm:"primaryKey" json:"id"`
}
