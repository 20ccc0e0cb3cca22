package response_models

import "time"

type EntryResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	DateTime    time.Time `json:"date_time"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	CatName     string    `json:"cat_name"`
	ImageBase64 string    `json:"image_base64"`
	AudioBase64 string    `json:"audio_base64"`
	Tags        []string  `json:"tags"`
}

// EntryDetail is the single-entry shape; its timestamp key is "date",
// not "date_time", and the user id is omitted. Kept as-is for client
// compatibility.
type EntryDetail struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	CatName     string    `json:"cat_name"`
	ImageBase64 string    `json:"image_base64"`
	AudioBase64 string    `json:"audio_base64"`
	Tags        []string  `json:"tags"`
}

type CategoryEntries struct {
	Category string          `json:"category"`
	Entries  []EntryResponse `json:"entries"`
}

type EntrySaved struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	CategoryID  uint      `json:"category_id"`
	Title       string    `json:"title"`
	DateTime    time.Time `json:"date_time"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	ImageName   string    `json:"image_name"`
	AudioName   string    `json:"audio_name"`
	TagIDs      []uint    `json:"tag"`
}
