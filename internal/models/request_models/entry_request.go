package request_models

type TagRef struct {
	TagID uint `json:"tag_id"`
}

type AddEntryRequest struct {
	DateTime    string   `json:"date_time"`
	UserID      uint     `json:"user_id"`
	CategoryID  uint     `json:"category_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Text        string   `json:"text"`
	ImageName   string   `json:"image_name"`
	ImageBase64 string   `json:"image_base64"`
	AudioName   string   `json:"audio_name"`
	AudioBase64 string   `json:"audio_base64"`
	Tags        []TagRef `json:"tags"`
}
