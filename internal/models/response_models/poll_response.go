package response_models

type ChoiceOption struct {
	ChoiceID   uint   `json:"choice_id"`
	ChoiceText string `json:"choice_text"`
}

type QuestionWithChoices struct {
	QuestionText string         `json:"question_text"`
	GroupID      uint           `json:"group_id"`
	QuestionID   uint           `json:"question_id"`
	Choices      []ChoiceOption `json:"choices"`
}

type GroupQuestions struct {
	GroupID  uint                  `json:"group_id"`
	DataList []QuestionWithChoices `json:"data_list"`
}

// ChoiceListItem flattens the choice↔question many-to-many into the
// id list shape the catalog endpoint exposes.
type ChoiceListItem struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	Order      int    `json:"order"`
	Questions  []uint `json:"question"`
}

type PollResult struct {
	TotalScore int    `json:"total_score"`
	TotalCat   string `json:"total_cat"`
	TotalPrc   int    `json:"total_prc"`
}

type AnswersWithCompletedPollResult struct {
	CPSavedID   uint   `json:"cp_saved_id"`
	AnsSavedIDs []uint `json:"ans_saved_ids"`
}
