package request_models

type AddCompletedPollRequest struct {
	UserID           uint `json:"user_id"`
	QuestionsGroupID uint `json:"questions_group_id"`
}

type AddAnswerRequest struct {
	UserID              uint `json:"user_id"`
	QuestionID          uint `json:"question_id"`
	ChoiceID            uint `json:"choice_id"`
	UserCompletedPollID uint `json:"user_completed_poll_id"`
}

// AnswerItem is one answer inside the composite payload; the session id
// is stamped server-side after the completed poll row is created.
type AnswerItem struct {
	UserID     uint `json:"user_id"`
	QuestionID uint `json:"question_id"`
	ChoiceID   uint `json:"choice_id"`
}

type AnswersWithCompletedPollRequest struct {
	CompletedPoll *AddCompletedPollRequest `json:"completed_poll"`
	UserAnswers   []AnswerItem             `json:"user_answers"`
}
