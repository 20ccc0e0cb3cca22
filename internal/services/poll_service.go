package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
	"lifediary/internal/models/response_models"
	"lifediary/internal/repositories"
	"lifediary/pkg/utils"
)

type PollServiceInterface interface {
	ListGroups(ctx context.Context) ([]db_models.QuestionsGroup, error)
	ListQuestions(ctx context.Context) ([]db_models.Question, error)
	ListChoices(ctx context.Context) ([]response_models.ChoiceListItem, error)
	ListCompletedPolls(ctx context.Context) ([]db_models.UsersCompletedPoll, error)
	ListAnswers(ctx context.Context) ([]db_models.UsersAnswer, error)

	QuestionsWithChoices(ctx context.Context, groupName string) (*response_models.GroupQuestions, error)
	PollResult(ctx context.Context, userID uint, groupName string) (*response_models.PollResult, error)

	AddCompletedPoll(ctx context.Context, req *request_models.AddCompletedPollRequest) (*db_models.UsersCompletedPoll, error)
	AddAnswer(ctx context.Context, req *request_models.AddAnswerRequest) (*db_models.UsersAnswer, error)
	AddAnswersWithCompletedPoll(ctx context.Context, req *request_models.AnswersWithCompletedPollRequest) (*response_models.AnswersWithCompletedPollResult, error)
}

type PollService struct {
	pollRepo     repositories.PollRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	timelineRepo repositories.TimelineRepositoryInterface
}

func NewPollService(
	pollRepo repositories.PollRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) PollServiceInterface {
	return &PollService{
		pollRepo:     pollRepo,
		userRepo:     userRepo,
		timelineRepo: timelineRepo,
	}
}

func (s *PollService) ListGroups(ctx context.Context) ([]db_models.QuestionsGroup, error) {
	return s.pollRepo.ListGroups(ctx)
}

func (s *PollService) ListQuestions(ctx context.Context) ([]db_models.Question, error) {
	return s.pollRepo.ListQuestions(ctx)
}

func (s *PollService) ListChoices(ctx context.Context) ([]response_models.ChoiceListItem, error) {
	choices, err := s.pollRepo.ListChoices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.ChoiceListItem, 0, len(choices))
	for _, choice := range choices {
		questionIDs := make([]uint, 0, len(choice.Questions))
		for _, q := range choice.Questions {
			questionIDs = append(questionIDs, q.ID)
		}
		out = append(out, response_models.ChoiceListItem{
			ID:         choice.ID,
			ChoiceText: choice.ChoiceText,
			Order:      choice.Order,
			Questions:  questionIDs,
		})
	}
	return out, nil
}

func (s *PollService) ListCompletedPolls(ctx context.Context) ([]db_models.UsersCompletedPoll, error) {
	return s.pollRepo.ListCompletedPolls(ctx)
}

func (s *PollService) ListAnswers(ctx context.Context) ([]db_models.UsersAnswer, error) {
	return s.pollRepo.ListAnswers(ctx)
}

func (s *PollService) QuestionsWithChoices(ctx context.Context, groupName string) (*response_models.GroupQuestions, error) {
	questions, err := s.pollRepo.QuestionsWithChoicesByGroupName(ctx, groupName)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if len(questions) == 0 {
		return nil, utils.NotFoundf("not found questions for this group (%s)", groupName)
	}

	items := make([]response_models.QuestionWithChoices, 0, len(questions))
	for _, question := range questions {
		choices := make([]response_models.ChoiceOption, 0, len(question.Choices))
		for _, choice := range question.Choices {
			choices = append(choices, response_models.ChoiceOption{
				ChoiceID:   choice.ID,
				ChoiceText: choice.ChoiceText,
			})
		}
		items = append(items, response_models.QuestionWithChoices{
			QuestionText: question.QuestionText,
			GroupID:      question.QuestionsGroupID,
			QuestionID:   question.ID,
			Choices:      choices,
		})
	}

	return &response_models.GroupQuestions{
		GroupID:  questions[0].QuestionsGroupID,
		DataList: items,
	}, nil
}

// PollResult computes the score of the user's latest poll session for
// the group. Each answer contributes choice order minus one; the
// category is the last matching range of the group's result_types in
// document order; the percentage is against the group's max score.
func (s *PollService) PollResult(ctx context.Context, userID uint, groupName string) (*response_models.PollResult, error) {
	lastPoll, err := s.pollRepo.LastCompletedPoll(ctx, userID, groupName)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if lastPoll == nil {
		return nil, utils.NotFoundf("not found last ComplitedPoll for this user: %d and Questions Group: %s", userID, groupName)
	}

	answers, err := s.pollRepo.AnswersForCompletedPoll(ctx, lastPoll.ID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if len(answers) == 0 {
		return nil, utils.NotFoundf("not found answers for this user: %d for this ComplitedPoll: %d", userID, lastPoll.ID)
	}

	totalScore := 0
	for _, answer := range answers {
		if answer.Answer == nil {
			return nil, s.calcError(userID, lastPoll.ID, fmt.Errorf("answer %d has no choice loaded", answer.ID))
		}
		totalScore += answer.Answer.Order - 1
	}

	group, err := s.pollRepo.GroupByName(ctx, groupName)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if group == nil || group.MaxScore == 0 {
		return nil, s.calcError(userID, lastPoll.ID, fmt.Errorf("questions group %s has no max_score", groupName))
	}

	// Halves round to even, so a 62.5% result reports as 62.
	totalPrc := math.RoundToEven(100.0 * float64(totalScore) / float64(group.MaxScore))

	return &response_models.PollResult{
		TotalScore: totalScore,
		TotalCat:   group.ResultTypes.CategoryFor(totalScore),
		TotalPrc:   int(totalPrc),
	}, nil
}

func (s *PollService) calcError(userID, pollID uint, err error) error {
	return utils.InvalidInputf("can not calc results by scores for this user: %d for this ComplitedPoll: %d. Error: %v", userID, pollID, err)
}

func (s *PollService) AddCompletedPoll(ctx context.Context, req *request_models.AddCompletedPollRequest) (*db_models.UsersCompletedPoll, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if user == nil {
		return nil, utils.InvalidInputf("incoming UsersCompletedPoll data is not valid: no DiaryUser with id %d", req.UserID)
	}

	group, err := s.pollRepo.GroupByID(ctx, req.QuestionsGroupID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if group == nil {
		return nil, utils.InvalidInputf("incoming UsersCompletedPoll data is not valid: no QuestionsGroup with id %d", req.QuestionsGroupID)
	}

	poll := db_models.UsersCompletedPoll{
		UserID:           req.UserID,
		QuestionsGroupID: req.QuestionsGroupID,
		CompletedAt:      time.Now().UTC(),
	}
	if err := s.pollRepo.InsertCompletedPoll(ctx, &poll); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving UsersCompletedPoll: %v", err)
	}
	return &poll, nil
}

func (s *PollService) AddAnswer(ctx context.Context, req *request_models.AddAnswerRequest) (*db_models.UsersAnswer, error) {
	answer, err := s.buildAnswer(ctx, req.UserID, req.QuestionID, req.ChoiceID, req.UserCompletedPollID)
	if err != nil {
		return nil, err
	}
	if err := s.pollRepo.InsertAnswer(ctx, answer); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving UsersAnswer: %v", err)
	}
	return answer, nil
}

func (s *PollService) buildAnswer(ctx context.Context, userID, questionID, choiceID, completedPollID uint) (*db_models.UsersAnswer, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	question, err := s.pollRepo.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	choice, err := s.pollRepo.ChoiceByID(ctx, choiceID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	poll, err := s.pollRepo.CompletedPollByID(ctx, completedPollID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	var missing []string
	if user == nil {
		missing = append(missing, fmt.Sprintf("user %d", userID))
	}
	if question == nil {
		missing = append(missing, fmt.Sprintf("question %d", questionID))
	}
	if choice == nil {
		missing = append(missing, fmt.Sprintf("choice %d", choiceID))
	}
	if poll == nil {
		missing = append(missing, fmt.Sprintf("user_completed_poll %d", completedPollID))
	}
	if len(missing) > 0 {
		return nil, utils.InvalidInputf("incoming UsersAnswer data is not valid: not found %s", strings.Join(missing, ", "))
	}

	return &db_models.UsersAnswer{
		UserID:              userID,
		QuestionID:          questionID,
		AnswerID:            choiceID,
		UserCompletedPollID: completedPollID,
		CreatedAt:           time.Now().UTC(),
	}, nil
}

// AddAnswersWithCompletedPoll is the composite write: the poll session,
// an automatic "poll passed" timeline event, then one answer row per
// submitted item. No transaction spans the whole operation; a failed
// step reports itself and earlier rows stay committed.
func (s *PollService) AddAnswersWithCompletedPoll(ctx context.Context, req *request_models.AnswersWithCompletedPollRequest) (*response_models.AnswersWithCompletedPollResult, error) {
	if req == nil || req.CompletedPoll == nil || len(req.UserAnswers) == 0 {
		return nil, utils.InvalidInputf("incoming data is not valid")
	}

	poll, err := s.AddCompletedPoll(ctx, req.CompletedPoll)
	if err != nil {
		return nil, err
	}

	if err := s.insertPollPassedEvent(ctx, req.CompletedPoll.UserID, req.CompletedPoll.QuestionsGroupID); err != nil {
		return nil, utils.PartialWritef("cp UserCompletedPoll is not saved! Error: %v", err)
	}

	savedIDs := make([]uint, 0, len(req.UserAnswers))
	var failures []string
	for _, item := range req.UserAnswers {
		answer, err := s.buildAnswer(ctx, item.UserID, item.QuestionID, item.ChoiceID, poll.ID)
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		if err := s.pollRepo.InsertAnswer(ctx, answer); err != nil {
			failures = append(failures, fmt.Sprintf("Error in add_user_answers_with_cp: in Saving user_answer: %v", err))
			continue
		}
		savedIDs = append(savedIDs, answer.ID)
	}
	if len(failures) > 0 {
		return nil, utils.PartialWritef(
			"Error in add_user_answers_with_cp: in validation or saving One of UsersAnswer: %s", strings.Join(failures, "; "))
	}

	return &response_models.AnswersWithCompletedPollResult{
		CPSavedID:   poll.ID,
		AnsSavedIDs: savedIDs,
	}, nil
}

func (s *PollService) insertPollPassedEvent(ctx context.Context, userID, groupID uint) error {
	group, err := s.pollRepo.GroupByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return fmt.Errorf("Not found such QuestionsGroup for questions_group_id: %d", groupID)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("Not found such DiaryUser for user_id: %d", userID)
	}

	timeline, err := s.timelineRepo.FirstTimelineByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if timeline == nil {
		return fmt.Errorf("Not found Timeline for such DiaryUser: %s", user.Name)
	}

	category, err := s.timelineRepo.CategoryByName(ctx, db_models.TechnicalTimelineCategory)
	if err != nil {
		return err
	}
	eventText := fmt.Sprintf(db_models.PollPassedEventFormat, group.GroupName)
	var template *db_models.TimelineEventTemplate
	if category != nil {
		template, err = s.timelineRepo.TemplateByCategoryAndEvent(ctx, category.ID, eventText)
		if err != nil {
			return err
		}
	}
	if category == nil || template == nil {
		return fmt.Errorf(
			"Not found Timeline Event Category or Timeline Event Template for adding auto-event \"QuestionsGroup PASSED\": tl_event_cat: %v, tl_event: %s, tl_event_template: %v",
			category, eventText, template)
	}

	event := db_models.UsersTimelineEvent{
		UserID:          user.ID,
		TimelineID:      timeline.ID,
		CategoryID:      category.ID,
		EventTemplateID: template.ID,
		Event:           eventText,
		Emotion:         db_models.EmotionGood,
		CreatedAt:       time.Now().UTC(),
	}
	return s.timelineRepo.InsertEvent(ctx, &event)
}
