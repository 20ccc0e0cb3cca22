package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lifediary/internal/models/db_models"
)

type PollRepositoryInterface interface {
	ListGroups(ctx context.Context) ([]db_models.QuestionsGroup, error)
	ListQuestions(ctx context.Context) ([]db_models.Question, error)
	ListChoices(ctx context.Context) ([]db_models.Choice, error)
	ListCompletedPolls(ctx context.Context) ([]db_models.UsersCompletedPoll, error)
	ListAnswers(ctx context.Context) ([]db_models.UsersAnswer, error)

	GroupByID(ctx context.Context, id uint) (*db_models.QuestionsGroup, error)
	GroupByName(ctx context.Context, name string) (*db_models.QuestionsGroup, error)
	QuestionByID(ctx context.Context, id uint) (*db_models.Question, error)
	ChoiceByID(ctx context.Context, id uint) (*db_models.Choice, error)
	CompletedPollByID(ctx context.Context, id uint) (*db_models.UsersCompletedPoll, error)

	QuestionsWithChoicesByGroupName(ctx context.Context, groupName string) ([]db_models.Question, error)
	LastCompletedPoll(ctx context.Context, userID uint, groupName string) (*db_models.UsersCompletedPoll, error)
	AnswersForCompletedPoll(ctx context.Context, completedPollID uint) ([]db_models.UsersAnswer, error)

	InsertCompletedPoll(ctx context.Context, poll *db_models.UsersCompletedPoll) error
	InsertAnswer(ctx context.Context, answer *db_models.UsersAnswer) error
}

func NewPollRepository(db *gorm.DB) PollRepositoryInterface {
	return &pollRepository{db: db}
}

type pollRepository struct {
	db *gorm.DB
}

func (r *pollRepository) ListGroups(ctx context.Context) ([]db_models.QuestionsGroup, error) {
	var groups []db_models.QuestionsGroup
	if err := r.db.WithContext(ctx).Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *pollRepository) ListQuestions(ctx context.Context) ([]db_models.Question, error) {
	var questions []db_models.Question
	if err := r.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *pollRepository) ListChoices(ctx context.Context) ([]db_models.Choice, error) {
	var choices []db_models.Choice
	err := r.db.WithContext(ctx).Preload("Questions").Order("id").Find(&choices).Error
	if err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *pollRepository) ListCompletedPolls(ctx context.Context) ([]db_models.UsersCompletedPoll, error) {
	var polls []db_models.UsersCompletedPoll
	if err := r.db.WithContext(ctx).Order("id").Find(&polls).Error; err != nil {
		return nil, err
	}
	return polls, nil
}

func (r *pollRepository) ListAnswers(ctx context.Context) ([]db_models.UsersAnswer, error) {
	var answers []db_models.UsersAnswer
	if err := r.db.WithContext(ctx).Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *pollRepository) GroupByID(ctx context.Context, id uint) (*db_models.QuestionsGroup, error) {
	var group db_models.QuestionsGroup
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *pollRepository) GroupByName(ctx context.Context, name string) (*db_models.QuestionsGroup, error) {
	var group db_models.QuestionsGroup
	err := r.db.WithContext(ctx).Where("group_name = ?", name).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *pollRepository) QuestionByID(ctx context.Context, id uint) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *pollRepository) ChoiceByID(ctx context.Context, id uint) (*db_models.Choice, error) {
	var choice db_models.Choice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&choice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &choice, nil
}

func (r *pollRepository) CompletedPollByID(ctx context.Context, id uint) (*db_models.UsersCompletedPoll, error) {
	var poll db_models.UsersCompletedPoll
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&poll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poll, nil
}

// QuestionsWithChoicesByGroupName returns the group's questions in id
// order, each with its choices ordered by choice order.
func (r *pollRepository) QuestionsWithChoicesByGroupName(ctx context.Context, groupName string) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Joins("JOIN questions_groups ON questions_groups.id = questions.questions_group_id").
		Where("questions_groups.group_name = ?", groupName).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order(`choices."order"`)
		}).
		Order("questions.id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// LastCompletedPoll picks the user's latest poll session for the group.
// Sessions sharing a completed_at timestamp tie-break on highest id.
func (r *pollRepository) LastCompletedPoll(ctx context.Context, userID uint, groupName string) (*db_models.UsersCompletedPoll, error) {
	var poll db_models.UsersCompletedPoll
	err := r.db.WithContext(ctx).
		Joins("JOIN questions_groups ON questions_groups.id = users_completed_polls.questions_group_id").
		Where("users_completed_polls.user_id = ? AND questions_groups.group_name = ?", userID, groupName).
		Order("users_completed_polls.completed_at DESC").
		Order("users_completed_polls.id DESC").
		First(&poll).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poll, nil
}

func (r *pollRepository) AnswersForCompletedPoll(ctx context.Context, completedPollID uint) ([]db_models.UsersAnswer, error) {
	var answers []db_models.UsersAnswer
	err := r.db.WithContext(ctx).
		Where("user_completed_poll_id = ?", completedPollID).
		Preload("Question").
		Preload("Answer").
		Order("id").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *pollRepository) InsertCompletedPoll(ctx context.Context, poll *db_models.UsersCompletedPoll) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(poll).Error
	})
}

func (r *pollRepository) InsertAnswer(ctx context.Context, answer *db_models.UsersAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(answer).Error
	})
}
