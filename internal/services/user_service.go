package services

import (
	"context"
	"strings"
	"time"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/response_models"
	"lifediary/internal/repositories"
	"lifediary/pkg/utils"
)

type UserServiceInterface interface {
	ListUsers(ctx context.Context) ([]db_models.DiaryUser, error)
	GetOneUser(ctx context.Context, email string) (*response_models.UserResponse, error)
	RegisterUser(ctx context.Context, name, email string) (*response_models.NewUserResult, error)
}

type UserService struct {
	userRepo     repositories.UserRepositoryInterface
	timelineRepo repositories.TimelineRepositoryInterface
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	timelineRepo repositories.TimelineRepositoryInterface,
) UserServiceInterface {
	return &UserService{
		userRepo:     userRepo,
		timelineRepo: timelineRepo,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]db_models.DiaryUser, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *UserService) GetOneUser(ctx context.Context, email string) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if user == nil {
		return nil, utils.NotFoundf("user with such email (%s) is not founded in DB", email)
	}

	out := &response_models.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}

	timeline, err := s.timelineRepo.FirstTimelineByUser(ctx, user.ID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if timeline != nil {
		out.TimelineID = timeline.ID
	}
	return out, nil
}

// RegisterUser bootstraps a new diary user: the user row, their first
// timeline, and a "Registration in App" event under the technical
// category. The writes run sequentially; once the user row is in, a
// later failure is reported as a partial write and nothing is undone.
func (s *UserService) RegisterUser(ctx context.Context, name, email string) (*response_models.NewUserResult, error) {
	if email == "" {
		return nil, utils.InvalidInputf("email is empty!")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if existing != nil {
		return nil, utils.AlreadyExistsf("this email (%s) already exist", strings.ToLower(email))
	}

	user := db_models.DiaryUser{Name: name, Email: email}
	if err := s.userRepo.Insert(ctx, &user); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving user: %v", err)
	}

	timeline := db_models.UsersTimeline{UserID: user.ID}
	if err := s.timelineRepo.InsertTimeline(ctx, &timeline); err != nil {
		return nil, utils.PartialWritef(
			"Error in validation or saving One of UsersTimeline or UsersTimelineEvent: Error in Saving user_timeline: %v", err)
	}

	event, err := s.insertRegistrationEvent(ctx, user.ID, timeline.ID)
	if err != nil {
		return nil, utils.PartialWritef(
			"Error in validation or saving One of UsersTimeline or UsersTimelineEvent: %v", err)
	}

	return &response_models.NewUserResult{
		NewUserSavedID:              user.ID,
		NewUserTimelineSavedID:      timeline.ID,
		NewUserTimelineEventSavedID: event.ID,
	}, nil
}

func (s *UserService) insertRegistrationEvent(ctx context.Context, userID, timelineID uint) (*db_models.UsersTimelineEvent, error) {
	category, err := s.timelineRepo.EnsureCategory(ctx, db_models.TechnicalTimelineCategory)
	if err != nil {
		return nil, utils.DatabaseErrf("Error in Saving technical category: %v", err)
	}

	template, err := s.timelineRepo.EnsureTemplate(ctx, category.ID, db_models.RegistrationEventText)
	if err != nil {
		return nil, utils.DatabaseErrf("Error in Saving technical template: %v", err)
	}

	event := db_models.UsersTimelineEvent{
		UserID:          userID,
		TimelineID:      timelineID,
		CategoryID:      category.ID,
		EventTemplateID: template.ID,
		Event:           db_models.RegistrationEventText,
		Emotion:         db_models.EmotionGood,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.timelineRepo.InsertEvent(ctx, &event); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving user_timeline_event: %v", err)
	}
	return &event, nil
}
