package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifediary/internal/models/db_models"
)

func newUserService(t *testing.T) (UserServiceInterface, testRepos) {
	t.Helper()
	db := setupTestDB(t)
	repos := newTestRepos(db)
	return NewUserService(repos.users, repos.timelines), repos
}

func TestRegisterUserBootstrapsTimelineAndEvent(t *testing.T) {
	svc, repos := newUserService(t)
	ctx := context.Background()

	result, err := svc.RegisterUser(ctx, "John Doe", "Some-Awesome-Email@Test.Test")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotZero(t, result.NewUserSavedID)
	assert.NotZero(t, result.NewUserTimelineSavedID)
	assert.NotZero(t, result.NewUserTimelineEventSavedID)

	user, err := repos.users.FindByEmail(ctx, "some-awesome-email@test.test")
	require.NoError(t, err)
	require.NotNil(t, user)

	timeline, err := repos.timelines.FirstTimelineByUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, timeline)
	assert.Equal(t, result.NewUserTimelineSavedID, timeline.ID)

	event, err := repos.timelines.EventByID(ctx, result.NewUserTimelineEventSavedID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, db_models.RegistrationEventText, event.Event)
	assert.Equal(t, db_models.EmotionGood, event.Emotion)
	require.NotNil(t, event.Category)
	assert.Equal(t, db_models.TechnicalTimelineCategory, event.Category.CategoryName)
}

func TestRegisterUserRejectsEmptyEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.RegisterUser(context.Background(), "John Doe", "")
	require.Error(t, err)
	assert.Equal(t, "email is empty!", err.Error())
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "John Doe", "dup@test.test")
	require.NoError(t, err)

	// The check is case-insensitive: stored emails are lowercased.
	_, err = svc.RegisterUser(ctx, "Jane Doe", "DUP@test.test")
	require.Error(t, err)
	assert.Equal(t, "this email (dup@test.test) already exist", err.Error())
}

func TestGetOneUserIncludesTimelineID(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	result, err := svc.RegisterUser(ctx, "John Doe", "john@test.test")
	require.NoError(t, err)

	user, err := svc.GetOneUser(ctx, "john@test.test")
	require.NoError(t, err)
	assert.Equal(t, result.NewUserSavedID, user.ID)
	assert.Equal(t, result.NewUserTimelineSavedID, user.TimelineID)
}

func TestGetOneUserUnknownEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetOneUser(context.Background(), "nobody@test.test")
	require.Error(t, err)
	assert.Equal(t, "user with such email (nobody@test.test) is not founded in DB", err.Error())
}
