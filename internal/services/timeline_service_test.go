package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
)

func newTimelineService(t *testing.T) (TimelineServiceInterface, testRepos, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	repos := newTestRepos(db)
	return NewTimelineService(repos.timelines, repos.users), repos, db
}

// seedCatalog inserts two categories with templates in insertion order.
func seedCatalog(t *testing.T, db *gorm.DB) ([]db_models.TimelineEventCategory, []db_models.TimelineEventTemplate) {
	t.Helper()

	categories := []db_models.TimelineEventCategory{
		{CategoryName: db_models.TechnicalTimelineCategory},
		{CategoryName: "Good Events"},
	}
	require.NoError(t, db.Create(&categories).Error)

	templates := []db_models.TimelineEventTemplate{
		{EventCategoryID: categories[0].ID, Event: db_models.RegistrationEventText},
		{EventCategoryID: categories[0].ID, Event: "Passed Group1 poll"},
		{EventCategoryID: categories[1].ID, Event: "Some Good Event"},
		{EventCategoryID: categories[1].ID, Event: "Another Good Event"},
	}
	require.NoError(t, db.Create(&templates).Error)

	return categories, templates
}

func TestCatalogDefaultOrdering(t *testing.T) {
	svc, _, db := newTimelineService(t)
	seedCatalog(t, db)

	catalog, err := svc.CatalogWithOrdering(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "default", catalog.ResultOrdering)
	assert.Equal(t, "event_id was not provided", catalog.Reason)
	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, db_models.TechnicalTimelineCategory, catalog.Categories[0].CategoryName)
	assert.Equal(t, []string{db_models.RegistrationEventText, "Passed Group1 poll"}, catalog.Categories[0].EventTemplates)
}

func TestCatalogUnknownEventFallsBackToDefault(t *testing.T) {
	svc, _, db := newTimelineService(t)
	seedCatalog(t, db)

	catalog, err := svc.CatalogWithOrdering(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "default", catalog.ResultOrdering)
	assert.Equal(t, "such event_id (999) was not found in DB", catalog.Reason)
}

func TestCatalogReordersByEvent(t *testing.T) {
	svc, repos, db := newTimelineService(t)
	categories, templates := seedCatalog(t, db)
	user, timeline := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	// The event points at the second category's second template, so both
	// lists must be rotated to put them first.
	event := db_models.UsersTimelineEvent{
		UserID:          user.ID,
		TimelineID:      timeline.ID,
		CategoryID:      categories[1].ID,
		EventTemplateID: templates[3].ID,
		Event:           "Another Good Event",
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, repos.timelines.InsertEvent(ctx, &event))

	eventID := fmt.Sprintf("%d", event.ID)
	catalog, err := svc.CatalogWithOrdering(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t,
		fmt.Sprintf("categories AND templates were ordered by provided event_id (%s)", eventID),
		catalog.ResultOrdering)
	assert.Equal(t,
		"event_id was provided and its category and its template was founded in DB",
		catalog.Reason)
	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, "Good Events", catalog.Categories[0].CategoryName)
	assert.Equal(t, []string{"Another Good Event", "Some Good Event"}, catalog.Categories[0].EventTemplates)
	assert.Equal(t, db_models.TechnicalTimelineCategory, catalog.Categories[1].CategoryName)
}

func TestEventsByUserNewestFirstWithCustomMarker(t *testing.T) {
	svc, repos, db := newTimelineService(t)
	categories, templates := seedCatalog(t, db)
	user, timeline := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	custom := db_models.TimelineEventTemplate{
		EventCategoryID: categories[1].ID,
		Event:           db_models.CustomTemplateName,
	}
	require.NoError(t, db.Create(&custom).Error)

	older := db_models.UsersTimelineEvent{
		UserID: user.ID, TimelineID: timeline.ID,
		CategoryID: categories[0].ID, EventTemplateID: templates[0].ID,
		Event:     db_models.RegistrationEventText,
		Emotion:   db_models.EmotionNormal,
		CreatedAt: time.Date(2025, 2, 9, 18, 53, 9, 0, time.UTC),
	}
	require.NoError(t, repos.timelines.InsertEvent(ctx, &older))

	newer := db_models.UsersTimelineEvent{
		UserID: user.ID, TimelineID: timeline.ID,
		CategoryID: categories[1].ID, EventTemplateID: custom.ID,
		Event:     "my own wording",
		Emotion:   db_models.EmotionGood,
		CreatedAt: time.Date(2025, 2, 10, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.timelines.InsertEvent(ctx, &newer))

	result, err := svc.EventsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	require.Len(t, result.TimelineEvents, 2)

	first := result.TimelineEvents[0]
	assert.Equal(t, "my own wording", first.Event)
	assert.Equal(t, "2025-02-10T10:00:00", first.CreatedAt)
	assert.Equal(t, db_models.CustomTemplateName, first.TemplName)
	assert.Equal(t, "my own wording", first.CustomEvent)

	second := result.TimelineEvents[1]
	assert.Equal(t, "2025-02-09T18:53:09", second.CreatedAt)
	assert.Equal(t, "", second.CustomEvent)
}

func TestEventsByUserNoTimeline(t *testing.T) {
	svc, _, _ := newTimelineService(t)

	_, err := svc.EventsByUser(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "not found any Timeline for this user: 42", err.Error())
}

func TestAddEventValidatesCatalogLookups(t *testing.T) {
	svc, _, db := newTimelineService(t)
	seedCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")

	_, err := svc.AddEvent(context.Background(), &request_models.AddTimelineEventRequest{
		CreatedAt:     "2025-10-30 21:22:23",
		UserID:        user.ID,
		EventCategory: "No Such Category",
		EventTemplate: "Some Good Event",
		Event:         "Some Good Event",
		Emotion:       db_models.EmotionGood,
	})
	require.Error(t, err)
	assert.Equal(t, "incoming data is not valid", err.Error())
}

func TestAddAndEditEvent(t *testing.T) {
	svc, repos, db := newTimelineService(t)
	seedCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	saved, err := svc.AddEvent(ctx, &request_models.AddTimelineEventRequest{
		CreatedAt:     "2025-10-30 21:22:23",
		UserID:        user.ID,
		Link:          "awesome.photo.com",
		EventCategory: "Good Events",
		EventTemplate: "Some Good Event",
		Event:         "Some Good Event",
		Emotion:       db_models.EmotionGood,
	})
	require.NoError(t, err)
	require.NotZero(t, saved.EventSavedID)

	status, err := svc.EditEvent(ctx, &request_models.EditTimelineEventRequest{
		EventID:       saved.EventSavedID,
		CreatedAt:     "2025-10-31 08:00:00",
		Link:          "better.photo.com",
		EventCategory: "Good Events",
		EventTemplate: "Some Good Event",
		Event:         "Not just Good Event, but Awesome Event",
		Emotion:       db_models.EmotionGood,
	})
	require.NoError(t, err)
	assert.Equal(t, "successfully edited event!", status.ResStatus)

	event, err := repos.timelines.EventByID(ctx, saved.EventSavedID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Not just Good Event, but Awesome Event", event.Event)
	assert.Equal(t, "better.photo.com", event.Link)
	assert.True(t, event.CreatedAt.Equal(time.Date(2025, 10, 31, 8, 0, 0, 0, time.UTC)))
}

func TestDeleteEventRequiresMatchingUser(t *testing.T) {
	svc, repos, db := newTimelineService(t)
	categories, templates := seedCatalog(t, db)
	user, timeline := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	event := db_models.UsersTimelineEvent{
		UserID: user.ID, TimelineID: timeline.ID,
		CategoryID: categories[0].ID, EventTemplateID: templates[0].ID,
		Event: db_models.RegistrationEventText, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.timelines.InsertEvent(ctx, &event))

	_, err := svc.DeleteEvent(ctx, &request_models.DeleteTimelineEventRequest{
		Email: "john@test.test", Name: "Wrong Name", EventID: event.ID,
	})
	require.Error(t, err)
	assert.Equal(t, "checked email/name data is not founded", err.Error())

	_, err = svc.DeleteEvent(ctx, &request_models.DeleteTimelineEventRequest{
		Email: "john@test.test", Name: "John Doe", EventID: 999,
	})
	require.Error(t, err)
	assert.Equal(t, "incoming data error: such event is not found", err.Error())

	status, err := svc.DeleteEvent(ctx, &request_models.DeleteTimelineEventRequest{
		Email: "John@Test.Test", Name: "John Doe", EventID: event.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "successfully deleted event!", status.ResStatus)

	gone, err := repos.timelines.EventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestAddReaction(t *testing.T) {
	svc, repos, db := newTimelineService(t)
	categories, templates := seedCatalog(t, db)
	user, timeline := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	event := db_models.UsersTimelineEvent{
		UserID: user.ID, TimelineID: timeline.ID,
		CategoryID: categories[0].ID, EventTemplateID: templates[0].ID,
		Event: db_models.RegistrationEventText, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.timelines.InsertEvent(ctx, &event))

	reactionCategory := db_models.EventReactionCategory{CategoryName: "Happy reactions"}
	require.NoError(t, db.Create(&reactionCategory).Error)

	reaction, err := svc.AddReaction(ctx, &request_models.AddReactionRequest{
		CreatedAt:   "2025-10-30 21:22:23",
		UserID:      user.ID,
		EventID:     event.ID,
		CategoryID:  reactionCategory.ID,
		Reaction:    "yeee",
		Description: "I'm very happy after registration in App",
		Emotion:     db_models.EmotionGood,
	})
	require.NoError(t, err)
	assert.NotZero(t, reaction.ID)
	assert.Equal(t, "yeee", reaction.Reaction)

	_, err = svc.AddReaction(ctx, &request_models.AddReactionRequest{
		UserID: user.ID, EventID: 999, CategoryID: reactionCategory.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incoming UsersTimelineEventReaction data is not valid")
}
