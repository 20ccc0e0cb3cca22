package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lifediary/internal/infra"
	"lifediary/internal/models/db_models"
	"lifediary/internal/repositories"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	return db
}

type testRepos struct {
	users     repositories.UserRepositoryInterface
	polls     repositories.PollRepositoryInterface
	timelines repositories.TimelineRepositoryInterface
	journeys  repositories.JourneyRepositoryInterface
	entries   repositories.EntryRepositoryInterface
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		users:     repositories.NewUserRepository(db),
		polls:     repositories.NewPollRepository(db),
		timelines: repositories.NewTimelineRepository(db),
		journeys:  repositories.NewJourneyRepository(db),
		entries:   repositories.NewEntryRepository(db),
	}
}

func mustRanges(t *testing.T, raw string) db_models.ResultRanges {
	t.Helper()
	var ranges db_models.ResultRanges
	require.NoError(t, json.Unmarshal([]byte(raw), &ranges))
	return ranges
}

// seedPollGroup creates Group1 with two questions sharing two choices,
// mirroring the initial catalog the product ships with.
func seedPollGroup(t *testing.T, db *gorm.DB) (db_models.QuestionsGroup, []db_models.Question, []db_models.Choice) {
	t.Helper()

	group := db_models.QuestionsGroup{
		GroupName:   "Group1",
		MaxScore:    25,
		ResultTypes: mustRanges(t, `{"good": [0, 13], "bad": [14, 25]}`),
	}
	require.NoError(t, db.Create(&group).Error)

	questions := []db_models.Question{
		{QuestionsGroupID: group.ID, QuestionText: "Is this question awesome?", Order: 1},
		{QuestionsGroupID: group.ID, QuestionText: "Another question is better?", Order: 2},
	}
	require.NoError(t, db.Create(&questions).Error)

	choices := []db_models.Choice{
		{ChoiceText: "Yes, it's awesome!", Order: 8, Questions: questions},
		{ChoiceText: "No, it's even better!", Order: 9, Questions: questions},
	}
	require.NoError(t, db.Create(&choices).Error)

	return group, questions, choices
}

func seedUserWithTimeline(t *testing.T, db *gorm.DB, name, email string) (db_models.DiaryUser, db_models.UsersTimeline) {
	t.Helper()

	user := db_models.DiaryUser{Name: name, Email: email}
	require.NoError(t, db.Create(&user).Error)

	timeline := db_models.UsersTimeline{UserID: user.ID}
	require.NoError(t, db.Create(&timeline).Error)

	return user, timeline
}
