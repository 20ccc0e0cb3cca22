package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
)

func newJourneyService(t *testing.T) (JourneyServiceInterface, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	repos := newTestRepos(db)
	return NewJourneyService(repos.journeys, repos.users), db
}

func seedJourneyCatalog(t *testing.T, db *gorm.DB) (db_models.JourneyType, []db_models.JourneyCountry) {
	t.Helper()

	journeyType := db_models.JourneyType{Name: "just for weekend"}
	require.NoError(t, db.Create(&journeyType).Error)

	countries := []db_models.JourneyCountry{
		{Name: "United Kingdome", Flag: "🇬🇧"},
		{Name: "France", Flag: "🇫🇷"},
	}
	require.NoError(t, db.Create(&countries).Error)

	return journeyType, countries
}

func TestAddJourneyAndListWithFlags(t *testing.T) {
	svc, db := newJourneyService(t)
	journeyType, countries := seedJourneyCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	saved, err := svc.AddJourney(ctx, &request_models.AddJourneyRequest{
		UserID:      user.ID,
		TypeID:      journeyType.ID,
		Title:       "London and Paris",
		Dates:       "2025-05-01 / 2025-05-04",
		Description: "a short trip over the channel",
		Link:        "photos.example.com/london-paris",
		Countries:   []request_models.CountryRef{{CountryID: countries[0].ID}, {CountryID: countries[1].ID}},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	assert.Equal(t, []uint{countries[0].ID, countries[1].ID}, saved.CountryIDs)

	list, err := svc.ListJourneysWithCountries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "London and Paris", list[0].Title)
	assert.Equal(t, "just for weekend", list[0].JourneyType)
	assert.ElementsMatch(t, []string{"🇬🇧", "🇫🇷"}, list[0].Countries)
}

func TestAddJourneyValidatesReferences(t *testing.T) {
	svc, db := newJourneyService(t)
	journeyType, _ := seedJourneyCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")

	_, err := svc.AddJourney(context.Background(), &request_models.AddJourneyRequest{
		UserID:    user.ID,
		TypeID:    journeyType.ID,
		Title:     "Nowhere",
		Countries: []request_models.CountryRef{{CountryID: 999}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incoming Journey data is not valid")

	_, err = svc.AddJourney(context.Background(), &request_models.AddJourneyRequest{
		UserID: user.ID,
		TypeID: journeyType.ID,
		Title:  "",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incoming Journey data is not valid")
}
