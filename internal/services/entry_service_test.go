package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
	"lifediary/pkg/utils"
)

func newEntryService(t *testing.T) (EntryServiceInterface, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	repos := newTestRepos(db)
	return NewEntryService(repos.entries, repos.users), db
}

func seedEntryCatalog(t *testing.T, db *gorm.DB) (db_models.EntryCategory, []db_models.EntryTag) {
	t.Helper()

	category := db_models.EntryCategory{Name: "Notes"}
	require.NoError(t, db.Create(&category).Error)

	tags := []db_models.EntryTag{{Name: "note"}, {Name: "long-read"}}
	require.NoError(t, db.Create(&tags).Error)

	return category, tags
}

func TestAddEntryDecodesPayloadsAndLinksTags(t *testing.T) {
	svc, db := newEntryService(t)
	category, tags := seedEntryCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	image := []byte{0x89, 0x50, 0x4e, 0x47}
	audio := []byte("RIFFdata")

	saved, err := svc.AddEntry(ctx, &request_models.AddEntryRequest{
		DateTime:    "2025-02-13 20:20:56",
		UserID:      user.ID,
		CategoryID:  category.ID,
		Title:       "First Entry",
		Description: "about starting my Diary",
		Text:        "Hello, Diary!",
		ImageName:   "awesome_photo",
		ImageBase64: utils.EncodeBase64Payload(image),
		AudioName:   "awesome_music",
		AudioBase64: utils.EncodeBase64Payload(audio),
		Tags:        []request_models.TagRef{{TagID: tags[0].ID}, {TagID: tags[1].ID}},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	assert.Equal(t, []uint{tags[0].ID, tags[1].ID}, saved.TagIDs)

	var stored db_models.Entry
	require.NoError(t, db.Preload("Tags").First(&stored, saved.ID).Error)
	assert.Equal(t, image, stored.Image)
	assert.Equal(t, audio, stored.Audio)
	assert.Len(t, stored.Tags, 2)
}

func TestAddEntryUnknownTagRejected(t *testing.T) {
	svc, db := newEntryService(t)
	category, _ := seedEntryCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")

	_, err := svc.AddEntry(context.Background(), &request_models.AddEntryRequest{
		DateTime:   "2025-02-13 20:20:56",
		UserID:     user.ID,
		CategoryID: category.ID,
		Title:      "First Entry",
		Tags:       []request_models.TagRef{{TagID: 999}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incoming Entry data is not valid")
}

func TestEntryByIDFullAndTruncated(t *testing.T) {
	svc, db := newEntryService(t)
	category, tags := seedEntryCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	payload := []byte(strings.Repeat("x", 100))
	saved, err := svc.AddEntry(ctx, &request_models.AddEntryRequest{
		DateTime:    "2025-02-13 20:20:56",
		UserID:      user.ID,
		CategoryID:  category.ID,
		Title:       "First Entry",
		ImageBase64: utils.EncodeBase64Payload(payload),
		AudioBase64: utils.EncodeBase64Payload(payload),
		Tags:        []request_models.TagRef{{TagID: tags[0].ID}},
	})
	require.NoError(t, err)

	entryID := fmt.Sprintf("%d", saved.ID)

	full, err := svc.EntryByID(ctx, entryID, true)
	require.NoError(t, err)
	assert.Equal(t, utils.EncodeBase64Payload(payload), full.ImageBase64)
	assert.Equal(t, "Notes", full.CatName)
	assert.Equal(t, []string{"note"}, full.Tags)

	cut, err := svc.EntryByID(ctx, entryID, false)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(cut.ImageBase64, utils.CutSuffix))
	assert.Len(t, cut.ImageBase64, 20+len(utils.CutSuffix))
}

func TestEntryByIDUnknown(t *testing.T) {
	svc, _ := newEntryService(t)

	_, err := svc.EntryByID(context.Background(), "123", true)
	require.Error(t, err)
	assert.Equal(t, "not found any Entry with this id: 123", err.Error())
}

func TestEntriesGroupedByCategory(t *testing.T) {
	svc, db := newEntryService(t)
	category, tags := seedEntryCatalog(t, db)
	user, _ := seedUserWithTimeline(t, db, "John Doe", "john@test.test")
	ctx := context.Background()

	other := db_models.EntryCategory{Name: "Long stories"}
	require.NoError(t, db.Create(&other).Error)

	for i, cat := range []db_models.EntryCategory{category, category, other} {
		_, err := svc.AddEntry(ctx, &request_models.AddEntryRequest{
			DateTime:   "2025-02-13 20:20:56",
			UserID:     user.ID,
			CategoryID: cat.ID,
			Title:      fmt.Sprintf("Entry %d", i+1),
			Tags:       []request_models.TagRef{{TagID: tags[0].ID}},
		})
		require.NoError(t, err)
	}

	groups, err := svc.EntriesGroupedByCategory(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Notes", groups[0].Category)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Long stories", groups[1].Category)

	notes, err := svc.EntriesGroupedByCategory(ctx, "Notes", true)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Len(t, notes[0].Entries, 2)

	_, err = svc.EntriesGroupedByCategory(ctx, "Nope", true)
	require.Error(t, err)
	assert.Equal(t, "not found any Entries for this Category: Nope", err.Error())
}
