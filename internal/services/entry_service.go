package services

import (
	"context"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
	"lifediary/internal/models/response_models"
	"lifediary/internal/repositories"
	"lifediary/pkg/utils"
)

type EntryServiceInterface interface {
	ListEntries(ctx context.Context, fullData bool) ([]response_models.EntryResponse, error)
	EntryByID(ctx context.Context, entryID string, fullData bool) (*response_models.EntryDetail, error)
	EntriesGroupedByCategory(ctx context.Context, categoryName string, fullData bool) ([]response_models.CategoryEntries, error)
	AddEntry(ctx context.Context, req *request_models.AddEntryRequest) (*response_models.EntrySaved, error)
}

type EntryService struct {
	entryRepo repositories.EntryRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
}

func NewEntryService(
	entryRepo repositories.EntryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) EntryServiceInterface {
	return &EntryService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
	}
}

func (s *EntryService) toResponse(entry *db_models.Entry, fullData bool) response_models.EntryResponse {
	out := response_models.EntryResponse{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Title:       entry.Title,
		DateTime:    entry.DateTime,
		Description: entry.Description,
		Text:        entry.Text,
		ImageBase64: utils.EncodeBase64Payload(entry.Image),
		AudioBase64: utils.EncodeBase64Payload(entry.Audio),
		Tags:        make([]string, 0, len(entry.Tags)),
	}
	if entry.Category != nil {
		out.CatName = entry.Category.Name
	}
	for _, tag := range entry.Tags {
		out.Tags = append(out.Tags, tag.Name)
	}
	if !fullData {
		out.ImageBase64 = utils.CutBase64(out.ImageBase64)
		out.AudioBase64 = utils.CutBase64(out.AudioBase64)
	}
	return out
}

func (s *EntryService) ListEntries(ctx context.Context, fullData bool) ([]response_models.EntryResponse, error) {
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	out := make([]response_models.EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, s.toResponse(&entries[i], fullData))
	}
	return out, nil
}

func (s *EntryService) EntryByID(ctx context.Context, entryID string, fullData bool) (*response_models.EntryDetail, error) {
	id, err := utils.ParseID(entryID)
	if err != nil {
		return nil, utils.NotFoundf("not found any Entry with this id: %s", entryID)
	}

	entry, err := s.entryRepo.EntryByID(ctx, id)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if entry == nil {
		return nil, utils.NotFoundf("not found any Entry with this id: %s", entryID)
	}

	flat := s.toResponse(entry, fullData)
	return &response_models.EntryDetail{
		ID:          flat.ID,
		Title:       flat.Title,
		Date:        flat.DateTime,
		Description: flat.Description,
		Text:        flat.Text,
		CatName:     flat.CatName,
		ImageBase64: flat.ImageBase64,
		AudioBase64: flat.AudioBase64,
		Tags:        flat.Tags,
	}, nil
}

// EntriesGroupedByCategory buckets entries under their category name.
// An empty categoryName means every entry, grouped; a name that matches
// nothing is an error rather than an empty list.
func (s *EntryService) EntriesGroupedByCategory(ctx context.Context, categoryName string, fullData bool) ([]response_models.CategoryEntries, error) {
	var entries []db_models.Entry
	var err error
	if categoryName != "" {
		entries, err = s.entryRepo.EntriesByCategoryName(ctx, categoryName)
	} else {
		entries, err = s.entryRepo.ListEntries(ctx)
	}
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if len(entries) == 0 && categoryName != "" {
		return nil, utils.NotFoundf("not found any Entries for this Category: %s", categoryName)
	}

	var groups []response_models.CategoryEntries
	indexByCat := make(map[string]int)
	for i := range entries {
		flat := s.toResponse(&entries[i], fullData)
		if idx, ok := indexByCat[flat.CatName]; ok {
			groups[idx].Entries = append(groups[idx].Entries, flat)
			continue
		}
		indexByCat[flat.CatName] = len(groups)
		groups = append(groups, response_models.CategoryEntries{
			Category: flat.CatName,
			Entries:  []response_models.EntryResponse{flat},
		})
	}
	return groups, nil
}

func (s *EntryService) AddEntry(ctx context.Context, req *request_models.AddEntryRequest) (*response_models.EntrySaved, error) {
	dateTime, err := utils.ParseIncomingTimestamp(req.DateTime)
	if err != nil {
		return nil, utils.InvalidInputf("incoming Entry data is not valid: %v", err)
	}
	image, err := utils.DecodeBase64Payload(req.ImageBase64)
	if err != nil {
		return nil, utils.InvalidInputf("incoming Entry data is not valid: %v", err)
	}
	audio, err := utils.DecodeBase64Payload(req.AudioBase64)
	if err != nil {
		return nil, utils.InvalidInputf("incoming Entry data is not valid: %v", err)
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	category, err := s.entryRepo.CategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	tagIDs := make([]uint, 0, len(req.Tags))
	for _, ref := range req.Tags {
		tagIDs = append(tagIDs, ref.TagID)
	}
	tags, err := s.entryRepo.TagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	if user == nil || category == nil || req.Title == "" || len(tags) != len(tagIDs) {
		return nil, utils.InvalidInputf(
			"incoming Entry data is not valid: user %d, category %d, title %q, tags %v",
			req.UserID, req.CategoryID, req.Title, tagIDs)
	}

	entry := db_models.Entry{
		UserID:      user.ID,
		CategoryID:  category.ID,
		Title:       req.Title,
		DateTime:    dateTime,
		Description: req.Description,
		Text:        req.Text,
		Image:       image,
		ImageName:   req.ImageName,
		Audio:       audio,
		AudioName:   req.AudioName,
		Tags:        tags,
	}
	if err := s.entryRepo.InsertEntry(ctx, &entry); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving Entry: %v", err)
	}

	savedTagIDs := make([]uint, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		savedTagIDs = append(savedTagIDs, tag.ID)
	}
	return &response_models.EntrySaved{
		ID:          entry.ID,
		UserID:      entry.UserID,
		CategoryID:  entry.CategoryID,
		Title:       entry.Title,
		DateTime:    entry.DateTime,
		Description: entry.Description,
		Text:        entry.Text,
		ImageName:   entry.ImageName,
		AudioName:   entry.AudioName,
		TagIDs:      savedTagIDs,
	}, nil
}
