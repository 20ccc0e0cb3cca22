package services

import (
	"context"
	"fmt"
	"time"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
	"lifediary/internal/models/response_models"
	"lifediary/internal/repositories"
	"lifediary/pkg/utils"
)

type TimelineServiceInterface interface {
	ListTimelines(ctx context.Context) ([]db_models.UsersTimeline, error)
	ListEventCategories(ctx context.Context) ([]db_models.TimelineEventCategory, error)
	ListEventTemplates(ctx context.Context) ([]db_models.TimelineEventTemplate, error)
	ListEvents(ctx context.Context) ([]db_models.UsersTimelineEvent, error)
	ListReactionCategories(ctx context.Context) ([]db_models.EventReactionCategory, error)
	ListReactions(ctx context.Context) ([]db_models.UsersTimelineEventReaction, error)

	CatalogWithOrdering(ctx context.Context, eventID string) (*response_models.CatalogOrdering, error)
	EventsByUser(ctx context.Context, userID uint) (*response_models.UserTimelineEvents, error)

	AddEvent(ctx context.Context, req *request_models.AddTimelineEventRequest) (*response_models.EventSaved, error)
	EditEvent(ctx context.Context, req *request_models.EditTimelineEventRequest) (*response_models.ResStatus, error)
	DeleteEvent(ctx context.Context, req *request_models.DeleteTimelineEventRequest) (*response_models.ResStatus, error)
	AddReaction(ctx context.Context, req *request_models.AddReactionRequest) (*db_models.UsersTimelineEventReaction, error)
}

type TimelineService struct {
	timelineRepo repositories.TimelineRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
}

func NewTimelineService(
	timelineRepo repositories.TimelineRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) TimelineServiceInterface {
	return &TimelineService{
		timelineRepo: timelineRepo,
		userRepo:     userRepo,
	}
}

func (s *TimelineService) ListTimelines(ctx context.Context) ([]db_models.UsersTimeline, error) {
	return s.timelineRepo.ListTimelines(ctx)
}

func (s *TimelineService) ListEventCategories(ctx context.Context) ([]db_models.TimelineEventCategory, error) {
	return s.timelineRepo.ListEventCategories(ctx)
}

func (s *TimelineService) ListEventTemplates(ctx context.Context) ([]db_models.TimelineEventTemplate, error) {
	return s.timelineRepo.ListEventTemplates(ctx)
}

func (s *TimelineService) ListEvents(ctx context.Context) ([]db_models.UsersTimelineEvent, error) {
	return s.timelineRepo.ListEvents(ctx)
}

func (s *TimelineService) ListReactionCategories(ctx context.Context) ([]db_models.EventReactionCategory, error) {
	return s.timelineRepo.ListReactionCategories(ctx)
}

func (s *TimelineService) ListReactions(ctx context.Context) ([]db_models.UsersTimelineEventReaction, error) {
	return s.timelineRepo.ListReactions(ctx)
}

// CatalogWithOrdering builds the category/template catalog that feeds
// the two dropdown menus in the client. With an event_id the catalog is
// re-ordered so that the event's category (and its template inside the
// category) sits first, letting the edit form preselect both dropdowns.
// The two bookkeeping strings report what ordering was applied and why.
func (s *TimelineService) CatalogWithOrdering(ctx context.Context, eventID string) (*response_models.CatalogOrdering, error) {
	templates, err := s.timelineRepo.TemplatesWithCategories(ctx)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if len(templates) == 0 {
		return nil, utils.NotFoundf("not found any Timeline Event Template in DB")
	}

	var categories []response_models.CategoryWithTemplates
	indexByName := make(map[string]int)
	for _, template := range templates {
		if template.EventCategory == nil {
			continue
		}
		name := template.EventCategory.CategoryName
		if idx, ok := indexByName[name]; ok {
			categories[idx].EventTemplates = append(categories[idx].EventTemplates, template.Event)
			continue
		}
		indexByName[name] = len(categories)
		categories = append(categories, response_models.CategoryWithTemplates{
			CategoryName:   name,
			ID:             template.EventCategoryID,
			EventTemplates: []string{template.Event},
		})
	}

	out := &response_models.CatalogOrdering{Categories: categories}

	if eventID == "" {
		out.ResultOrdering = "default"
		out.Reason = "event_id was not provided"
		return out, nil
	}

	eventIDNum, parseErr := utils.ParseID(eventID)
	if parseErr != nil {
		out.ResultOrdering = "default"
		out.Reason = fmt.Sprintf("such event_id (%s) was not found in DB", eventID)
		return out, nil
	}
	event, err := s.timelineRepo.EventByID(ctx, eventIDNum)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if event == nil {
		out.ResultOrdering = "default"
		out.Reason = fmt.Sprintf("such event_id (%s) was not found in DB", eventID)
		return out, nil
	}

	catName := ""
	if event.Category != nil {
		catName = event.Category.CategoryName
	}
	catIndex, found := indexByName[catName]
	if !found {
		out.ResultOrdering = "default"
		out.Reason = "event_id was provided but its category was NOT founded in DB"
		return out, nil
	}

	moved := out.Categories[catIndex]
	out.Categories = append(out.Categories[:catIndex], out.Categories[catIndex+1:]...)
	out.Categories = append([]response_models.CategoryWithTemplates{moved}, out.Categories...)
	out.ResultOrdering = fmt.Sprintf("categories were ordered by provided event_id (%s)", eventID)
	out.Reason = "event_id was provided and its category was founded in DB"

	templName := ""
	if event.EventTemplate != nil {
		templName = event.EventTemplate.Event
	}
	templates0 := out.Categories[0].EventTemplates
	for i, name := range templates0 {
		if name == templName {
			templates0 = append(templates0[:i], templates0[i+1:]...)
			out.Categories[0].EventTemplates = append([]string{templName}, templates0...)
			out.ResultOrdering = fmt.Sprintf("categories AND templates were ordered by provided event_id (%s)", eventID)
			out.Reason = "event_id was provided and its category and its template was founded in DB"
			return out, nil
		}
	}
	out.Reason = "event_id was provided and its category was founded in DB but its template was NOT founded in DB"
	return out, nil
}

// EventsByUser reads the user's most recently started timeline and
// returns its events newest first. Template-less events carry the raw
// text in custom_event so the client knows the text was user-typed.
func (s *TimelineService) EventsByUser(ctx context.Context, userID uint) (*response_models.UserTimelineEvents, error) {
	timeline, err := s.timelineRepo.LatestTimelineByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if timeline == nil {
		return nil, utils.NotFoundf("not found any Timeline for this user: %d", userID)
	}

	events, err := s.timelineRepo.EventsByTimeline(ctx, timeline.ID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if len(events) == 0 {
		return nil, utils.NotFoundf("not found any Timeline Event for this user: %d and his Timeline: %d", userID, timeline.ID)
	}

	items := make([]response_models.TimelineEventItem, 0, len(events))
	for _, event := range events {
		item := response_models.TimelineEventItem{
			ID:          event.ID,
			Event:       event.Event,
			CreatedAt:   utils.FormatTimelineEvent(event.CreatedAt),
			Description: event.Description,
			Emotion:     event.Emotion,
		}
		if event.Category != nil {
			item.CatName = event.Category.CategoryName
		}
		if event.EventTemplate != nil {
			item.TemplName = event.EventTemplate.Event
		}
		if item.TemplName == db_models.CustomTemplateName {
			item.CustomEvent = event.Event
		}
		items = append(items, item)
	}

	return &response_models.UserTimelineEvents{
		UserID:         timeline.UserID,
		TimelineEvents: items,
	}, nil
}

func (s *TimelineService) AddEvent(ctx context.Context, req *request_models.AddTimelineEventRequest) (*response_models.EventSaved, error) {
	createdAt, err := utils.ParseIncomingTimestamp(req.CreatedAt)
	if err != nil {
		return nil, utils.InvalidInputf("%v", err)
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	timeline, err := s.timelineRepo.FirstTimelineByUser(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	category, err := s.timelineRepo.CategoryByName(ctx, req.EventCategory)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	var template *db_models.TimelineEventTemplate
	if category != nil {
		template, err = s.timelineRepo.TemplateByCategoryAndEvent(ctx, category.ID, req.EventTemplate)
		if err != nil {
			return nil, utils.DatabaseErrf("%v", err)
		}
	}

	if user == nil || timeline == nil || category == nil || template == nil || req.Event == "" || req.Emotion == "" {
		return nil, utils.InvalidInputf("incoming data is not valid")
	}

	event := db_models.UsersTimelineEvent{
		UserID:          user.ID,
		TimelineID:      timeline.ID,
		CategoryID:      category.ID,
		EventTemplateID: template.ID,
		Event:           req.Event,
		Link:            req.Link,
		Emotion:         req.Emotion,
		CreatedAt:       createdAt,
	}
	if err := s.timelineRepo.InsertEvent(ctx, &event); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving timeline_event: %v", err)
	}
	return &response_models.EventSaved{EventSavedID: event.ID}, nil
}

func (s *TimelineService) EditEvent(ctx context.Context, req *request_models.EditTimelineEventRequest) (*response_models.ResStatus, error) {
	createdAt, err := utils.ParseIncomingTimestamp(req.CreatedAt)
	if err != nil {
		return nil, utils.InvalidInputf("%v", err)
	}

	category, err := s.timelineRepo.CategoryByName(ctx, req.EventCategory)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	var template *db_models.TimelineEventTemplate
	if category != nil {
		template, err = s.timelineRepo.TemplateByCategoryAndEvent(ctx, category.ID, req.EventTemplate)
		if err != nil {
			return nil, utils.DatabaseErrf("%v", err)
		}
	}
	event, err := s.timelineRepo.EventByID(ctx, req.EventID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	if category == nil || template == nil || event == nil || req.Event == "" || req.Emotion == "" {
		return nil, utils.InvalidInputf("incoming data is not valid")
	}

	event.Emotion = req.Emotion
	event.CategoryID = category.ID
	event.Category = category
	event.EventTemplateID = template.ID
	event.EventTemplate = template
	event.Event = req.Event
	event.CreatedAt = createdAt
	event.Link = req.Link
	if err := s.timelineRepo.SaveEvent(ctx, event); err != nil {
		return nil, utils.DatabaseErrf("Error in Editing timeline_event: %v", err)
	}
	return &response_models.ResStatus{ResStatus: "successfully edited event!"}, nil
}

// DeleteEvent requires the caller's email and name to match a stored
// user before anything is removed. The pair acts as a lightweight
// capability check for the only destructive call in the API.
func (s *TimelineService) DeleteEvent(ctx context.Context, req *request_models.DeleteTimelineEventRequest) (*response_models.ResStatus, error) {
	user, err := s.userRepo.FindByEmailAndName(ctx, req.Email, req.Name)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if user == nil {
		return nil, utils.NotFoundf("checked email/name data is not founded")
	}

	event, err := s.timelineRepo.EventByID(ctx, req.EventID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if event == nil {
		return nil, utils.InvalidInputf("incoming data error: such event is not found")
	}

	if err := s.timelineRepo.DeleteEvent(ctx, event); err != nil {
		return nil, utils.DatabaseErrf("Error in deliting timeline_event: %v", err)
	}
	return &response_models.ResStatus{ResStatus: "successfully deleted event!"}, nil
}

func (s *TimelineService) AddReaction(ctx context.Context, req *request_models.AddReactionRequest) (*db_models.UsersTimelineEventReaction, error) {
	createdAt := time.Now().UTC()
	if req.CreatedAt != "" {
		parsed, err := utils.ParseIncomingTimestamp(req.CreatedAt)
		if err != nil {
			return nil, utils.InvalidInputf("%v", err)
		}
		createdAt = parsed
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	event, err := s.timelineRepo.EventByID(ctx, req.EventID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	category, err := s.timelineRepo.ReactionCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	if user == nil || event == nil || category == nil {
		return nil, utils.InvalidInputf(
			"incoming UsersTimelineEventReaction data is not valid: user %d, event %d, category %d",
			req.UserID, req.EventID, req.CategoryID)
	}

	reaction := db_models.UsersTimelineEventReaction{
		UserID:      user.ID,
		EventID:     event.ID,
		CategoryID:  category.ID,
		Reaction:    req.Reaction,
		Description: req.Description,
		Emotion:     req.Emotion,
		CreatedAt:   createdAt,
	}
	if err := s.timelineRepo.InsertReaction(ctx, &reaction); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving UsersTimelineEventReaction: %v", err)
	}
	return &reaction, nil
}
