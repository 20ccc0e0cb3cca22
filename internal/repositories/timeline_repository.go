package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lifediary/internal/models/db_models"
)

type TimelineRepositoryInterface interface {
	InsertTimeline(ctx context.Context, timeline *db_models.UsersTimeline) error
	FirstTimelineByUser(ctx context.Context, userID uint) (*db_models.UsersTimeline, error)
	LatestTimelineByUser(ctx context.Context, userID uint) (*db_models.UsersTimeline, error)
	ListTimelines(ctx context.Context) ([]db_models.UsersTimeline, error)

	ListEventCategories(ctx context.Context) ([]db_models.TimelineEventCategory, error)
	ListEventTemplates(ctx context.Context) ([]db_models.TimelineEventTemplate, error)
	TemplatesWithCategories(ctx context.Context) ([]db_models.TimelineEventTemplate, error)
	CategoryByName(ctx context.Context, name string) (*db_models.TimelineEventCategory, error)
	EnsureCategory(ctx context.Context, name string) (*db_models.TimelineEventCategory, error)
	TemplateByCategoryAndEvent(ctx context.Context, categoryID uint, event string) (*db_models.TimelineEventTemplate, error)
	EnsureTemplate(ctx context.Context, categoryID uint, event string) (*db_models.TimelineEventTemplate, error)

	InsertEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error
	SaveEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error
	DeleteEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error
	EventByID(ctx context.Context, id uint) (*db_models.UsersTimelineEvent, error)
	EventsByTimeline(ctx context.Context, timelineID uint) ([]db_models.UsersTimelineEvent, error)
	ListEvents(ctx context.Context) ([]db_models.UsersTimelineEvent, error)

	ListReactionCategories(ctx context.Context) ([]db_models.EventReactionCategory, error)
	ReactionCategoryByID(ctx context.Context, id uint) (*db_models.EventReactionCategory, error)
	ListReactions(ctx context.Context) ([]db_models.UsersTimelineEventReaction, error)
	InsertReaction(ctx context.Context, reaction *db_models.UsersTimelineEventReaction) error
}

func NewTimelineRepository(db *gorm.DB) TimelineRepositoryInterface {
	return &timelineRepository{db: db}
}

type timelineRepository struct {
	db *gorm.DB
}

func (r *timelineRepository) InsertTimeline(ctx context.Context, timeline *db_models.UsersTimeline) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(timeline).Error
	})
}

func (r *timelineRepository) FirstTimelineByUser(ctx context.Context, userID uint) (*db_models.UsersTimeline, error) {
	var timeline db_models.UsersTimeline
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		First(&timeline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timeline, nil
}

// LatestTimelineByUser resolves the user's active timeline: the model
// allows many, business logic reads the most recently started one.
func (r *timelineRepository) LatestTimelineByUser(ctx context.Context, userID uint) (*db_models.UsersTimeline, error) {
	var timeline db_models.UsersTimeline
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_dt DESC").
		Order("id DESC").
		First(&timeline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timeline, nil
}

func (r *timelineRepository) ListTimelines(ctx context.Context) ([]db_models.UsersTimeline, error) {
	var timelines []db_models.UsersTimeline
	if err := r.db.WithContext(ctx).Order("id").Find(&timelines).Error; err != nil {
		return nil, err
	}
	return timelines, nil
}

func (r *timelineRepository) ListEventCategories(ctx context.Context) ([]db_models.TimelineEventCategory, error) {
	var categories []db_models.TimelineEventCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *timelineRepository) ListEventTemplates(ctx context.Context) ([]db_models.TimelineEventTemplate, error) {
	var templates []db_models.TimelineEventTemplate
	if err := r.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// TemplatesWithCategories returns templates in insertion order with
// their categories loaded; the catalog endpoint groups them from here.
func (r *timelineRepository) TemplatesWithCategories(ctx context.Context) ([]db_models.TimelineEventTemplate, error) {
	var templates []db_models.TimelineEventTemplate
	err := r.db.WithContext(ctx).
		Preload("EventCategory").
		Order("id").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *timelineRepository) CategoryByName(ctx context.Context, name string) (*db_models.TimelineEventCategory, error) {
	var category db_models.TimelineEventCategory
	err := r.db.WithContext(ctx).Where("category_name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *timelineRepository) EnsureCategory(ctx context.Context, name string) (*db_models.TimelineEventCategory, error) {
	category, err := r.CategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	created := db_models.TimelineEventCategory{CategoryName: name}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *timelineRepository) TemplateByCategoryAndEvent(ctx context.Context, categoryID uint, event string) (*db_models.TimelineEventTemplate, error) {
	var template db_models.TimelineEventTemplate
	err := r.db.WithContext(ctx).
		Where("event_category_id = ? AND event = ?", categoryID, event).
		Order("id").
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *timelineRepository) EnsureTemplate(ctx context.Context, categoryID uint, event string) (*db_models.TimelineEventTemplate, error) {
	template, err := r.TemplateByCategoryAndEvent(ctx, categoryID, event)
	if err != nil {
		return nil, err
	}
	if template != nil {
		return template, nil
	}
	created := db_models.TimelineEventTemplate{EventCategoryID: categoryID, Event: event}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *timelineRepository) InsertEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(event).Error
	})
}

func (r *timelineRepository) SaveEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *timelineRepository) DeleteEvent(ctx context.Context, event *db_models.UsersTimelineEvent) error {
	return r.db.WithContext(ctx).Delete(event).Error
}

func (r *timelineRepository) EventByID(ctx context.Context, id uint) (*db_models.UsersTimelineEvent, error) {
	var event db_models.UsersTimelineEvent
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Category").
		Preload("EventTemplate").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *timelineRepository) EventsByTimeline(ctx context.Context, timelineID uint) ([]db_models.UsersTimelineEvent, error) {
	var events []db_models.UsersTimelineEvent
	err := r.db.WithContext(ctx).
		Where("timeline_id = ?", timelineID).
		Preload("Category").
		Preload("EventTemplate").
		Order("created_at DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *timelineRepository) ListEvents(ctx context.Context) ([]db_models.UsersTimelineEvent, error) {
	var events []db_models.UsersTimelineEvent
	if err := r.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *timelineRepository) ListReactionCategories(ctx context.Context) ([]db_models.EventReactionCategory, error) {
	var categories []db_models.EventReactionCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *timelineRepository) ReactionCategoryByID(ctx context.Context, id uint) (*db_models.EventReactionCategory, error) {
	var category db_models.EventReactionCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *timelineRepository) ListReactions(ctx context.Context) ([]db_models.UsersTimelineEventReaction, error) {
	var reactions []db_models.UsersTimelineEventReaction
	if err := r.db.WithContext(ctx).Order("id").Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

func (r *timelineRepository) InsertReaction(ctx context.Context, reaction *db_models.UsersTimelineEventReaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(reaction).Error
	})
}
