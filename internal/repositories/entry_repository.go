package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lifediary/internal/models/db_models"
)

type EntryRepositoryInterface interface {
	ListEntries(ctx context.Context) ([]db_models.Entry, error)
	EntriesByCategoryName(ctx context.Context, categoryName string) ([]db_models.Entry, error)
	EntryByID(ctx context.Context, id uint) (*db_models.Entry, error)
	CategoryByID(ctx context.Context, id uint) (*db_models.EntryCategory, error)
	TagsByIDs(ctx context.Context, ids []uint) ([]db_models.EntryTag, error)
	InsertEntry(ctx context.Context, entry *db_models.Entry) error
}

func NewEntryRepository(db *gorm.DB) EntryRepositoryInterface {
	return &entryRepository{db: db}
}

type entryRepository struct {
	db *gorm.DB
}

func (r *entryRepository) ListEntries(ctx context.Context) ([]db_models.Entry, error) {
	var entries []db_models.Entry
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) EntriesByCategoryName(ctx context.Context, categoryName string) ([]db_models.Entry, error) {
	var entries []db_models.Entry
	err := r.db.WithContext(ctx).
		Joins("JOIN entry_categories ON entry_categories.id = entries.category_id").
		Where("entry_categories.name = ?", categoryName).
		Preload("Category").
		Preload("Tags").
		Order("entries.id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) EntryByID(ctx context.Context, id uint) (*db_models.Entry, error) {
	var entry db_models.Entry
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Category").
		Preload("Tags").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) CategoryByID(ctx context.Context, id uint) (*db_models.EntryCategory, error) {
	var category db_models.EntryCategory
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *entryRepository) TagsByIDs(ctx context.Context, ids []uint) ([]db_models.EntryTag, error) {
	var tags []db_models.EntryTag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *entryRepository) InsertEntry(ctx context.Context, entry *db_models.Entry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(entry).Error
	})
}
