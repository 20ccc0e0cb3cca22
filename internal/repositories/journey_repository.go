package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"lifediary/internal/models/db_models"
)

type JourneyRepositoryInterface interface {
	ListJourneys(ctx context.Context) ([]db_models.Journey, error)
	TypeByID(ctx context.Context, id uint) (*db_models.JourneyType, error)
	CountriesByIDs(ctx context.Context, ids []uint) ([]db_models.JourneyCountry, error)
	InsertJourney(ctx context.Context, journey *db_models.Journey) error
}

func NewJourneyRepository(db *gorm.DB) JourneyRepositoryInterface {
	return &journeyRepository{db: db}
}

type journeyRepository struct {
	db *gorm.DB
}

func (r *journeyRepository) ListJourneys(ctx context.Context) ([]db_models.Journey, error) {
	var journeys []db_models.Journey
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Countries").
		Order("id").
		Find(&journeys).Error
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (r *journeyRepository) TypeByID(ctx context.Context, id uint) (*db_models.JourneyType, error) {
	var journeyType db_models.JourneyType
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&journeyType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journeyType, nil
}

func (r *journeyRepository) CountriesByIDs(ctx context.Context, ids []uint) ([]db_models.JourneyCountry, error) {
	var countries []db_models.JourneyCountry
	if len(ids) == 0 {
		return countries, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// InsertJourney creates the journey and its country links in one
// transaction; gorm writes the many2many rows from the Countries slice.
func (r *journeyRepository) InsertJourney(ctx context.Context, journey *db_models.Journey) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(journey).Error
	})
}
