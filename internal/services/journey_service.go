package services

import (
	"context"

	"lifediary/internal/models/db_models"
	"lifediary/internal/models/request_models"
	"lifediary/internal/models/response_models"
	"lifediary/internal/repositories"
	"lifediary/pkg/utils"
)

type JourneyServiceInterface interface {
	ListJourneysWithCountries(ctx context.Context) ([]response_models.JourneyWithCountries, error)
	AddJourney(ctx context.Context, req *request_models.AddJourneyRequest) (*response_models.JourneySaved, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
}

func NewJourneyService(
	journeyRepo repositories.JourneyRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo: journeyRepo,
		userRepo:    userRepo,
	}
}

// ListJourneysWithCountries flattens each journey with its type name
// and the flag glyphs of every visited country.
func (s *JourneyService) ListJourneysWithCountries(ctx context.Context) ([]response_models.JourneyWithCountries, error) {
	journeys, err := s.journeyRepo.ListJourneys(ctx)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	out := make([]response_models.JourneyWithCountries, 0, len(journeys))
	for _, journey := range journeys {
		item := response_models.JourneyWithCountries{
			JourneyID:   journey.ID,
			UserID:      journey.UserID,
			Title:       journey.Title,
			Dates:       journey.Dates,
			Description: journey.Description,
			Link:        journey.Link,
			Countries:   make([]string, 0, len(journey.Countries)),
		}
		if journey.Type != nil {
			item.JourneyType = journey.Type.Name
		}
		for _, country := range journey.Countries {
			item.Countries = append(item.Countries, country.Flag)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *JourneyService) AddJourney(ctx context.Context, req *request_models.AddJourneyRequest) (*response_models.JourneySaved, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}
	journeyType, err := s.journeyRepo.TypeByID(ctx, req.TypeID)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	countryIDs := make([]uint, 0, len(req.Countries))
	for _, ref := range req.Countries {
		countryIDs = append(countryIDs, ref.CountryID)
	}
	countries, err := s.journeyRepo.CountriesByIDs(ctx, countryIDs)
	if err != nil {
		return nil, utils.DatabaseErrf("%v", err)
	}

	if user == nil || journeyType == nil || req.Title == "" || len(countries) != len(countryIDs) {
		return nil, utils.InvalidInputf(
			"incoming Journey data is not valid: user %d, type %d, title %q, countries %v",
			req.UserID, req.TypeID, req.Title, countryIDs)
	}

	journey := db_models.Journey{
		UserID:      user.ID,
		TypeID:      journeyType.ID,
		Title:       req.Title,
		Dates:       req.Dates,
		Description: req.Description,
		Link:        req.Link,
		Countries:   countries,
	}
	if err := s.journeyRepo.InsertJourney(ctx, &journey); err != nil {
		return nil, utils.DatabaseErrf("Error in Saving Journey: %v", err)
	}

	savedCountryIDs := make([]uint, 0, len(journey.Countries))
	for _, country := range journey.Countries {
		savedCountryIDs = append(savedCountryIDs, country.ID)
	}
	return &response_models.JourneySaved{
		ID:          journey.ID,
		UserID:      journey.UserID,
		TypeID:      journey.TypeID,
		Title:       journey.Title,
		Dates:       journey.Dates,
		Description: journey.Description,
		Link:        journey.Link,
		CountryIDs:  savedCountryIDs,
	}, nil
}
