// Seed inserts the catalog rows every endpoint example refers to:
// entry categories and tags, journey types and countries, the first
// questions group with its questions and shared choices, and the
// timeline and reaction catalogs. Run it once against a fresh database
// so the clickable examples in the API directory work out of the box.
// None of this is required for normal operation.
package main

import (
	"encoding/json"
	"log"

	"lifediary/internal/infra"
	"lifediary/internal/models/db_models"
)

func main() {
	log.Println("START initial insert into database")

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	entryCategory := db_models.EntryCategory{Name: "Notes"}
	mustInsert(db.Create(&entryCategory).Error, "entry_category")

	entryTags := []db_models.EntryTag{{Name: "note"}, {Name: "long-read"}}
	mustInsert(db.Create(&entryTags).Error, "entry_tag")

	journeyType := db_models.JourneyType{Name: "just for weekend"}
	mustInsert(db.Create(&journeyType).Error, "journey_type")

	journeyCountries := []db_models.JourneyCountry{
		{Name: "United Kingdome", Lang: "english", Flag: "🇬🇧"},
		{Name: "France", Lang: "french", Flag: "🇫🇷"},
	}
	mustInsert(db.Create(&journeyCountries).Error, "journey_country")

	var resultTypes db_models.ResultRanges
	mustInsert(json.Unmarshal([]byte(`{"good": [0, 13], "bad": [14, 25]}`), &resultTypes), "questions_group result_types")

	// Saving the group also creates the technical timeline category and
	// the "Passed Group1 poll" template through the model hook.
	group := db_models.QuestionsGroup{
		GroupName:   "Group1",
		MaxScore:    25,
		ResultTypes: resultTypes,
	}
	mustInsert(db.Create(&group).Error, "questions_group")

	questions := []db_models.Question{
		{QuestionsGroupID: group.ID, QuestionText: "Is this question awesome?", Order: 1},
		{QuestionsGroupID: group.ID, QuestionText: "Another question is better?", Order: 2},
	}
	mustInsert(db.Create(&questions).Error, "question")

	choices := []db_models.Choice{
		{ChoiceText: "Yes, it's awesome!", Order: 1, Questions: questions},
		{ChoiceText: "No, it's even better!", Order: 2, Questions: questions},
	}
	mustInsert(db.Create(&choices).Error, "choice")

	// "Good Events" lands after the technical category the group hook
	// created, so it gets id 2 on a fresh database.
	eventCategory := db_models.TimelineEventCategory{CategoryName: "Good Events"}
	mustInsert(db.Create(&eventCategory).Error, "timeline_event_category")

	eventTemplate := db_models.TimelineEventTemplate{
		EventCategoryID: eventCategory.ID,
		Event:           "Some Good Event",
	}
	mustInsert(db.Create(&eventTemplate).Error, "timeline_event_template")

	reactionCategory := db_models.EventReactionCategory{CategoryName: "Happy reactions"}
	mustInsert(db.Create(&reactionCategory).Error, "event_reaction_category")

	log.Println("FINISH initial insert into database")
}

func mustInsert(err error, what string) {
	if err != nil {
		log.Fatalf("Error inserting first values for %s: %v", what, err)
	}
	log.Printf("inserted first values for %s", what)
}
