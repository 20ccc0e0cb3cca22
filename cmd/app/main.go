package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"lifediary/cmd/fx/controllersfx"
	"lifediary/cmd/fx/dbfx"
	"lifediary/cmd/fx/entriesfx"
	"lifediary/cmd/fx/journeysfx"
	"lifediary/cmd/fx/pollsfx"
	"lifediary/cmd/fx/timelinefx"
	"lifediary/cmd/fx/usersfx"
	"lifediary/internal/api/controllers"
	"lifediary/pkg/middleware"
)

func main() {
	app := fx.New(
		dbfx.Module,
		usersfx.Module,
		pollsfx.Module,
		timelinefx.Module,
		journeysfx.Module,
		entriesfx.Module,
		controllersfx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	directoryController *controllers.DirectoryController,
	userController *controllers.UserController,
	pollController *controllers.PollController,
	timelineController *controllers.TimelineController,
	journeyController *controllers.JourneyController,
	entryController *controllers.EntryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, directoryController, userController, pollController,
		timelineController, journeyController, entryController)

	return r
}

// RegisterRoutes wires every route under the names the root directory
// advertises. Each POST route also answers GET with its posting
// instructions, so clicking a link in the directory always explains
// the endpoint instead of erroring.
func RegisterRoutes(r *gin.Engine,
	directoryController *controllers.DirectoryController,
	userController *controllers.UserController,
	pollController *controllers.PollController,
	timelineController *controllers.TimelineController,
	journeyController *controllers.JourneyController,
	entryController *controllers.EntryController) {

	r.GET("/", directoryController.GetDirectory)

	r.GET("/get_q_groups", pollController.GetQuestionGroups)
	r.GET("/get_questions", pollController.GetQuestions)
	r.GET("/get_choices", pollController.GetChoices)
	r.GET("/get_qc_by_q_group_name", pollController.GetQuestionsWithChoices)
	r.GET("/get_users", userController.GetUsers)
	r.GET("/get_one_user", userController.GetOneUser)
	r.GET("/get_users_answers", pollController.GetAnswers)
	r.GET("/get_users_cps", pollController.GetCompletedPolls)
	r.GET("/get_user_cp_result_by_q_group_name", pollController.GetPollResult)
	r.GET("/get_journeys_with_countries", journeyController.GetJourneysWithCountries)
	r.GET("/get_entries", entryController.GetEntries)
	r.GET("/get_entry_by_id", entryController.GetEntryByID)
	r.GET("/get_entries_by_cat_name", entryController.GetEntriesByCategory)
	r.GET("/get_timelines", timelineController.GetTimelines)
	r.GET("/get_tl_events_categories", timelineController.GetEventCategories)
	r.GET("/get_tl_events_templates", timelineController.GetEventTemplates)
	r.GET("/get_tl_event_cats_with_templates", timelineController.GetCatalog)
	r.GET("/get_timelines_events", timelineController.GetEvents)
	r.GET("/get_tl_events_by_user", timelineController.GetEventsByUser)
	r.GET("/get_tl_events_reactions_categories", timelineController.GetReactionCategories)
	r.GET("/get_tl_events_reactions", timelineController.GetReactions)

	postRoute(r, directoryController, "add_user", userController.AddUser)
	postRoute(r, directoryController, "add_user_completed_poll", pollController.AddCompletedPoll)
	postRoute(r, directoryController, "add_user_answer", pollController.AddAnswer)
	postRoute(r, directoryController, "add_user_answers_with_cp", pollController.AddAnswersWithCompletedPoll)
	postRoute(r, directoryController, "add_journey", journeyController.AddJourney)
	postRoute(r, directoryController, "add_entry", entryController.AddEntry)
	postRoute(r, directoryController, "add_timeline_event", timelineController.AddEvent)
	postRoute(r, directoryController, "add_tl_event_reaction", timelineController.AddReaction)
	postRoute(r, directoryController, "edit_timeline_event", timelineController.EditEvent)
	postRoute(r, directoryController, "delete_timeline_event", timelineController.DeleteEvent)
}

func postRoute(r *gin.Engine, directoryController *controllers.DirectoryController, name string, handler gin.HandlerFunc) {
	r.POST("/"+name, handler)
	r.GET("/"+name, directoryController.MethodHint(name))
}
