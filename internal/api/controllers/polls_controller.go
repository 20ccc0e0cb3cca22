package controllers

import (
	"github.com/gin-gonic/gin"
	"lifediary/internal/models/request_models"
	"lifediary/internal/services"
	"lifediary/pkg/utils"
)

type PollController struct {
	pollService services.PollServiceInterface
}

func NewPollController(pollService services.PollServiceInterface) *PollController {
	return &PollController{
		pollService: pollService,
	}
}

func (pc *PollController) GetQuestionGroups(c *gin.Context) {
	groups, err := pc.pollService.ListGroups(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_q_groups", groups, len(groups) == 0)
}

func (pc *PollController) GetQuestions(c *gin.Context) {
	questions, err := pc.pollService.ListQuestions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_questions", questions, len(questions) == 0)
}

func (pc *PollController) GetChoices(c *gin.Context) {
	choices, err := pc.pollService.ListChoices(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_choices", choices, len(choices) == 0)
}

func (pc *PollController) GetCompletedPolls(c *gin.Context) {
	polls, err := pc.pollService.ListCompletedPolls(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_users_cps", polls, len(polls) == 0)
}

func (pc *PollController) GetAnswers(c *gin.Context) {
	answers, err := pc.pollService.ListAnswers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondList(c, "get_users_answers", answers, len(answers) == 0)
}

func (pc *PollController) GetQuestionsWithChoices(c *gin.Context) {
	groupName := c.Query("questions_group")
	if groupName == "" {
		respondUsage(c, "get_qc_by_q_group_name")
		return
	}

	result, err := pc.pollService.QuestionsWithChoices(c.Request.Context(), groupName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, result)
}

func (pc *PollController) GetPollResult(c *gin.Context) {
	userIDStr := c.Query("user_id")
	groupName := c.Query("questions_group_name")
	if userIDStr == "" || groupName == "" {
		respondUsage(c, "get_user_cp_result_by_q_group_name")
		return
	}

	userID, err := utils.ParseID(userIDStr)
	if err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	result, err := pc.pollService.PollResult(c.Request.Context(), userID, groupName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, result)
}

func (pc *PollController) AddCompletedPoll(c *gin.Context) {
	var req request_models.AddCompletedPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	poll, err := pc.pollService.AddCompletedPoll(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, gin.H{"new_saved_data": poll})
}

func (pc *PollController) AddAnswer(c *gin.Context) {
	var req request_models.AddAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	answer, err := pc.pollService.AddAnswer(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, gin.H{"new_saved_data": answer})
}

func (pc *PollController) AddAnswersWithCompletedPoll(c *gin.Context) {
	var req request_models.AnswersWithCompletedPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	result, err := pc.pollService.AddAnswersWithCompletedPoll(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, result)
}
