package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/internal/service/study"
)

// StudyHandler exposes the session, answer, and dashboard endpoints.
type StudyHandler struct {
	study *study.Service
}

func NewStudyHandler(svc *study.Service) *StudyHandler {
	return &StudyHandler{study: svc}
}

type startSessionRequest struct {
	DeckID      *uuid.UUID `json:"deck_id"`
	Mode        string     `json:"mode"`
	Filter      string     `json:"filter"`
	TargetCount int        `json:"target_count"`
}

type sessionCardResponse struct {
	CardID          uuid.UUID  `json:"card_id"`
	Front           string     `json:"front"`
	Back            string     `json:"back"`
	Level           int        `json:"level"`
	New             bool       `json:"new"`
	TotalWrong      int        `json:"total_wrong"`
	TodayWrongCount int        `json:"today_wrong_count"`
	LastReviewedAt  *time.Time `json:"last_reviewed_at,omitempty"`
}

type sessionResponse struct {
	Cards           []sessionCardResponse `json:"cards"`
	Mode            string                `json:"mode"`
	NewlyIntroduced int                   `json:"newly_introduced"`
	Shortfall       int                   `json:"shortfall"`
}

// POST /api/sessions
func (h *StudyHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	plan, err := h.study.StartSession(c.Request.Context(), study.StartSessionInput{
		DeckID:      req.DeckID,
		Mode:        domain.StudyMode(req.Mode),
		Filter:      domain.LevelFilter(req.Filter),
		TargetCount: req.TargetCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := sessionResponse{
		Cards:           make([]sessionCardResponse, len(plan.Cards)),
		Mode:            plan.Mode.String(),
		NewlyIntroduced: plan.NewlyIntroduced,
		Shortfall:       plan.Shortfall,
	}
	for i, card := range plan.Cards {
		resp.Cards[i] = sessionCardResponse{
			CardID:          card.CardID,
			Front:           card.Front,
			Back:            card.Back,
			Level:           card.Level,
			New:             !card.HasState(),
			TotalWrong:      card.TotalWrong,
			TodayWrongCount: card.TodayWrongCount,
			LastReviewedAt:  card.LastReviewedAt,
		}
	}

	c.JSON(http.StatusOK, resp)
}

type submitAnswerRequest struct {
	CardID   uuid.UUID `json:"card_id"`
	Mode     string    `json:"mode"`
	Correct  bool      `json:"correct"`
	UsedHint bool      `json:"used_hint"`
}

type answerResponse struct {
	Level        int        `json:"level"`
	DueAt        time.Time  `json:"due_at"`
	DidLevelUp   bool       `json:"did_level_up"`
	DidLevelDown bool       `json:"did_level_down"`
	TotalCorrect int        `json:"total_correct"`
	TotalWrong   int        `json:"total_wrong"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

// POST /api/answers
func (h *StudyHandler) SubmitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.study.SubmitAnswer(c.Request.Context(), study.SubmitAnswerInput{
		CardID:   req.CardID,
		Mode:     domain.StudyMode(req.Mode),
		Correct:  req.Correct,
		UsedHint: req.UsedHint,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, answerResponse{
		Level:        result.State.Level,
		DueAt:        result.State.DueAt,
		DidLevelUp:   result.DidLevelUp,
		DidLevelDown: result.DidLevelDown,
		TotalCorrect: result.State.TotalCorrect,
		TotalWrong:   result.State.TotalWrong,
		ReviewedAt:   result.State.LastReviewedAt,
	})
}

type historyEntryResponse struct {
	Mode       string    `json:"mode"`
	Correct    bool      `json:"correct"`
	UsedHint   bool      `json:"used_hint"`
	PrevLevel  int       `json:"prev_level"`
	NewLevel   int       `json:"new_level"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// GET /api/cards/:id/history
func (h *StudyHandler) CardHistory(c *gin.Context) {
	cardID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.study.CardHistory(c.Request.Context(), cardID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]historyEntryResponse, len(logs))
	for i, entry := range logs {
		resp[i] = historyEntryResponse{
			Mode:       entry.Mode.String(),
			Correct:    entry.Correct,
			UsedHint:   entry.UsedHint,
			PrevLevel:  entry.PrevLevel,
			NewLevel:   entry.NewLevel,
			ReviewedAt: entry.ReviewedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"history": resp})
}

type dashboardResponse struct {
	DueCount        int            `json:"due_count"`
	IntroducedToday int            `json:"introduced_today"`
	ReviewedToday   int            `json:"reviewed_today"`
	NewCount        int            `json:"new_count"`
	LevelCounts     map[string]int `json:"level_counts"`
}

// GET /api/dashboard
func (h *StudyHandler) Dashboard(c *gin.Context) {
	dash, err := h.study.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		DueCount:        dash.DueCount,
		IntroducedToday: dash.IntroducedToday,
		ReviewedToday:   dash.ReviewedToday,
		NewCount:        dash.NewCount,
		LevelCounts: map[string]int{
			"1": dash.LevelCounts.Level1,
			"2": dash.LevelCounts.Level2,
			"3": dash.LevelCounts.Level3,
			"4": dash.LevelCounts.Level4,
		},
	})
}
