package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"snakescores/models"
	"snakescores/services"

	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService *services.ScoreService
	gamerService *services.GamerService
	hub          *services.Hub
}

func NewScoreHandler(scoreService *services.ScoreService, gamerService *services.GamerService, hub *services.Hub) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
		gamerService: gamerService,
		hub:          hub,
	}
}

type CreateScoreRequest struct {
	Score      *int   `json:"score" binding:"required"`
	UID        string `json:"uid" binding:"required"`
	DatePlayed string `json:"dateplayed"` // YYYY-MM-DD, defaults to today
}

// CreateScore records a new score for the gamer identified by login
// handle. The handle is resolved to the foreign key before the store is
// touched, so an unknown handle is a validation failure, not an
// integrity one.
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var req CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gamer, err := h.gamerService.GetByUID(req.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if gamer == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("User ID %s is wrong", req.UID)})
		return
	}

	var datePlayed time.Time
	if req.DatePlayed != "" {
		datePlayed, err = time.Parse("2006-01-02", req.DatePlayed)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateplayed must be YYYY-MM-DD"})
			return
		}
	}

	score := models.NewScore(gamer.ID, *req.Score, datePlayed)
	if err := h.scoreService.Create(score); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.hub != nil {
		h.hub.BroadcastBoard()
	}

	c.JSON(http.StatusCreated, score.View())
}

// ListScores returns every score across all users, ranked.
func (h *ScoreHandler) ListScores(c *gin.Context) {
	scores, err := h.scoreService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ScoreViews(scores))
}

// UserScores returns one gamer's scores, ranked.
func (h *ScoreHandler) UserScores(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gamer ID"})
		return
	}

	scores, err := h.scoreService.ListForUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ScoreViews(scores))
}

// Leaderboard returns the global top scores paired with their owners,
// capped at ?limit= rows (50 by default).
func (h *ScoreHandler) Leaderboard(c *gin.Context) {
	limit := services.DefaultTopLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	scores, err := h.scoreService.TopGlobal(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.LeaderboardEntries(scores))
}

// HighestScore returns the gamer's single best score.
func (h *ScoreHandler) HighestScore(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gamer ID"})
		return
	}

	score, err := h.scoreService.HighestForUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if score == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No scores for gamer"})
		return
	}
	c.JSON(http.StatusOK, score.View())
}
