package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"snakescores/models"
	"snakescores/services"

	"github.com/gin-gonic/gin"
)

type GamerHandler struct {
	gamerService *services.GamerService
	hub          *services.Hub
}

func NewGamerHandler(gamerService *services.GamerService, hub *services.Hub) *GamerHandler {
	return &GamerHandler{
		gamerService: gamerService,
		hub:          hub,
	}
}

type AuthenticateRequest struct {
	UID      string `json:"uid" binding:"required"`
	Password string `json:"password"`
}

func (h *GamerHandler) CreateGamer(c *gin.Context) {
	var req services.CreateGamerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gamer, err := services.NewGamerFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.gamerService.Create(gamer); err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User ID " + req.UID + " is already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gamer.View())
}

func (h *GamerHandler) ListGamers(c *gin.Context) {
	gamers, err := h.gamerService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]models.GamerView, 0, len(gamers))
	for i := range gamers {
		views = append(views, gamers[i].View())
	}
	c.JSON(http.StatusOK, views)
}

func (h *GamerHandler) GetGamer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gamer ID"})
		return
	}

	gamer, err := h.gamerService.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if gamer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gamer not found"})
		return
	}
	c.JSON(http.StatusOK, gamer.View())
}

func (h *GamerHandler) UpdateGamer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gamer ID"})
		return
	}

	var req services.UpdateGamerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gamer, err := h.gamerService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User ID is already taken"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if gamer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gamer not found"})
		return
	}

	// A renamed gamer or handle shows up in the board entries.
	if h.hub != nil {
		h.hub.BroadcastBoard()
	}

	c.JSON(http.StatusOK, gamer.View())
}

// DeleteGamer removes the gamer and, via cascade, all of its scores.
func (h *GamerHandler) DeleteGamer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gamer ID"})
		return
	}

	gamer, err := h.gamerService.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if gamer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gamer not found"})
		return
	}

	if err := h.gamerService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// The deleted scores may have been on the board.
	if h.hub != nil {
		h.hub.BroadcastBoard()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gamer deleted successfully"})
}

// Authenticate verifies a handle/password pair. The answer is a plain
// boolean either way; an unknown handle is not an error and no session
// is issued.
func (h *GamerHandler) Authenticate(c *gin.Context) {
	var req AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gamer, err := h.gamerService.GetByUID(req.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": h.gamerService.CheckPassword(gamer, req.Password),
	})
}
