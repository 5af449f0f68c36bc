package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grajto/vocab-trainer/internal/domain"
	"github.com/grajto/vocab-trainer/internal/service/deck"
)

// DeckHandler exposes deck and card management endpoints.
type DeckHandler struct {
	decks *deck.Service
}

func NewDeckHandler(svc *deck.Service) *DeckHandler {
	return &DeckHandler{decks: svc}
}

type deckResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type cardResponse struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCardResponse(card *domain.Card) cardResponse {
	return cardResponse{
		ID:        card.ID,
		DeckID:    card.DeckID,
		Front:     card.Front,
		Back:      card.Back,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

type deckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/decks
func (h *DeckHandler) CreateDeck(c *gin.Context) {
	var req deckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.decks.CreateDeck(c.Request.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDeckResponse(created))
}

// PUT /api/decks/:id
func (h *DeckHandler) UpdateDeck(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req deckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.decks.UpdateDeck(c.Request.Context(), deck.UpdateDeckInput{
		DeckID:      id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDeckResponse(updated))
}

// DELETE /api/decks/:id
func (h *DeckHandler) DeleteDeck(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.decks.DeleteDeck(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/decks
func (h *DeckHandler) ListDecks(c *gin.Context) {
	decks, err := h.decks.ListDecks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]deckResponse, len(decks))
	for i := range decks {
		resp[i] = toDeckResponse(&decks[i])
	}
	c.JSON(http.StatusOK, gin.H{"decks": resp})
}

type createCardRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// POST /api/decks/:id/cards
func (h *DeckHandler) CreateCard(c *gin.Context) {
	deckID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.decks.CreateCard(c.Request.Context(), deck.CreateCardInput{
		DeckID: deckID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCardResponse(created))
}

// PUT /api/cards/:id
func (h *DeckHandler) UpdateCard(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.decks.UpdateCard(c.Request.Context(), deck.UpdateCardInput{
		CardID: id,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCardResponse(updated))
}

// DELETE /api/cards/:id
func (h *DeckHandler) DeleteCard(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.decks.DeleteCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/decks/:id/cards
func (h *DeckHandler) ListCards(c *gin.Context) {
	deckID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	cards, err := h.decks.ListCards(c.Request.Context(), deckID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]cardResponse, len(cards))
	for i := range cards {
		resp[i] = toCardResponse(&cards[i])
	}
	c.JSON(http.StatusOK, gin.H{"cards": resp})
}
