package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"lekded/internal/models"
	"lekded/internal/services"
)

// HTTPHandler holds the engine services the routes dispatch into. All
// input-shape validation happens here, at the boundary; the services
// assume pre-validated input.
type HTTPHandler struct {
	numerology *services.NumerologyService
	dreams     *services.DreamService
	tarot      *services.TarotService
	lucky      *services.LuckyService
	lottery    *services.LotteryService
	draws      *services.DrawCache
}

func NewHTTPHandler(
	numerology *services.NumerologyService,
	dreams *services.DreamService,
	tarot *services.TarotService,
	lucky *services.LuckyService,
	lottery *services.LotteryService,
	draws *services.DrawCache,
) *HTTPHandler {
	return &HTTPHandler{
		numerology: numerology,
		dreams:     dreams,
		tarot:      tarot,
		lucky:      lucky,
		lottery:    lottery,
		draws:      draws,
	}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	api.POST("/numerology/birthdate", h.DeriveBirthdate)
	api.GET("/dreams/search", h.SearchDreams)
	api.GET("/dreams/suggestions", h.DreamSuggestions)
	api.GET("/tarot/cards", h.ListTarotCards)
	api.GET("/tarot/spread", h.DealTarotSpread)
	api.POST("/tarot/numbers", h.CombineTarotNumbers)
	api.GET("/lucky", h.DrawLuckyNumber)
	api.GET("/lotto/next-draw", h.NextDraw)
	api.POST("/lotto/check", h.CheckTickets)
}

func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}

// respondValidation maps a ValidationError to a 400 with its Thai
// message; anything else becomes a 500.
func respondValidation(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		respondError(c, http.StatusBadRequest, verr.Message)
		return
	}
	logger.Errorf("unexpected error: %v", err)
	respondError(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดภายในระบบ")
}

type birthdateRequest struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DeriveBirthdate computes the numerology reading for a birthdate. The
// year may be Buddhist or Gregorian.
func (h *HTTPHandler) DeriveBirthdate(c *gin.Context) {
	var req birthdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "ข้อมูลวันเกิดไม่ถูกต้อง")
		return
	}
	reading, err := h.numerology.Derive(req.Day, req.Month, req.Year)
	if err != nil {
		respondValidation(c, err)
		return
	}
	respondOK(c, reading)
}

// SearchDreams looks up dream keywords. No match is a success with an
// empty list.
func (h *HTTPHandler) SearchDreams(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		respondError(c, http.StatusBadRequest, "กรุณาพิมพ์สิ่งที่ฝันเห็น")
		return
	}
	entries := h.dreams.Search(q)
	if entries == nil {
		entries = []models.DreamEntry{}
	}
	respondOK(c, gin.H{"query": q, "entries": entries})
}

func (h *HTTPHandler) DreamSuggestions(c *gin.Context) {
	respondOK(c, gin.H{
		"popular":    h.dreams.PopularDreams(),
		"categories": h.dreams.Categories(),
	})
}

func (h *HTTPHandler) ListTarotCards(c *gin.Context) {
	respondOK(c, h.tarot.Cards())
}

// DealTarotSpread deals a shuffled spread to pick from; defaults to the
// 5-card spread the reading flow uses.
func (h *HTTPHandler) DealTarotSpread(c *gin.Context) {
	count := 5
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "จำนวนไพ่ไม่ถูกต้อง")
			return
		}
		count = n
	}
	respondOK(c, h.tarot.DealSpread(count))
}

type tarotNumbersRequest struct {
	CardIDs []int `json:"cardIds"`
}

// CombineTarotNumbers turns 3 picked cards into a lucky-number set.
func (h *HTTPHandler) CombineTarotNumbers(c *gin.Context) {
	var req tarotNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "ข้อมูลไพ่ไม่ถูกต้อง")
		return
	}
	if len(req.CardIDs) != 3 {
		respondError(c, http.StatusBadRequest, "ต้องเลือกไพ่ 3 ใบ")
		return
	}

	cards := make([]models.TarotCard, 0, 3)
	for _, id := range req.CardIDs {
		card, ok := h.tarot.CardByID(id)
		if !ok {
			// Unknown ids still derive numbers via the map fallback.
			card = models.TarotCard{ID: id}
		}
		cards = append(cards, card)
	}

	set, err := h.tarot.CombineNumbers(cards)
	if err != nil {
		respondValidation(c, err)
		return
	}
	respondOK(c, gin.H{"cards": cards, "numbers": set})
}

// DrawLuckyNumber samples one number from the comma-separated pool, or
// from the repdigit fallback when none is given.
func (h *HTTPHandler) DrawLuckyNumber(c *gin.Context) {
	var pool []string
	if raw := c.Query("pool"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				pool = append(pool, v)
			}
		}
	}
	respondOK(c, gin.H{"number": h.lucky.Draw(pool)})
}

// NextDraw reports the upcoming draw date with its label and id.
func (h *HTTPHandler) NextDraw(c *gin.Context) {
	next := services.NextDrawDate(time.Now())
	respondOK(c, gin.H{
		"id":    services.DrawID(next),
		"date":  services.FormatISODate(next),
		"label": services.FormatThaiLabel(next),
		"today": services.TodayISO(),
	})
}

type checkRequest struct {
	Numbers []string `json:"numbers"`
}

// CheckTickets checks submitted ticket numbers against the latest
// published draw.
func (h *HTTPHandler) CheckTickets(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Numbers) == 0 {
		respondError(c, http.StatusBadRequest, "กรุณาเพิ่มหมายเลขสลากอย่างน้อย 1 ใบ")
		return
	}
	for _, number := range req.Numbers {
		if len(number) != 6 || !isDigits(number) {
			respondError(c, http.StatusBadRequest, "กรุณากรอกเลขสลาก 6 หลัก")
			return
		}
	}

	draw, err := h.draws.Latest(c.Request.Context())
	if err != nil {
		logger.Errorf("fetching latest draw: %v", err)
		respondError(c, http.StatusBadGateway, "ไม่สามารถดึงผลรางวัลได้ในขณะนี้")
		return
	}

	summary := h.lottery.CheckTickets(req.Numbers, draw)
	respondOK(c, gin.H{"draw": gin.H{"id": draw.ID, "date": draw.Date, "label": draw.Label}, "summary": summary})
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
