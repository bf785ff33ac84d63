package handlers

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lekded/internal/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	l := logger.Init("handlers-test", false, false, io.Discard)
	code := m.Run()
	l.Close()
	os.Exit(code)
}

const drawJSON = `{
	"id": "jan-16-2026",
	"date": "2026-01-16",
	"label": "งวด 16 มกราคม 2569",
	"prizes": [
		{"id": "prizeFirst", "name": "รางวัลที่ 1", "reward": "6000000", "number": ["835492"]}
	],
	"runningNumbers": [
		{"id": "runningNumberBackTwo", "name": "เลขท้าย 2 ตัว", "reward": "2000", "number": ["92"]}
	]
}`

func newTestRouter(t *testing.T, drawHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	if drawHandler == nil {
		drawHandler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(drawJSON))
		}
	}
	server := httptest.NewServer(drawHandler)
	t.Cleanup(server.Close)

	drawCache := services.NewDrawCache(services.NewDrawClient(server.URL, time.Second), time.Hour)
	handler := NewHTTPHandler(
		services.NewNumerologyService(),
		services.NewDreamService(),
		services.NewTarotService(rand.New(rand.NewSource(1))),
		services.NewLuckyService(rand.New(rand.NewSource(2))),
		services.NewLotteryService(),
		drawCache,
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec, payload
}

func TestDeriveBirthdate(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("returns the reading", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/numerology/birthdate",
			`{"day": 1, "month": 1, "year": 2000}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", payload["status"])
		numerology := payload["data"].(map[string]any)["numerology"].(map[string]any)
		assert.Equal(t, float64(4), numerology["lifePath"])
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/numerology/birthdate",
			`{"day": 15, "month": 13, "year": 2530}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "error", payload["status"])
	})
}

func TestSearchDreams(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("finds entries", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/dreams/search?q="+url.QueryEscape("งู"), "")
		require.Equal(t, http.StatusOK, rec.Code)
		entries := payload["data"].(map[string]any)["entries"].([]any)
		assert.NotEmpty(t, entries)
	})

	t.Run("no match is still a success", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/dreams/search?q=zzz", "")
		require.Equal(t, http.StatusOK, rec.Code)
		entries := payload["data"].(map[string]any)["entries"].([]any)
		assert.Empty(t, entries)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/dreams/search?q=", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCombineTarotNumbers(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("derives the set from three cards", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodPost, "/api/tarot/numbers",
			`{"cardIds": [1, 2, 3]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		numbers := payload["data"].(map[string]any)["numbers"].(map[string]any)
		two := numbers["twoDigit"].([]any)
		assert.Equal(t, "00", two[0])
		assert.Len(t, two, 6)
	})

	t.Run("rejects a wrong card count", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/api/tarot/numbers", `{"cardIds": [1, 2]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDrawLuckyNumber(t *testing.T) {
	router := newTestRouter(t, nil)

	t.Run("samples from the supplied pool", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/lucky?pool=53,53,14", "")
		require.Equal(t, http.StatusOK, rec.Code)
		number := payload["data"].(map[string]any)["number"].(string)
		assert.Contains(t, []string{"53", "14"}, number)
	})

	t.Run("falls back to repdigits", func(t *testing.T) {
		rec, payload := doJSON(t, router, http.MethodGet, "/api/lucky", "")
		require.Equal(t, http.StatusOK, rec.Code)
		number := payload["data"].(map[string]any)["number"].(string)
		require.Len(t, number, 2)
		assert.Equal(t, number[0], number[1])
	})
}

func TestNextDraw(t *testing.T) {
	router := newTestRouter(t, nil)

	rec, payload := doJSON(t, router, http.MethodGet, "/api/lotto/next-draw", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["date"])
	assert.Contains(t, data["label"], "งวด")

	today, err := time.Parse("2006-01-02", data["today"].(string))
	require.NoError(t, err)
	assert.False(t, data["date"].(string) < today.Format("2006-01-02"))
}

func TestCheckTickets(t *testing.T) {
	t.Run("reports matches against the latest draw", func(t *testing.T) {
		router := newTestRouter(t, nil)
		rec, payload := doJSON(t, router, http.MethodPost, "/api/lotto/check",
			`{"numbers": ["835492", "000000"]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]any)
		summary := data["summary"].(map[string]any)
		assert.Equal(t, float64(1), summary["winTickets"])

		results := summary["results"].([]any)
		require.Len(t, results, 2)
		winner := results[0].(map[string]any)
		assert.Equal(t, "835492", winner["number"])
		assert.Equal(t, true, winner["isWin"])
	})

	t.Run("rejects malformed ticket numbers", func(t *testing.T) {
		router := newTestRouter(t, nil)
		rec, _ := doJSON(t, router, http.MethodPost, "/api/lotto/check", `{"numbers": ["12345"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doJSON(t, router, http.MethodPost, "/api/lotto/check", `{"numbers": ["12a456"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doJSON(t, router, http.MethodPost, "/api/lotto/check", `{"numbers": []}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		rec, _ := doJSON(t, router, http.MethodPost, "/api/lotto/check", `{"numbers": ["835492"]}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
