package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-asteroids/internal/score"
)

// maxBodyBytes bounds a score submission.
const maxBodyBytes = 4 << 10

// createScoreRequest is the body of POST /api/scores.
type createScoreRequest struct {
	PlayerName string `json:"playerName"`
	ScoreValue *int   `json:"scoreValue"`
}

// statsResponse is the body of GET /api/scores/stats.
type statsResponse struct {
	GamesCount int       `json:"gamesCount"`
	Players    int       `json:"players"`
	HighScore  int       `json:"highScore"`
	AvgScore   float64   `json:"avgScore"`
	TotalScore int64     `json:"totalScore"`
	LastPlayed time.Time `json:"lastPlayed"`
}

func (h *routerHandlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *routerHandlers) handleCreateScore(w http.ResponseWriter, r *http.Request) {
	var req createScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		writeError(w, "playerName is required", http.StatusBadRequest)
		return
	}
	if req.ScoreValue == nil || *req.ScoreValue < 0 {
		writeError(w, "scoreValue must be a non-negative number", http.StatusBadRequest)
		return
	}

	entry, err := h.store.SaveScore(name, *req.ScoreValue)
	if err != nil {
		h.logger.Error("save score failed", "player", name, "err", err)
		writeError(w, "Cannot save score", http.StatusInternalServerError)
		return
	}

	scoresSubmitted.Inc()
	h.logger.Info("score saved", "player", name, "score", entry.ScoreValue, "id", entry.ID)
	writeJSON(w, http.StatusCreated, score.FromEntry(entry))
}

func (h *routerHandlers) handleListScores(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		if limit > 0 {
			h.respondScores(w, func() ([]score.ScoreData, error) {
				es, err := h.store.TopScores(limit)
				return score.FromEntries(es), err
			})
			return
		}
	}

	h.respondScores(w, func() ([]score.ScoreData, error) {
		es, err := h.store.AllScores()
		return score.FromEntries(es), err
	})
}

func (h *routerHandlers) handleTopScores(w http.ResponseWriter, r *http.Request) {
	h.respondScores(w, func() ([]score.ScoreData, error) {
		es, err := h.store.TopScores(score.DefaultLimit)
		return score.FromEntries(es), err
	})
}

func (h *routerHandlers) handlePlayerScores(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	es, err := h.store.PlayerScores(name)
	if err != nil {
		h.logger.Error("player scores failed", "player", name, "err", err)
		writeError(w, "Cannot load scores", http.StatusInternalServerError)
		return
	}
	if len(es) == 0 {
		writeError(w, "No scores for player", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, score.FromEntries(es))
}

func (h *routerHandlers) handlePlayerHighest(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	e, err := h.store.PlayerHighScore(name)
	if err != nil {
		h.logger.Error("player high score failed", "player", name, "err", err)
		writeError(w, "Cannot load score", http.StatusInternalServerError)
		return
	}
	if e == nil {
		writeError(w, "No scores for player", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, score.FromEntry(*e))
}

func (h *routerHandlers) handleDeleteScore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "id must be a number", http.StatusBadRequest)
		return
	}

	deleted, err := h.store.DeleteScore(id)
	if err != nil {
		h.logger.Error("delete score failed", "id", id, "err", err)
		writeError(w, "Cannot delete score", http.StatusInternalServerError)
		return
	}
	if !deleted {
		writeError(w, "Score not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *routerHandlers) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.store.Stats()
	if err != nil {
		h.logger.Error("stats failed", "err", err)
		writeError(w, "Cannot load stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		GamesCount: st.GamesCount,
		Players:    st.Players,
		HighScore:  st.HighScore,
		AvgScore:   st.AvgScore,
		TotalScore: st.TotalScore,
		LastPlayed: st.LastPlayed,
	})
}

// handleRank reports where a score would place if it were submitted now.
// Equal scores already recorded stay ahead of it.
func (h *routerHandlers) handleRank(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.Atoi(r.URL.Query().Get("value"))
	if err != nil {
		writeError(w, "value must be a number", http.StatusBadRequest)
		return
	}

	n, err := h.store.CountAtLeast(value)
	if err != nil {
		h.logger.Error("rank failed", "value", value, "err", err)
		writeError(w, "Cannot compute rank", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"value": value, "rank": n + 1})
}

func (h *routerHandlers) respondScores(w http.ResponseWriter, load func() ([]score.ScoreData, error)) {
	scores, err := load()
	if err != nil {
		h.logger.Error("load scores failed", "err", err)
		writeError(w, "Cannot load scores", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

// Helper functions (package-level for reuse)

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck // Client went away; nothing left to report to
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, map[string]string{"error": message})
}
