package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// aliveHandler answers GET on the webhook path
func (s *Server) aliveHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Bot is running"))
}

// webhookHandler accepts a single telegram update. Handling is synchronous and always
// answered with 200 for a decodable update, telegram would redeliver it otherwise.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	var upd tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Printf("[WARN] bad webhook payload: %v", err)
		renderError(w, r, fmt.Errorf("invalid update"), http.StatusBadRequest)
		return
	}

	s.updates.HandleUpdate(r.Context(), upd)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// statusHandler returns server status with basic bot stats
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := map[string]any{
		"status":            "ok",
		"version":           s.version,
		"time":              time.Now().UTC(),
		"reminders_enabled": s.store.RemindersEnabled(ctx),
		"chats":             len(s.store.RegisteredChats(ctx)),
		"plants":            len(s.store.ListPlants(ctx)),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// storeHandler runs store diagnostics, 503 if any step failed
func (s *Server) storeHandler(w http.ResponseWriter, r *http.Request) {
	res := s.diag.Diagnose(r.Context())
	code := http.StatusOK
	if !res.OK {
		code = http.StatusServiceUnavailable
	}
	renderJSON(w, r, code, res)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
