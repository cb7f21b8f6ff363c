package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/usecase/conversation"
	"github.com/rex-ai/rex/pkg/usecase/memory"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// Server exposes the conversation and memory use cases over HTTP
type Server struct {
	conv *conversation.UseCase
	mem  *memory.UseCase
}

// New builds the HTTP handler
func New(conv *conversation.UseCase, mem *memory.UseCase) http.Handler {
	s := &Server{conv: conv, mem: mem}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, withLogger, middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "REX API is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/conversation", s.handleConversation)
		r.Post("/memory/trigger", s.handleMemoryTrigger)
		r.Get("/memory/categories", s.handleCategories)
		r.Get("/memory/{userID}", s.handleUserMemories)
		r.Post("/memory/{userID}/archive/search", s.handleArchiveSearch)
	})

	return r
}

// withLogger attaches a request-scoped logger carrying the request ID, so
// handlers logging via logging.From tag every line with it
func withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := logging.From(ctx).With("request_id", middleware.GetReqID(ctx))
		next.ServeHTTP(w, req.WithContext(logging.With(ctx, logger)))
	})
}

func (s *Server) handleConversation(w http.ResponseWriter, req *http.Request) {
	var input model.ConversationInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := s.conv.ProcessTurn(req.Context(), &input)
	if err != nil {
		logging.From(req.Context()).Error("conversation processing failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

type triggerRequest struct {
	UserID        string         `json:"user_id"`
	TriggerPhrase string         `json:"trigger_phrase"`
	Context       map[string]any `json:"context"`
}

func (s *Server) handleMemoryTrigger(w http.ResponseWriter, req *http.Request) {
	var input triggerRequest
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.Context == nil {
		input.Context = map[string]any{}
	}

	result := s.mem.ProcessTrigger(req.Context(), input.UserID, input.TriggerPhrase, input.Context)
	writeJSON(w, http.StatusOK, map[string]any{"recalled_memory": result})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	categories := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		categories = append(categories, string(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleUserMemories(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")
	category := req.URL.Query().Get("category")

	limit := 10
	if raw := req.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	memories, err := s.mem.UserMemories(req.Context(), userID, category, limit)
	if err != nil {
		if errors.Is(err, memory.ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"memories": memories})
}

type archiveSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) handleArchiveSearch(w http.ResponseWriter, req *http.Request) {
	userID := chi.URLParam(req, "userID")

	var input archiveSearchRequest
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := s.mem.SearchArchive(req.Context(), userID, input.Query, input.Limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
