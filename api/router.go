// Package api serves the bluff analysis over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luca-patrignani/bluff-analysis/analysis"
	"github.com/luca-patrignani/bluff-analysis/domain/bluff"
	"github.com/luca-patrignani/bluff-analysis/domain/deck"
	"github.com/luca-patrignani/bluff-analysis/domain/poker"
	"github.com/luca-patrignani/bluff-analysis/ledger"
	"github.com/luca-patrignani/bluff-analysis/store"
)

// MaxSurveyBoards caps the flops a single request may survey.
const MaxSurveyBoards = 5000

type Options struct {
	SurveyBoards int
	SurveySeed   string
}

type Server struct {
	chain  *ledger.Blockchain
	store  store.Store
	logger *slog.Logger
	opts   Options

	// surveyMu keeps ledger appends and store writes in the same order.
	surveyMu sync.Mutex
}

func NewServer(chain *ledger.Blockchain, st store.Store, logger *slog.Logger, opts Options) *Server {
	if opts.SurveyBoards <= 0 {
		opts.SurveyBoards = 200
	}
	return &Server{chain: chain, store: st, logger: logger, opts: opts}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Post("/candidates", s.handleCandidates)
		r.Route("/surveys", func(r chi.Router) {
			r.Get("/", s.handleListSurveys)
			r.Post("/", s.handleCreateSurvey)
			r.Get("/verify", s.handleVerify)
			r.Get("/{index}", s.handleGetSurvey)
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

type checkRequest struct {
	Hole  string `json:"hole"`
	Board string `json:"board"`
}

type checkResponse struct {
	Hole        string `json:"hole"`
	Board       string `json:"board"`
	Class       string `json:"class"`
	Description string `json:"description,omitempty"`
	bluff.Verdict
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !decode(w, r, &req) {
		return
	}
	hole, err := poker.ParseHoleCards(req.Hole)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	board, err := poker.ParseBoard(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hand, err := poker.NewHand(hole, board)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	resp := checkResponse{
		Hole:    hole.Label(),
		Board:   board.String(),
		Class:   hole.Class(),
		Verdict: bluff.Evaluate(hand),
	}
	if desc, err := hand.Describe(); err == nil {
		resp.Description = desc
	}
	writeJSON(w, http.StatusOK, resp)
}

type candidatesRequest struct {
	Board string `json:"board"`
	Range string `json:"range"`
}

type candidatesResponse struct {
	Board      string   `json:"board"`
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	var req candidatesRequest
	if !decode(w, r, &req) {
		return
	}
	board, err := poker.ParseBoard(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hands, err := parseOptionalRange(req.Range)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	found, err := bluff.Collect(board, hands)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp := candidatesResponse{Board: board.String(), Count: len(found), Candidates: make([]string, len(found))}
	for i, hc := range found {
		resp.Candidates[i] = hc.Label()
	}
	writeJSON(w, http.StatusOK, resp)
}

type surveyRequest struct {
	Boards int    `json:"boards"`
	Seed   string `json:"seed"`
	Range  string `json:"range"`
	Dead   string `json:"dead"`
}

func (s *Server) handleCreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req surveyRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Boards == 0 {
		req.Boards = s.opts.SurveyBoards
	}
	if req.Boards < 0 || req.Boards > MaxSurveyBoards {
		writeError(w, http.StatusBadRequest, fmt.Errorf("boards must be between 1 and %d", MaxSurveyBoards))
		return
	}
	if req.Seed == "" {
		req.Seed = s.opts.SurveySeed
	}
	hands, err := parseOptionalRange(req.Range)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dead, err := parseDead(req.Dead)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	d := deck.New(nil)
	if req.Seed != "" {
		d = deck.NewSeeded([]byte(req.Seed))
	}
	report, err := analysis.Survey(r.Context(), d, req.Boards, hands, dead...)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	report.Seed, report.Range, report.Dead = req.Seed, req.Range, req.Dead

	s.surveyMu.Lock()
	defer s.surveyMu.Unlock()
	block := s.chain.Next(report, "api")
	if err := s.store.SaveBlock(r.Context(), block); err != nil {
		s.logger.Error("save survey block", "index", block.Index, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.chain.Commit(block); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("survey recorded", "index", block.Index, "boards", report.Boards, "candidates", report.Candidates)
	writeJSON(w, http.StatusCreated, block)
}

func (s *Server) handleListSurveys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.chain.Blocks())
}

func (s *Server) handleGetSurvey(w http.ResponseWriter, r *http.Request) {
	var index int
	if _, err := fmt.Sscanf(chi.URLParam(r, "index"), "%d", &index); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid index"))
		return
	}
	block, err := s.chain.GetByIndex(index)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := s.chain.Verify(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]any{"ok": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "blocks": s.chain.Len()})
}

func parseOptionalRange(s string) ([]poker.HoleCards, error) {
	if s == "" {
		return nil, nil
	}
	return poker.ParseRange(s)
}

// parseDead parses an optional list of distinct dead cards.
func parseDead(s string) ([]poker.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, err
	}
	if err := poker.CheckDistinct(cards...); err != nil {
		return nil, err
	}
	return cards, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, poker.ErrConflictingCards):
		return http.StatusConflict
	case errors.Is(err, poker.ErrInvalidCard), errors.Is(err, analysis.ErrNoLiveHands):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
