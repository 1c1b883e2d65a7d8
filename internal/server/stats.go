package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"majsoul-tracker/internal/constants"
	"majsoul-tracker/internal/domain"
	"majsoul-tracker/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// StatsServer serves the rendered match-history pages, one route per
// rule. It owns error mapping: a missing player renders 404, anything
// else renders a generic failure page with no partial history.
type StatsServer struct {
	playerSvc  *service.PlayerService
	historySvc *service.HistoryService
	tmpl       *template.Template
	logger     zerolog.Logger
}

type statsPage struct {
	PlayerName string
	Matches    []domain.GameMatch
	Truncated  bool
}

func NewStatsServer(playerSvc *service.PlayerService, historySvc *service.HistoryService, logger zerolog.Logger) (*StatsServer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &StatsServer{
		playerSvc:  playerSvc,
		historySvc: historySvc,
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

func (s *StatsServer) Handle3PStats(w http.ResponseWriter, r *http.Request) {
	s.handleStats(w, r, domain.ThreePlayer)
}

func (s *StatsServer) Handle4PStats(w http.ResponseWriter, r *http.Request) {
	s.handleStats(w, r, domain.FourPlayer)
}

func (s *StatsServer) handleStats(w http.ResponseWriter, r *http.Request, rule domain.GameRule) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	name := mux.Vars(r)["name"]

	playerID, err := s.playerSvc.ResolvePlayer(ctx, name, rule)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		http.Error(w, "player not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("player resolution failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	history, err := s.historySvc.FetchHistory(ctx, playerID, rule)
	if err != nil {
		s.logger.Error().Err(err).Uint64("player_id", playerID).Msg("history aggregation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := statsPage{
		PlayerName: name,
		Matches:    history.Matches,
		Truncated:  history.Truncated,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "user_stats.html", page); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("template rendering failed")
	}
}

// Router builds the service's route table.
func (s *StatsServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/search/3p/{name}", s.Handle3PStats).Methods(http.MethodGet)
	r.HandleFunc("/search/4p/{name}", s.Handle4PStats).Methods(http.MethodGet)
	return r
}
