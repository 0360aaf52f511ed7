package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/recent", handler.ListRecentMatches)
	mux.HandleFunc("GET /v1/leaderboards/batting", handler.ListTopBatters)
	mux.HandleFunc("GET /v1/leaderboards/bowling", handler.ListTopBowlers)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, logger *logging.Logger, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, logger, h)
	}

	mux.Handle("POST /v1/admin/refresh", admin(handler.RunRefresh))
	mux.Handle("POST /v1/admin/query", admin(handler.RunQuery))
	mux.Handle("GET /v1/admin/tables", admin(handler.ListTables))
	mux.Handle("GET /v1/admin/tables/{table}", admin(handler.DescribeTable))
	mux.Handle("GET /v1/admin/tables/{table}/rows", admin(handler.FetchRows))
	mux.Handle("POST /v1/admin/tables/{table}/rows", admin(handler.InsertRow))
	mux.Handle("PATCH /v1/admin/tables/{table}/rows", admin(handler.UpdateRows))
	mux.Handle("DELETE /v1/admin/tables/{table}/rows", admin(handler.DeleteRows))
}
