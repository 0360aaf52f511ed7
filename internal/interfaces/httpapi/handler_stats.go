package httpapi

import (
	"net/http"
)

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.statsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	matches, err := h.statsService.LiveMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]liveMatchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, liveMatchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	matches, err := h.statsService.RecentMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list recent matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]recentMatchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, recentMatchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopBatters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBatters")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leaders, err := h.statsService.TopBatters(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top batters failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderDTO, 0, len(leaders))
	for _, l := range leaders {
		items = append(items, leaderToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBowlers")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leaders, err := h.statsService.TopBowlers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top bowlers failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderDTO, 0, len(leaders))
	for _, l := range leaders {
		items = append(items, leaderToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.statsService.Players(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
