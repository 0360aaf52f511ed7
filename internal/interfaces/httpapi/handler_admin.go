package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

func (h *Handler) RunRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefresh")
	defer span.End()

	if h.ingestionService == nil {
		writeError(ctx, w, fmt.Errorf("%w: ingestion is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	report, err := h.ingestionService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh failed", append(h.callerAttrs(ctx), "run_id", report.RunID, "error", err)...)
		writeErrorWithData(ctx, w, err, refreshReportToDTO(report))
		return
	}

	h.logger.InfoContext(ctx, "refresh completed", append(h.callerAttrs(ctx), "run_id", report.RunID, "summary", report.Summary())...)
	writeSuccess(ctx, w, http.StatusOK, refreshReportToDTO(report))
}

func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunQuery")
	defer span.End()

	var req queryRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.consoleService.RunSelect(ctx, req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "run query failed", append(h.callerAttrs(ctx), "error", err)...)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultSetToDTO(result))
}

func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTables")
	defer span.End()

	tables, err := h.consoleService.ListTables(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tables failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if tables == nil {
		tables = []string{}
	}

	writeSuccess(ctx, w, http.StatusOK, tables)
}

func (h *Handler) DescribeTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DescribeTable")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	columns, err := h.consoleService.DescribeTable(ctx, table)
	if err != nil {
		h.logger.WarnContext(ctx, "describe table failed", "table", table, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableToDTO(table, columns))
}

func (h *Handler) FetchRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FetchRows")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.consoleService.FetchTable(ctx, table, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "fetch rows failed", "table", table, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultSetToDTO(result))
}

func (h *Handler) InsertRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InsertRow")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	var req insertRowRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.consoleService.InsertRow(ctx, table, req.Values)
	if err != nil {
		h.logger.WarnContext(ctx, "insert row failed", append(h.callerAttrs(ctx), "table", table, "error", err)...)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "row inserted", append(h.callerAttrs(ctx), "table", table)...)
	writeSuccess(ctx, w, http.StatusCreated, writeResultToDTO(result))
}

func (h *Handler) UpdateRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRows")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	var req updateRowsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.consoleService.UpdateRows(ctx, table, req.Set, req.Where)
	if err != nil {
		h.logger.WarnContext(ctx, "update rows failed", append(h.callerAttrs(ctx), "table", table, "error", err)...)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "rows updated", append(h.callerAttrs(ctx), "table", table, "affected", result.Affected)...)
	writeSuccess(ctx, w, http.StatusOK, writeResultToDTO(result))
}

func (h *Handler) DeleteRows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRows")
	defer span.End()

	table := strings.TrimSpace(r.PathValue("table"))
	var req deleteRowsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.consoleService.DeleteRows(ctx, table, req.Where)
	if err != nil {
		h.logger.WarnContext(ctx, "delete rows failed", append(h.callerAttrs(ctx), "table", table, "error", err)...)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "rows deleted", append(h.callerAttrs(ctx), "table", table, "affected", result.Affected)...)
	writeSuccess(ctx, w, http.StatusOK, writeResultToDTO(result))
}

func (h *Handler) callerAttrs(ctx context.Context) []any {
	caller, ok := adminCallerFromContext(ctx)
	if !ok {
		return nil
	}
	return []any{"client_ip", caller.IP, "country", caller.Country}
}
