package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/processor"
)

const maxUploadBytes = 16 << 20

type Handler struct {
	processor StatementProcessor
	lister    TransactionLister
	apiKey    string
}

func NewHandler(
	processor StatementProcessor,
	lister TransactionLister,
	apiKey string,
) *Handler {
	return &Handler{
		processor: processor,
		lister:    lister,
		apiKey:    apiKey,
	}
}

func (h *Handler) authorized(w http.ResponseWriter, r *http.Request) bool {
	if h.apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}

	return true
}

func (h *Handler) UploadStatement(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	uploadedBy := r.FormValue("uploaded_by")
	if uploadedBy == "" {
		uploadedBy = "api"
	}

	summary, err := h.processor.ImportStatement(r.Context(), processor.Upload{
		FileName:   header.Filename,
		Data:       data,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("statement import failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		BatchID:           summary.BatchID,
		FileName:          summary.FileName,
		TotalRows:         summary.Parse.TotalRows,
		NewTransactions:   summary.Import.NewTransactions,
		DuplicatesSkipped: summary.Import.DuplicatesSkipped,
		IgnoredNoMoneyIn:  summary.Import.IgnoredNoMoneyIn,
		Success:           summary.Import.Success,
		Errors:            append(summary.Parse.Errors, summary.Import.Errors...),
	})
}

func (h *Handler) MatchContributions(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	requestedBy := r.URL.Query().Get("requested_by")
	if requestedBy == "" {
		requestedBy = "api"
	}

	result, err := h.processor.RunMatching(r.Context(), requestedBy)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("matching failed")

		if result == nil {
			result = &matcher.Result{}
		}
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, matchResponse{
		Success:             result.Success,
		TotalProcessed:      result.TotalProcessed,
		MatchedCount:        result.MatchedCount,
		UnmatchedCount:      result.UnmatchedCount,
		TotalAmount:         result.TotalAmount.StringFixed(2),
		UnmatchedReferences: result.UnmatchedReferences,
		Errors:              result.Errors,
	})
}

func (h *Handler) ListUnprocessed(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	transactions, err := h.lister.GetUnprocessedTransactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	response := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, transactionResponse{
			ID:          tx.ID,
			Date:        tx.Date.Format(time.DateOnly),
			Description: tx.Description,
			Reference:   tx.Reference,
			MoneyIn:     tx.MoneyIn.StringFixed(2),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}
