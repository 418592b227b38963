package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"bankparse/statement-extract/internal/fileutils"
	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
)

// uploadResponse is the success payload for the upload endpoint.
type uploadResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// errorResponse is the failure payload for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// handleUpload accepts one PDF statement, saves it under the configured
// upload directory, runs the extraction pipeline, journals the result, and
// returns the transaction list. Journal write failure is logged but never
// blocks the response.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.Server.MaxUploadSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.log.WithError(err).Warn("Failed to parse multipart form")
		s.writeError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.log.WithError(err).Warn("Failed to close uploaded file")
		}
	}()

	if header.Filename == "" {
		s.writeError(w, http.StatusBadRequest, "No selected file")
		return
	}

	// Base strips any path components a client might smuggle into the name.
	dest := filepath.Join(s.cfg.Upload.Directory, filepath.Base(header.Filename))
	if err := fileutils.SaveReader(dest, file); err != nil {
		s.log.WithError(err).Error("Failed to save uploaded file",
			logging.Field{Key: "file", Value: dest})
		s.writeError(w, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	s.log.Info("Processing uploaded statement",
		logging.Field{Key: "file", Value: dest},
		logging.Field{Key: "size", Value: header.Size})

	transactions, err := s.extractor.Extract(dest)
	if err != nil {
		s.log.WithError(err).Error("Extraction failed",
			logging.Field{Key: "file", Value: dest})
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.journal.Append(transactions); err != nil {
		s.log.WithError(err).Warn("Failed to journal transactions")
	}

	s.writeJSON(w, http.StatusOK, uploadResponse{Transactions: transactions})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Error("Error encoding JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
