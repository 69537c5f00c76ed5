package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sapfs/fsgen/internal/ai"
	"github.com/sapfs/fsgen/internal/core"
	"github.com/sapfs/fsgen/internal/export"
	"github.com/sapfs/fsgen/internal/extract"
	"github.com/sapfs/fsgen/internal/sheet"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleUpload accepts a multipart reference file and stores it.
// Responds with the stored file record, payload included, so clients can
// echo it back on generation requests without another round trip.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, header, err := s.formFile(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}

	record, err := s.store.Save(header.Filename, data)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, map[string]core.UploadedFile{"file": record})
}

// chatRequest is the generation request body. History is accepted for shape
// compatibility but the generator is stateless per request.
type chatRequest struct {
	Message string              `json:"message"`
	Files   []core.UploadedFile `json:"files"`
	History []core.Message      `json:"history"`
}

// handleChat runs one generation turn: extract template content from the
// attached files, call the AI backend, and return the assistant message.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, r, http.StatusBadRequest, errors.New("message is required"))
		return
	}

	templateContent := templateText(req.Files)

	content, err := s.ai.Generate(r.Context(), req.Message, templateContent)
	if err != nil {
		respondError(w, r, statusForGenerationError(err), err)
		return
	}

	writeJSON(w, map[string]core.Message{"message": {
		ID:        uuid.New().String(),
		Role:      "assistant",
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}})
}

// templateText flattens the extracted content of every attached file into a
// single prompt block. Sheet dumps are serialized as JSON; extraction never
// fails outright, unreadable files degrade to a placeholder.
func templateText(files []core.UploadedFile) string {
	var b strings.Builder
	for _, f := range files {
		switch c := extract.Content(f).(type) {
		case core.TextContent:
			if c == "" {
				continue
			}
			fmt.Fprintf(&b, "文件 %s 的内容：\n%s\n\n", f.Name, string(c))
		case core.SheetDump:
			data, err := json.Marshal(c)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "文件 %s 的内容：\n%s\n\n", f.Name, data)
		}
	}
	return strings.TrimSpace(b.String())
}

// handleTableParse parses a vendor table-export workbook into a table
// definition.
func (s *Server) handleTableParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, _, err := s.formFile(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("reading upload: %w", err))
		return
	}

	info, err := sheet.ParseTableDefinition(data)
	if err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, map[string]core.TableInfo{"table": info})
}

// exportRequest is the export request body. Content is either the document
// object itself or a string holding the assistant's reply, JSON embedded.
type exportRequest struct {
	Format        string              `json:"format"`
	Content       json.RawMessage     `json:"content"`
	FieldMappings []core.FieldMapping `json:"fieldMappings"`
}

// handleExport renders the document data as a docx or xlsx attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	doc := parseDocumentData(req.Content)

	switch req.Format {
	case "docx":
		payload, err := export.Document(doc)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, err)
			return
		}
		sendAttachment(w, export.DocxContentType, export.DocxFilename, payload)
	case "xlsx":
		fields := req.FieldMappings
		if len(fields) == 0 {
			fields = doc.FieldMappings
		}
		payload, err := export.FieldMappings(fields)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError, err)
			return
		}
		sendAttachment(w, export.XlsxContentType, export.XlsxFilename, payload)
	default:
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("unsupported export format %q", req.Format))
	}
}

// parseDocumentData recovers structured document data from the export
// request. Assistant replies wrap the JSON in prose, so string content goes
// through JSON extraction first; anything unparseable becomes the overview
// of an untitled document rather than an error.
func parseDocumentData(raw json.RawMessage) core.FSDocumentData {
	var doc core.FSDocumentData
	if len(raw) == 0 {
		return doc
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if embedded := ai.ExtractJSON(text); embedded != "" {
			if err := json.Unmarshal([]byte(embedded), &doc); err == nil {
				return doc
			}
		}
		doc.Overview = text
		return doc
	}

	if err := json.Unmarshal(raw, &doc); err == nil {
		return doc
	}
	return core.FSDocumentData{}
}

// formFile pulls the uploaded file out of the multipart form, mapping the
// absent-file case to the domain sentinel.
func (s *Server) formFile(r *http.Request) (io.ReadCloser, *fileHeader, error) {
	f, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, core.ErrNoFile
		}
		return nil, nil, err
	}
	return f, &fileHeader{Filename: header.Filename, Size: header.Size}, nil
}

// fileHeader carries the upload metadata handlers need.
type fileHeader struct {
	Filename string
	Size     int64
}

// statusForGenerationError picks an HTTP status for a failed generation.
func statusForGenerationError(err error) int {
	switch {
	case errors.Is(err, ai.ErrTooManyGenerations):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// sendAttachment writes payload as a file download.
func sendAttachment(w http.ResponseWriter, contentType, filename string, payload []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(payload)))
	w.Write(payload)
}
