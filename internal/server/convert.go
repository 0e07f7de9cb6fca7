package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	locsheet "github.com/KimNorgaard/go-locsheet"
)

const (
	literalFileName = "translations.ts"
	tableFileStem   = "translations"

	literalContentType = "text/plain; charset=utf-8"
)

// multipart bookkeeping on top of the file itself.
const formOverhead = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+formOverhead)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", s.maxUpload))
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	dir, err := locsheet.ParseDirection(r.FormValue("direction"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > s.maxUpload {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", s.maxUpload))
		return
	}
	input, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	format, err := s.requestFormat(r.FormValue("format"), header.Filename)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := locsheet.NewConverter(append(s.opts[:len(s.opts):len(s.opts)], locsheet.WithTableFormat(format))...)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out, err := conv.Convert(dir, input)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("conversion failed", "direction", dir, "file", header.Filename, "error", err)
		}
		s.writeError(w, status, err.Error())
		return
	}

	contentType, name := literalContentType, literalFileName
	if dir == locsheet.LiteralToTable {
		contentType, name = locsheet.TableContentType(format), tableFileStem+"."+string(format)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	_, _ = w.Write(out)
}

// requestFormat picks the table format: the explicit form value, then the
// upload's extension, then the server default.
func (s *Server) requestFormat(value, filename string) (locsheet.TableFormat, error) {
	if value != "" {
		return locsheet.ParseTableFormat(value)
	}
	if f, ok := locsheet.DetectTableFormat(filename); ok {
		return f, nil
	}
	return s.format, nil
}

// statusFor maps conversion errors caused by the request to 400.
func statusFor(err error) int {
	for _, kind := range []error{
		locsheet.ErrInvalidDirection,
		locsheet.ErrMalformedLiteral,
		locsheet.ErrEmptyTable,
		locsheet.ErrMissingColumns,
		locsheet.ErrEmptySheet,
		locsheet.ErrPathConflict,
		locsheet.ErrInvalidKey,
		locsheet.ErrUnreadableTable,
		locsheet.ErrUnwritableValue,
	} {
		if errors.Is(err, kind) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: msg}); err != nil {
		s.logger.Debug("writing error response", "error", err)
	}
}
