package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/imamik/tfscaffold/internal/archive"
	"github.com/imamik/tfscaffold/internal/config"
	"github.com/imamik/tfscaffold/internal/terraform"
	"github.com/imamik/tfscaffold/internal/util/naming"
)

func (s *Server) handleEnvironments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	set, ok := s.generate(w, r, opGenerate)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: set})
	s.metrics.observe(opGenerate, resultSuccess, time.Since(start).Seconds())
	s.log.V(1).Info("Returned generated project",
		"environment", set.Name(),
		"main_tf", len(set.Content(terraform.KindMain)),
		"vpc_tf", len(set.Content(terraform.KindNetwork)))
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	set, ok := s.generate(w, r, opDownload)
	if !ok {
		return
	}

	data, err := archive.Pack(set)
	if err != nil {
		s.log.Error(err, "Failed to package project", "environment", set.Name())
		writeFailure(w, http.StatusInternalServerError, msgInternalError, nil)
		s.metrics.observe(opDownload, resultServerError, time.Since(start).Seconds())
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": naming.ArchiveFile(set.Name()),
	})
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.Error(err, "Failed to write archive", "environment", set.Name())
	}

	s.metrics.observe(opDownload, resultSuccess, time.Since(start).Seconds())
	s.metrics.archiveBytes.Observe(float64(len(data)))
}

// generate decodes the request and renders its project. On failure the
// response has been written and ok is false.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, op string) (*terraform.ArtifactSet, bool) {
	start := time.Now()
	fail := func(status int, message string, details []string, result string) {
		writeFailure(w, status, message, details)
		s.metrics.observe(op, result, time.Since(start).Seconds())
	}

	spec, err := s.decodeSpec(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.log.Info("Request body too large", "operation", op, "limit", tooLarge.Limit)
			fail(http.StatusRequestEntityTooLarge, msgBodyTooLarge, nil, resultInvalid)
			return nil, false
		}
		s.log.Info("Invalid JSON received", "operation", op, "error", err.Error())
		fail(http.StatusBadRequest, msgInvalidJSON, nil, resultInvalid)
		return nil, false
	}

	if spec != nil {
		s.log.Info("Received generate request", "operation", op, "name", spec.Name, "region", spec.Region)
	}

	set, err := s.generator.Generate(r.Context(), spec)
	if err == nil {
		return set, true
	}

	var validationErr *config.ValidationError
	var renderErr *terraform.RenderError
	switch {
	case errors.As(err, &validationErr):
		s.log.Info("Validation failed", "operation", op, "errors", validationErr.Errors)
		fail(http.StatusBadRequest, strings.Join(validationErr.Errors, "; "), validationErr.Errors, resultInvalid)
	case errors.Is(err, config.ErrInvalidCIDR), errors.Is(err, config.ErrCapacityExceeded):
		s.log.Info("Network range rejected", "operation", op, "error", err.Error())
		fail(http.StatusBadRequest, err.Error(), []string{err.Error()}, resultInvalid)
	case errors.As(err, &renderErr):
		s.log.Error(err, "Failed to render project", "operation", op, "kind", renderErr.Kind)
		fail(http.StatusInternalServerError, msgInternalError, nil, resultServerError)
	default:
		s.log.Error(err, "Unexpected error", "operation", op)
		fail(http.StatusInternalServerError, msgInternalError, nil, resultServerError)
	}
	return nil, false
}

// decodeSpec reads the request body. A JSON null body yields a nil spec.
func (s *Server) decodeSpec(w http.ResponseWriter, r *http.Request) (*config.EnvironmentSpec, error) {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer func() { _ = body.Close() }()

	var spec *config.EnvironmentSpec
	if err := json.NewDecoder(body).Decode(&spec); err != nil {
		return nil, err
	}
	return spec, nil
}
