package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
	specio "github.com/matzehuels/facadegen/pkg/io"
	"github.com/matzehuels/facadegen/pkg/pipeline"
	"github.com/matzehuels/facadegen/pkg/resolve"
	"github.com/matzehuels/facadegen/pkg/validate"
)

type validateRequest struct {
	Text string `json:"text"`
}

type validateResponse struct {
	Issues []validate.Issue `json:"issues"`
}

type resolveRequest struct {
	Grammar     string `json:"grammar"`
	Width       int    `json:"width"`
	ModuleWidth int    `json:"module_width,omitempty"`
}

type resolveResponse struct {
	Modules []string `json:"modules"`
}

type stackRequest struct {
	Expression string         `json:"expression"`
	Height     int            `json:"height"`
	Floors     map[string]int `json:"floors,omitempty"`
}

type stackResponse struct {
	Floors []string `json:"floors"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !s.decode(w, r, &req) {
		return
	}

	issues := validate.Validate(req.Text)
	if s.opts.Catalog != nil && len(s.opts.Catalog.Modules) > 0 && !validate.HasErrors(issues) {
		if p, err := grammar.Parse(req.Text); err == nil {
			issues = append(issues, validate.ValidatePattern(p, validate.KnownModules(s.opts.Catalog.ModuleNames()))...)
		}
	}
	if issues == nil {
		issues = []validate.Issue{}
	}
	writeJSON(w, http.StatusOK, validateResponse{Issues: issues})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !s.decode(w, r, &req) {
		return
	}

	f, err := grammar.ParseFacade(strings.TrimSpace(req.Grammar))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if req.ModuleWidth < 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "module_width must be positive, got %d", req.ModuleWidth))
		return
	}

	var sizes resolve.Sizer
	switch {
	case req.ModuleWidth > 0:
		sizes = resolve.Uniform(req.ModuleWidth)
	case s.opts.Catalog != nil:
		sizes = s.opts.Catalog.Widths()
	default:
		sizes = resolve.Uniform(s.opts.ModuleWidth)
	}

	modules, err := resolve.Facade(f, req.Width, sizes,
		resolve.MaxPlacements(s.opts.MaxModules), resolve.WithContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if modules == nil {
		modules = []string{}
	}
	writeJSON(w, http.StatusOK, resolveResponse{Modules: modules})
}

func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	var req stackRequest
	if !s.decode(w, r, &req) {
		return
	}

	var heights resolve.Sizer = resolve.Table(req.Floors)
	if len(req.Floors) == 0 && s.opts.Catalog != nil {
		heights = s.opts.Catalog.Heights()
	}

	floors, err := s.runner.Stack(r.Context(), req.Expression, req.Height, heights)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if floors == nil {
		floors = []string{}
	}
	writeJSON(w, http.StatusOK, stackResponse{Floors: floors})
}

func (s *Server) handleBlueprint(w http.ResponseWriter, r *http.Request) {
	spec, err := specio.ReadSpecJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if spec.DefaultModule == "" {
		spec.DefaultModule = s.opts.DefaultModule
	}
	if spec.Floors > s.opts.MaxModules {
		s.writeError(w, errors.New(errors.ErrCodeInvalidSpec, "floors %d exceeds the limit of %d", spec.Floors, s.opts.MaxModules))
		return
	}

	opts := pipeline.Options{Spec: spec, Refresh: r.URL.Query().Get("refresh") == "true"}
	if spec.ModuleWidth == 0 {
		if s.opts.Catalog != nil {
			opts.Catalog = s.opts.Catalog
		} else {
			opts.Spec.ModuleWidth = s.opts.ModuleWidth
		}
	}

	result, err := s.runner.Build(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if result.CacheHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	writeJSON(w, http.StatusOK, specio.NewDocument(result.Blueprint))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return false
	}
	return true
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeSyntax, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeResolution, errors.ErrCodeUnknownFloor:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
