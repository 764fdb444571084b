package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/badgegen/pkg/badges"
	"github.com/matzehuels/badgegen/pkg/buildinfo"
	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/observability"
	"github.com/matzehuels/badgegen/pkg/repo"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// HealthResponse is the body of GET /v1/health.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Error     string      `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleDependency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.render(w, r, badges.KindDependency, func() (string, error) {
		reg, err := shields.ParseRegistry(q.Get("registry"))
		if err != nil {
			return "", err
		}
		return badges.Dependency(q.Get("name"), reg, appearanceFromQuery(q))
	})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.render(w, r, badges.KindNode, func() (string, error) {
		pkg := chi.URLParam(r, "pkg")
		if p := q.Get("pkg"); p != "" {
			pkg = p
		}
		env, err := shields.ParseEnvironment(q.Get("env"))
		if err != nil {
			return "", err
		}
		rp := repo.Repo{Owner: chi.URLParam(r, "owner"), Name: chi.URLParam(r, "repo")}
		return badges.NodeVersion(rp, pkg, appearanceFromQuery(q), env)
	})
}

func (s *Server) handleGo(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, badges.KindGo, func() (string, error) {
		return badges.GoVersion(chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
	})
}

// render runs fn, reports it to the badge hooks and writes either the
// markdown or the error.
func (s *Server) render(w http.ResponseWriter, r *http.Request, kind badges.Kind, fn func() (string, error)) {
	start := time.Now()
	out, err := fn()
	observability.Badges().OnBadgeRendered(r.Context(), string(kind), time.Since(start), err)

	if err != nil {
		s.logger.Debug("badge rejected", "kind", kind, "err", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", MarkdownContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

func appearanceFromQuery(q url.Values) shields.LogoAppearance {
	return shields.LogoAppearance{
		Logo:      q.Get(shields.ParamLogo),
		LogoColor: q.Get(shields.ParamLogoColor),
	}
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch {
	case code.IsInvalid():
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), ErrorResponse{
		Code:      code,
		Error:     errors.UserMessage(err),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
