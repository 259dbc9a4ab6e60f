// Package server exposes a session over HTTP.
//
//	GET  /healthz             liveness
//	GET  /state               current snapshot and revision
//	GET  /state/active        active path and leaf
//	GET  /state/scenes/{key}  one scene of the snapshot
//	GET  /frame               rendered frame of the snapshot
//	POST /actions             dispatch an action
//	POST /back                press the host back button
//	POST /press/{side}        press the left or right header button
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/scenetree/internal/session"
	"github.com/matzehuels/scenetree/pkg/errors"
	"github.com/matzehuels/scenetree/pkg/nav"
	"github.com/matzehuels/scenetree/pkg/observability"
	"github.com/matzehuels/scenetree/pkg/render"
	"github.com/matzehuels/scenetree/pkg/router"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server serves one session.
type Server struct {
	sess   *session.Session
	logger *log.Logger
	mux    chi.Router
}

// New creates a Server for sess. A nil logger uses log.Default().
func New(sess *session.Session, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{sess: sess, logger: logger}
	s.mux = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.healthz)
	r.Route("/state", func(r chi.Router) {
		r.Get("/", s.getState)
		r.Get("/active", s.getActive)
		r.Get("/scenes/{key}", s.getScene)
	})
	r.Get("/frame", s.getFrame)
	r.Post("/actions", s.postAction)
	r.Post("/back", s.postBack)
	r.Post("/press/{side}", s.postPress)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("serving", "addr", l.Addr().String(), "session", s.sess.ID())
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Debug("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "listen on %s", addr)
	}
	return s.Serve(ctx, l)
}

// observe reports requests to the HTTP hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"duration", d.Round(time.Microsecond), "id", middleware.GetReqID(r.Context()))
	})
}

type stateResponse struct {
	Session  string    `json:"session"`
	Revision int64     `json:"revision"`
	Root     *nav.Node `json:"root"`
}

type activeResponse struct {
	Revision int64     `json:"revision"`
	Path     []string  `json:"path"`
	Leaf     *nav.Node `json:"leaf"`
}

type backResponse struct {
	Handled  bool  `json:"handled"`
	Revision int64 `json:"revision"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getState(w http.ResponseWriter, _ *http.Request) {
	root, rev := s.sess.State()
	writeJSON(w, http.StatusOK, stateResponse{Session: s.sess.ID(), Revision: rev, Root: root})
}

func (s *Server) getActive(w http.ResponseWriter, _ *http.Request) {
	root, rev := s.sess.State()
	writeJSON(w, http.StatusOK, activeResponse{
		Revision: rev,
		Path:     nav.ActivePath(root).Keys(),
		Leaf:     nav.ActiveLeaf(root),
	})
}

func (s *Server) getScene(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	n := s.sess.Find(key)
	if n == nil {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "scene %q not found", key))
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) getFrame(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.sess.Frame())
}

func (s *Server) postAction(w http.ResponseWriter, r *http.Request) {
	var a router.Action
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode action"))
		return
	}
	if a.Type == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "action type is required"))
		return
	}
	if err := s.sess.Dispatch(a); err != nil {
		s.writeError(w, err)
		return
	}
	s.getState(w, r)
}

func (s *Server) postBack(w http.ResponseWriter, _ *http.Request) {
	handled := s.sess.Back()
	_, rev := s.sess.State()
	writeJSON(w, http.StatusOK, backResponse{Handled: handled, Revision: rev})
}

func (s *Server) postPress(w http.ResponseWriter, r *http.Request) {
	var side render.Side
	switch chi.URLParam(r, "side") {
	case "left":
		side = render.Left
	case "right":
		side = render.Right
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "side must be left or right"))
		return
	}
	if err := s.sess.Press(side); err != nil {
		s.writeError(w, err)
		return
	}
	s.getState(w, r)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(errors.GetCode(err)), Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidAction, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeUnknownScene:
		return http.StatusNotFound
	case errors.ErrCodeAtRoot, errors.ErrCodeInvalidState:
		return http.StatusConflict
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
