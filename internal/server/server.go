// Package server exposes the query service as a JSON HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AduSharma/CrickStatX/internal/filter"
	"github.com/AduSharma/CrickStatX/internal/model"
	"github.com/AduSharma/CrickStatX/internal/ranker"
	"github.com/AduSharma/CrickStatX/internal/service"
)

// Server routes requests to a Service.
type Server struct {
	svc *service.Service
	log io.Writer
}

// New returns a Server over svc. Request lines are written to logw when it
// is non-nil.
func New(svc *service.Service, logw io.Writer) *Server {
	return &Server{svc: svc, log: logw}
}

// Handler returns the routed handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, model.Message{Message: "CrickStatX API is running"})
	})
	mux.HandleFunc("/available-files", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string][]string{"available_files": s.svc.Files()})
	})
	mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.svc.Players())
	})
	mux.HandleFunc("/player-profile", func(w http.ResponseWriter, r *http.Request) {
		name, ok := required(w, r, "player_name")
		if !ok {
			return
		}
		v, err := s.svc.Profile(name)
		respond(w, v, err)
	})
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		name, ok := required(w, r, "player_name")
		if !ok {
			return
		}
		v, err := s.svc.Analyze(name)
		respond(w, v, err)
	})
	mux.HandleFunc("/tags", func(w http.ResponseWriter, r *http.Request) {
		name, ok := required(w, r, "player_name")
		if !ok {
			return
		}
		v, err := s.svc.Tags(name)
		respond(w, v, err)
	})
	mux.HandleFunc("/compare", func(w http.ResponseWriter, r *http.Request) {
		players, ok := required(w, r, "players")
		if !ok {
			return
		}
		v, err := s.svc.Compare(players)
		respond(w, v, err)
	})
	mux.HandleFunc("/top-performers", func(w http.ResponseWriter, r *http.Request) {
		format, ok := required(w, r, "format")
		if !ok {
			return
		}
		role, ok := required(w, r, "role")
		if !ok {
			return
		}
		limit := ranker.DefaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeJSON(w, model.ErrorPayload{Error: "limit must be a positive integer"})
				return
			}
			limit = n
		}
		v, err := s.svc.TopPerformers(format, role, limit)
		respond(w, v, err)
	})
	mux.HandleFunc("/player-filter", func(w http.ResponseWriter, r *http.Request) {
		team, ok := required(w, r, "team")
		if !ok {
			return
		}
		q := r.URL.Query()
		v, err := s.svc.PlayerFilter(filter.Query{
			Team:   team,
			Era:    q.Get("era"),
			Format: q.Get("format"),
			SortBy: q.Get("sort_by"),
		})
		respond(w, v, err)
	})
	return s.logRequests(cors(mux))
}

// ListenAndServe serves the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// respond writes v, or the boundary payload of err.
func respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		writeJSON(w, service.Payload(err))
		return
	}
	writeJSON(w, v)
}

// required reads a non-blank query parameter, answering with an error
// payload when it is absent.
func required(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		writeStatusJSON(w, http.StatusUnprocessableEntity, model.ErrorPayload{Error: fmt.Sprintf("missing query parameter %q", name)})
		return "", false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, v any) {
	writeStatusJSON(w, http.StatusOK, v)
}

func writeStatusJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	if s.log == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		fmt.Fprintf(s.log, "  [http] %s %s %d %s\n", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond))
	})
}
