package relay

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"prpcap/internal/domain"
)

// Server is the in-memory relay handler. State lives for the lifetime of
// the process; durability is explicitly not a relay concern.
type Server struct {
	mu     sync.RWMutex
	epochs map[string]domain.EpochPublic
	queues map[string][]domain.Envelope
}

// NewServer returns an empty relay.
func NewServer() *Server {
	return &Server{
		epochs: make(map[string]domain.EpochPublic),
		queues: make(map[string][]domain.Envelope),
	}
}

// Handler returns the HTTP routes:
//
//	POST /epoch/{name}     register epoch publics
//	GET  /epoch/{name}     fetch epoch publics
//	POST /msg/{name}       queue an envelope
//	GET  /msg/{name}       list pending envelopes (?limit=n)
//	POST /msg/{name}/ack   drop the first n processed envelopes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/epoch/", s.handleEpoch)
	mux.HandleFunc("/msg/", s.handleMsg)
	return mux
}

func (s *Server) handleEpoch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/epoch/")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPost:
		var pub domain.EpochPublic
		if err := json.NewDecoder(r.Body).Decode(&pub); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.epochs[name] = pub
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		s.mu.RLock()
		pub, ok := s.epochs[name]
		s.mu.RUnlock()
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(pub)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleMsg(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/msg/")
	if ack := strings.TrimSuffix(rest, "/ack"); ack != rest {
		s.handleAck(w, r, ack)
		return
	}
	name := rest
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPost:
		var env domain.Envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.queues[name] = append(s.queues[name], env)
		s.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "bad limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		s.mu.RLock()
		envs := s.queues[name]
		if limit > 0 && limit < len(envs) {
			envs = envs[:limit]
		}
		out := append([]domain.Envelope(nil), envs...)
		s.mu.RUnlock()
		_ = json.NewEncoder(w).Encode(out)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAck(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	q := s.queues[name]
	if body.Count > len(q) {
		body.Count = len(q)
	}
	s.queues[name] = q[body.Count:]
	s.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}
