// Package gdntest runs an in-memory stand-in for the GDN REST API.
//
// It implements only the endpoints pkg/gdn calls, stores everything in
// memory and records each request so tests can assert on what was sent.
package gdntest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// Request is a recorded call.
type Request struct {
	Method    string
	Path      string
	Header    http.Header
	Body      []byte
	RequestID string
}

// Server is a fake GDN fabric.
type Server struct {
	*httptest.Server

	APIKey string
	Fabric string

	mu        sync.Mutex
	kv        map[string]map[string]json.RawMessage // collection -> key -> stored pair
	kvConfig  map[string]json.RawMessage
	documents map[string][]json.RawMessage
	colls     map[string]json.RawMessage
	requests  []Request
	failNext  int
	nextKey   int
}

// NewServer starts a fake fabric that accepts apiKey for fabric.
func NewServer(apiKey, fabric string) *Server {
	s := &Server{
		APIKey:    apiKey,
		Fabric:    fabric,
		kv:        make(map[string]map[string]json.RawMessage),
		kvConfig:  make(map[string]json.RawMessage),
		documents: make(map[string][]json.RawMessage),
		colls:     make(map[string]json.RawMessage),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/_fabric/{fabric}/_api").Subrouter()
	api.Use(s.record, s.authenticate)
	api.HandleFunc("/kv/{collection}", s.createKVCollection).Methods(http.MethodPost)
	api.HandleFunc("/kv/{collection}/value", s.setPairs).Methods(http.MethodPut)
	api.HandleFunc("/kv/{collection}/value/{key}", s.getPair).Methods(http.MethodGet)
	api.HandleFunc("/collection", s.createCollection).Methods(http.MethodPost)
	api.HandleFunc("/document/{collection}", s.insertDocument).Methods(http.MethodPost)

	s.Server = httptest.NewServer(r)
	return s
}

// FailNext makes the next request answer with status and a GDN error body.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// KeyValueConfig returns the body a key-value collection was created with.
func (s *Server) KeyValueConfig(collection string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.kvConfig[collection]
	return cfg, ok
}

// Pairs returns the stored pairs of a key-value collection keyed by _key.
func (s *Server) Pairs(collection string) map[string]json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]json.RawMessage, len(s.kv[collection]))
	for k, v := range s.kv[collection] {
		out[k] = v
	}
	return out
}

// Collection returns the body a collection was created with.
func (s *Server) Collection(name string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.colls[name]
	return body, ok
}

// Documents returns the raw bodies inserted into collection, in order.
func (s *Server) Documents(collection string) []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]json.RawMessage, len(s.documents[collection]))
	copy(out, s.documents[collection])
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Header:    r.Header.Clone(),
			Body:      body,
			RequestID: r.Header.Get("X-Request-Id"),
		})
		status := s.failNext
		s.failNext = 0
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, 0, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "apikey "+s.APIKey {
			writeError(w, http.StatusUnauthorized, 0, "unauthorized")
			return
		}
		if mux.Vars(r)["fabric"] != s.Fabric {
			writeError(w, http.StatusNotFound, 1228, "database not found")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) createKVCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	body, ok := readJSON(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.kv[name]; exists {
		writeError(w, http.StatusConflict, 1207, "duplicate name")
		return
	}
	s.kv[name] = make(map[string]json.RawMessage)
	s.kvConfig[name] = body
	writeJSON(w, http.StatusOK, map[string]any{"error": false, "code": 200, "name": name})
}

func (s *Server) setPairs(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	body, ok := readJSON(w, r)
	if !ok {
		return
	}

	var pairs []json.RawMessage
	if err := json.Unmarshal(body, &pairs); err != nil {
		writeError(w, http.StatusBadRequest, 600, "expecting an array of pairs")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	coll, exists := s.kv[name]
	if !exists {
		writeError(w, http.StatusNotFound, 1203, "collection not found: "+name)
		return
	}

	results := make([]map[string]string, 0, len(pairs))
	for _, p := range pairs {
		var key struct {
			Key string `json:"_key"`
		}
		if err := json.Unmarshal(p, &key); err != nil || key.Key == "" {
			writeError(w, http.StatusBadRequest, 1221, "illegal document key")
			return
		}
		coll[key.Key] = p
		results = append(results, map[string]string{"_key": key.Key, "_id": name + "/" + key.Key})
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) getPair(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	coll, exists := s.kv[vars["collection"]]
	if !exists {
		writeError(w, http.StatusNotFound, 1203, "collection not found: "+vars["collection"])
		return
	}
	pair, exists := coll[vars["key"]]
	if !exists {
		writeError(w, http.StatusNotFound, 1202, "document not found")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pair)
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	body, ok := readJSON(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
		Type int    `json:"type"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, 1208, "illegal name")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.colls[req.Name]; exists {
		writeError(w, http.StatusConflict, 1207, "duplicate name")
		return
	}
	s.colls[req.Name] = body
	writeJSON(w, http.StatusOK, map[string]any{
		"id":   strconv.Itoa(len(s.colls)),
		"name": req.Name,
		"type": req.Type,
	})
}

func (s *Server) insertDocument(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["collection"]
	body, ok := readJSON(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.colls[name]; !exists {
		writeError(w, http.StatusNotFound, 1203, "collection not found: "+name)
		return
	}
	s.documents[name] = append(s.documents[name], body)
	s.nextKey++
	key := strconv.Itoa(s.nextKey)
	writeJSON(w, http.StatusAccepted, map[string]string{
		"_id":  fmt.Sprintf("%s/%s", name, key),
		"_key": key,
		"_rev": "_rev" + key,
	})
}

func readJSON(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, 600, "invalid JSON body")
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status, errorNum int, msg string) {
	writeJSON(w, status, map[string]any{
		"error":        true,
		"code":         status,
		"errorNum":     errorNum,
		"errorMessage": msg,
	})
}
