// Package remotetest runs an in-memory stand-in for the system of
// record. It speaks the same wire contract as the real authority and is
// scriptable per collection: seed records, force failures, withhold the
// proposed id and assign a canonical one instead.
package remotetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

type failure struct {
	status int
	body   string
}

// Authority is one fake system of record. All exported methods are safe
// for concurrent use; handlers and tests share the same mutex.
type Authority struct {
	srv *httptest.Server

	mu        sync.Mutex
	data      map[string][]map[string]interface{}
	failures  map[string]failure
	assignIDs map[string]string
	holds     map[string]chan struct{}
	requests  []string
	lastAuth  string
	login     map[string]interface{}
	loginErr  *failure
}

func Start(t *testing.T) *Authority {
	t.Helper()

	a := &Authority{
		data:      make(map[string][]map[string]interface{}),
		failures:  make(map[string]failure),
		assignIDs: make(map[string]string),
		holds:     make(map[string]chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", a.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/change-password", a.handleChangePassword).Methods(http.MethodPost)
	r.HandleFunc("/{collection}", a.handleList).Methods(http.MethodGet)
	r.HandleFunc("/{collection}", a.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/{collection}/{id}", a.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/{collection}/{id}", a.handleDelete).Methods(http.MethodDelete)

	a.srv = httptest.NewServer(r)
	t.Cleanup(a.srv.Close)
	return a
}

func (a *Authority) URL() string { return a.srv.URL }

// Seed installs records for a collection, replacing anything there.
func (a *Authority) Seed(collection string, records ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.data[collection] = nil
	for _, record := range records {
		a.data[collection] = append(a.data[collection], toMap(record))
	}
}

// FailWith makes every request against a collection answer with the
// given status and body text.
func (a *Authority) FailWith(collection string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[collection] = failure{status: status, body: body}
}

// AssignID makes the next create against a collection ignore the
// proposed id and stamp this one instead.
func (a *Authority) AssignID(collection, id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.assignIDs[collection] = id
}

// Hold makes the next request against a collection block until the
// returned release function is called. Only one request is held; later
// requests to the same collection pass through.
func (a *Authority) Hold(collection string) (release func()) {
	ch := make(chan struct{})
	a.mu.Lock()
	a.holds[collection] = ch
	a.mu.Unlock()
	return func() { close(ch) }
}

// RespondToLogin scripts the body of POST /auth/login.
func (a *Authority) RespondToLogin(body map[string]interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.login = body
	a.loginErr = nil
}

// RejectLogin makes POST /auth/login answer 401 with the given message.
func (a *Authority) RejectLogin(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loginErr = &failure{status: http.StatusUnauthorized, body: message}
}

// Requests returns every request seen so far as "METHOD /path".
func (a *Authority) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

// LastAuthorization returns the Authorization header of the most recent
// request.
func (a *Authority) LastAuthorization() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAuth
}

// Records returns the current contents of a collection.
func (a *Authority) Records(collection string) []map[string]interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]map[string]interface{}(nil), a.data[collection]...)
}

func (a *Authority) observe(r *http.Request) {
	a.requests = append(a.requests, r.Method+" "+r.URL.Path)
	a.lastAuth = r.Header.Get("Authorization")
}

// admit records the request, then parks it while a hold is pending on
// the collection. A held request consumes its hold, so only one blocks.
func (a *Authority) admit(r *http.Request, collection string) {
	a.mu.Lock()
	a.observe(r)
	hold := a.holds[collection]
	if hold != nil {
		delete(a.holds, collection)
	}
	a.mu.Unlock()

	if hold != nil {
		<-hold
	}
}

func (a *Authority) handleLogin(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observe(r)

	if a.loginErr != nil {
		http.Error(w, a.loginErr.body, a.loginErr.status)
		return
	}
	writeJSON(w, http.StatusOK, a.login)
}

func (a *Authority) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observe(r)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Authority) handleList(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]
	a.admit(r, collection)

	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.failures[collection]; ok {
		http.Error(w, f.body, f.status)
		return
	}

	records := a.data[collection]
	if records == nil {
		records = []map[string]interface{}{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (a *Authority) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]
	a.admit(r, collection)

	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.failures[collection]; ok {
		http.Error(w, f.body, f.status)
		return
	}

	var record map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if id, ok := a.assignIDs[collection]; ok {
		record["id"] = id
		delete(a.assignIDs, collection)
	}

	a.data[collection] = append(a.data[collection], record)
	writeJSON(w, http.StatusCreated, record)
}

func (a *Authority) handleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection := vars["collection"]
	a.admit(r, collection)

	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.failures[collection]; ok {
		http.Error(w, f.body, f.status)
		return
	}

	var record map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, existing := range a.data[collection] {
		if existing["id"] == vars["id"] {
			a.data[collection][i] = record
			writeJSON(w, http.StatusOK, record)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (a *Authority) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection := vars["collection"]
	a.admit(r, collection)

	a.mu.Lock()
	defer a.mu.Unlock()
	if f, ok := a.failures[collection]; ok {
		http.Error(w, f.body, f.status)
		return
	}

	kept := a.data[collection][:0]
	for _, existing := range a.data[collection] {
		if existing["id"] != vars["id"] {
			kept = append(kept, existing)
		}
	}
	a.data[collection] = kept
	w.WriteHeader(http.StatusNoContent)
}

func toMap(record interface{}) map[string]interface{} {
	payload, err := json.Marshal(record)
	if err != nil {
		panic(err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(payload, &out); err != nil {
		panic(err)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
