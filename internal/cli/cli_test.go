package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/gaas-console/internal/cli"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type fakeAPI struct {
	mu        sync.Mutex
	graphs    map[string]string
	lastAuth  string
	lastLogin map[string]string
	token     string
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	api := &fakeAPI{graphs: map[string]string{}, token: tok}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /graphs", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		api.mu.Lock()
		defer api.mu.Unlock()
		api.lastAuth = r.Header.Get("Authorization")
		if _, ok := api.graphs[body["graphId"]]; ok {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Graph already exists"})
			return
		}
		api.graphs[body["graphId"]] = body["description"]
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /graphs", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		out := []map[string]string{}
		for id, d := range api.graphs {
			out = append(out, map[string]string{"graphId": id, "description": d})
		}
		_ = json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("GET /graphs/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		d, ok := api.graphs[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"graphId": r.PathValue("id"), "description": d})
	})
	mux.HandleFunc("DELETE /graphs/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		delete(api.graphs, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /namespaces", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["kai-dev","default"]`))
	})
	mux.HandleFunc("POST /auth", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		api.mu.Lock()
		api.lastLogin = body
		api.mu.Unlock()
		if body["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid Credentials"})
			return
		}
		_, _ = w.Write([]byte(api.token))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api, srv.URL
}

func (a *fakeAPI) graph(id string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.graphs[id]
	return d, ok
}

func (a *fakeAPI) put(id, description string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.graphs[id] = description
}

func (a *fakeAPI) auth() (string, map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAuth, a.lastLogin
}

func run(t *testing.T, apiURL, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--api-url", apiURL, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// ── graphs ────────────────────────────────────────────────────────────────────

func TestGraphsCreate(t *testing.T) {
	api, url := newFakeAPI(t)

	out, err := run(t, url, "", "graphs", "create", "graph1", "-d", "test graph", "--store-type", "accumulo")
	require.NoError(t, err)
	assert.Equal(t, "Created graph graph1 (accumulo)\n", out)
	d, _ := api.graph("graph1")
	assert.Equal(t, "test graph", d)
}

func TestGraphsCreate_InvalidIDNeverReachesAPI(t *testing.T) {
	api, url := newFakeAPI(t)

	_, err := run(t, url, "", "graphs", "create", "Graph-1", "-d", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Graph can contain only digits,lowercase letters or _")
	_, ok := api.graph("Graph-1")
	assert.False(t, ok)
}

func TestGraphsCreate_UnknownStoreType(t *testing.T) {
	_, url := newFakeAPI(t)

	_, err := run(t, url, "", "graphs", "create", "g", "-d", "test", "-s", "hbase")
	require.Error(t, err)
}

func TestGraphsCreate_ConflictSurfacesAPIMessage(t *testing.T) {
	api, url := newFakeAPI(t)
	api.put("graph1", "existing")

	_, err := run(t, url, "", "graphs", "create", "graph1", "-d", "again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Graph already exists")
}

func TestGraphsCreate_SendsToken(t *testing.T) {
	api, url := newFakeAPI(t)

	_, err := run(t, url, "", "--api-token", "abc", "graphs", "create", "g", "-d", "d")
	require.NoError(t, err)
	gotAuth, _ := api.auth()
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestGraphsGet_JSON(t *testing.T) {
	api, url := newFakeAPI(t)
	api.put("graph1", "desc")

	out, err := run(t, url, "", "--json", "graphs", "get", "graph1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"graphId":"graph1","description":"desc"}`, out)
}

func TestGraphsGet_NotFound(t *testing.T) {
	_, url := newFakeAPI(t)

	_, err := run(t, url, "", "graphs", "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGraphsList_Table(t *testing.T) {
	api, url := newFakeAPI(t)
	api.put("alpha", "first graph")

	out, err := run(t, url, "", "graphs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "GRAPH ID")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "first graph")
}

func TestGraphsList_Empty(t *testing.T) {
	_, url := newFakeAPI(t)

	out, err := run(t, url, "", "graphs", "list")
	require.NoError(t, err)
	assert.Equal(t, "No graphs found\n", out)

	out, err = run(t, url, "", "--json", "graphs", "list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestGraphsDelete(t *testing.T) {
	api, url := newFakeAPI(t)
	api.put("graph1", "desc")

	out, err := run(t, url, "", "graphs", "delete", "graph1")
	require.NoError(t, err)
	assert.Equal(t, "Deleted graph graph1\n", out)
	_, ok := api.graph("graph1")
	assert.False(t, ok)
}

// ── namespaces ────────────────────────────────────────────────────────────────

func TestNamespacesList(t *testing.T) {
	_, url := newFakeAPI(t)

	out, err := run(t, url, "", "namespaces", "list")
	require.NoError(t, err)
	assert.Equal(t, "kai-dev\ndefault\n", out)
}

// ── login ─────────────────────────────────────────────────────────────────────

func TestLogin_PasswordFromStdin(t *testing.T) {
	api, url := newFakeAPI(t)

	out, err := run(t, url, "hunter2\n", "login", "-u", "alice")
	require.NoError(t, err)
	_, login := api.auth()
	assert.Equal(t, map[string]string{"username": "alice", "password": "hunter2"}, login)
	assert.Contains(t, out, "# expires 2030-01-01T00:00:00Z")
	assert.Contains(t, out, "export GAAS_API_TOKEN="+api.token)
}

func TestLogin_JSON(t *testing.T) {
	api, url := newFakeAPI(t)

	out, err := run(t, url, "", "--json", "login", "-u", "alice", "-p", "hunter2")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, api.token, got["token"])
	assert.Equal(t, "alice", got["subject"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, url := newFakeAPI(t)

	_, err := run(t, url, "", "login", "-u", "alice", "-p", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Credentials")
}

func TestLogin_MissingPassword(t *testing.T) {
	_, url := newFakeAPI(t)

	_, err := run(t, url, "", "login", "-u", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "not a url", "", "namespaces", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
