package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swipe_server/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Data   json.RawMessage        `json:"data"`
	Meta   map[string]interface{} `json:"meta"`
	Errors []models.ErrorDetail   `json:"errors"`
}

type testServer struct {
	app     *App
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	app := NewApp(zap.NewNop())
	return &testServer{app: app, handler: app.Handler([]string{"*"}, zap.NewNop())}
}

func (s *testServer) do(t *testing.T, method, target string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *testServer) createUser(t *testing.T, name, zone string) models.UserProfile {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/users", map[string]interface{}{
		"name": name, "age": 25, "gender": "other", "zone_id": zone,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &p))
	return p
}

func (s *testServer) swipe(t *testing.T, swiper, swiped uuid.UUID, action string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return s.do(t, http.MethodPost, "/swipe", map[string]string{
		"swiper_id": swiper.String(), "swiped_id": swiped.String(), "action": action,
	})
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var root map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))
	assert.Equal(t, "ok", root["status"])
	assert.Equal(t, models.ServiceName, root["service"])

	w, _ = s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsersAPI(t *testing.T) {
	s := newTestServer(t)

	t.Run("create and get", func(t *testing.T) {
		created := s.createUser(t, "Alice", "NYC")
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "NYC", created.ZoneID)

		w, env := s.do(t, http.MethodGet, "/users/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got models.UserProfile
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("trailing slash", func(t *testing.T) {
		w, _ := s.do(t, http.MethodPost, "/users/", map[string]interface{}{
			"name": "Bob", "age": 28, "gender": "m", "zone_id": "NYC",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w, env := s.do(t, http.MethodGet, "/users/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, models.ErrorCodeNotFound, env.Errors[0].Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w, _ := s.do(t, http.MethodGet, "/users/not-a-uuid", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w, env := s.do(t, http.MethodPost, "/users", map[string]interface{}{"name": "X"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		fields := map[string]bool{}
		for _, e := range env.Errors {
			fields[e.Field] = true
		}
		assert.True(t, fields["age"])
		assert.True(t, fields["gender"])
		assert.True(t, fields["zone_id"])
	})

	t.Run("non-positive age", func(t *testing.T) {
		w, _ := s.do(t, http.MethodPost, "/users", map[string]interface{}{
			"name": "X", "age": -1, "gender": "x", "zone_id": "Z",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("wrong type", func(t *testing.T) {
		w, env := s.do(t, http.MethodPost, "/users", `{"name":"X","age":"old","gender":"x","zone_id":"Z"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotEmpty(t, env.Errors)
		assert.Equal(t, "age", env.Errors[0].Field)
	})

	t.Run("blank strings", func(t *testing.T) {
		w, env := s.do(t, http.MethodPost, "/users", map[string]interface{}{
			"name": "  ", "age": 20, "gender": "x", "zone_id": "Z",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "name", env.Errors[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		w, env := s.do(t, http.MethodPost, "/users", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, models.ErrorCodeInvalidBody, env.Errors[0].Code)
	})
}

func TestFeedAPI(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "Alice", "NYC")
	bob := s.createUser(t, "Bob", "NYC")
	s.createUser(t, "Diana", "LDN")

	w, env := s.do(t, http.MethodGet, "/feed?user_id="+alice.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []models.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, bob.ID, feed[0].ID)
	assert.EqualValues(t, 1, env.Meta["count"])

	w, _ = s.do(t, http.MethodGet, "/feed?user_id="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/feed", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSwipeAndMatchesAPI(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "Alice", "NYC")
	bob := s.createUser(t, "Bob", "NYC")

	w, env := s.swipe(t, bob.ID, alice.ID, "LIKE")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"is_match":false}`, string(env.Data))

	w, env = s.swipe(t, alice.ID, bob.ID, "LIKE")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"is_match":true}`, string(env.Data))

	for _, user := range []models.UserProfile{alice, bob} {
		w, env = s.do(t, http.MethodGet, "/matches?user_id="+user.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var matches []models.Match
		require.NoError(t, json.Unmarshal(env.Data, &matches))
		require.Len(t, matches, 1)
		assert.True(t, matches[0].HasUser(alice.ID))
		assert.True(t, matches[0].HasUser(bob.ID))
		assert.EqualValues(t, 1, env.Meta["count"])
	}

	w, env = s.do(t, http.MethodGet, "/feed?user_id="+alice.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	w, _ = s.do(t, http.MethodGet, "/matches?user_id="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewLikesAPI(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "Alice", "NYC")
	bob := s.createUser(t, "Bob", "NYC")

	w, _ := s.swipe(t, bob.ID, alice.ID, "LIKE")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodGet, "/likes?user_id="+alice.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var likes []models.UserProfile
	require.NoError(t, json.Unmarshal(env.Data, &likes))
	require.Len(t, likes, 1)
	assert.Equal(t, bob.ID, likes[0].ID)

	w, _ = s.swipe(t, alice.ID, bob.ID, "LIKE")
	require.Equal(t, http.StatusCreated, w.Code)
	w, env = s.do(t, http.MethodGet, "/likes?user_id="+alice.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, env.Meta["count"])

	w, _ = s.do(t, http.MethodGet, "/likes?user_id=bad", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSwipeAPIErrors(t *testing.T) {
	s := newTestServer(t)
	alice := s.createUser(t, "Alice", "NYC")
	bob := s.createUser(t, "Bob", "NYC")

	tests := []struct {
		name   string
		swiper uuid.UUID
		swiped uuid.UUID
		action string
		status int
		code   string
	}{
		{"pass", alice.ID, bob.ID, "PASS", http.StatusCreated, ""},
		{"self", alice.ID, alice.ID, "LIKE", http.StatusBadRequest, models.ErrorCodeInvalidSelfReference},
		{"unknown swiped", alice.ID, uuid.New(), "LIKE", http.StatusBadRequest, models.ErrorCodeInvalidReference},
		{"invalid action", alice.ID, bob.ID, "INVALID", http.StatusUnprocessableEntity, models.ErrorCodeInvalidAction},
		{"missing action", alice.ID, bob.ID, "", http.StatusUnprocessableEntity, models.ErrorCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.swipe(t, tt.swiper, tt.swiped, tt.action)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code != "" {
				require.NotEmpty(t, env.Errors)
				assert.Equal(t, tt.code, env.Errors[0].Code)
			}
		})
	}

	w, env := s.do(t, http.MethodPost, "/swipe", map[string]string{
		"swiper_id": strings.ToUpper(bob.ID.String()),
		"swiped_id": strings.ToUpper(alice.ID.String()),
		"action":    "LIKE",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"is_match":false}`, string(env.Data))

	w, _ = s.do(t, http.MethodPost, "/swipe", map[string]string{
		"swiper_id": "nope", "swiped_id": bob.ID.String(), "action": "LIKE",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Len(t, s.app.Ledger.TargetsSeenBy(alice.ID), 1, "only the PASS was recorded")
	assert.Len(t, s.app.Ledger.TargetsSeenBy(bob.ID), 1)
	assert.Zero(t, s.app.Registry.Count())
}

func TestUnknownRouteAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, env.Errors, 1)

	s.createUser(t, "Alice", "NYC")
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swipe_server_profiles_created_total")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/swipe", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"port", "allowed-origins", "log-level", "dev", "seed-file", "shutdown-timeout"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
