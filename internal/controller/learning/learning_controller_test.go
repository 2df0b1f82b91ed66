package learning

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/service"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := testutil.NewStore(t)
	gen := service.NewContentGeneratorService(nil)
	sessions := service.NewSessionService(store, repository.NewAttemptRepository(store), repository.NewTopicHistoryRepository(store))

	r := gin.New()
	NewLearningController(
		service.NewLearningService(gen, sessions),
		sessions,
		gen,
		service.NewReminderService(),
	).RegisterRoutes(r.Group("/api"))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLearnThenFetchSession(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/learn", `{"topic":"Operating Systems","confidenceLevel":2,"learningGoal":"Interview Preparation","userId":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var learned dto.LearningResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &learned))
	assert.Contains(t, learned.Data.Explanation, "(Mock Mode)")
	require.NotEmpty(t, learned.AttemptID)

	w = do(r, http.MethodGet, "/api/session/"+learned.AttemptID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotNil(t, session.Session)
	assert.Equal(t, "Operating Systems", session.Session.Topic)

	w = do(r, http.MethodGet, "/api/session/last/u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, learned.AttemptID, session.Session.AttemptID)

	w = do(r, http.MethodGet, "/api/history/u1?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history dto.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history.History, 1)
}

func TestSessionLookups(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/session/last/nobody", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"session":null}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/session/temp_123", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/history/u1?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLearnValidation(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/learn", `{"topic":"MERN"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestChatTimetableAndReminder(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/chat", `{"message":"hi","topic":"MERN","mode":"learn"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var chat dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chat))
	assert.True(t, chat.Success)
	assert.NotEmpty(t, chat.Reply)

	w = do(r, http.MethodPost, "/api/timetable/generate", `{"prompt":"classes 9 to 4"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var tt dto.TimetableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tt))
	assert.Len(t, tt.Timetable.Schedule, 7)

	w = do(r, http.MethodPost, "/api/reminder-trigger", `{"userId":"u1","topic":"MERN","channel":"email"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), service.ReminderTriggeredMessage)
}
