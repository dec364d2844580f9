package httptransport

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/alexanderramin/dutylog/internal/domain"
	"github.com/alexanderramin/dutylog/internal/repository"
	"github.com/alexanderramin/dutylog/internal/service"
	"github.com/alexanderramin/dutylog/internal/testutil"
)

// HandlerSuite runs the HTTP layer against a real service over an in-memory
// database; no mocks.
type HandlerSuite struct {
	suite.Suite
	router   http.Handler
	database *sql.DB
}

func (s *HandlerSuite) SetupTest() {
	s.database = testutil.NewTestDB(s.T())
	entries := repository.NewSQLiteEntryRepo(s.database)
	blacklist := repository.NewSQLiteBlacklistRepo(s.database)
	svc := service.NewDutyService(entries, blacklist, testutil.NewTestUoW(s.database), nil, 100, nil)
	s.router = NewRouter(NewHandler(svc))
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) seed(entries ...domain.LogEntry) {
	repo := repository.NewSQLiteEntryRepo(s.database)
	require.NoError(s.T(), repo.InsertAll(context.Background(), entries))
}

func (s *HandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) post(path string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(s.T(), err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decodeAdmins(rec *httptest.ResponseRecorder) adminsResponse {
	var resp adminsResponse
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

var handlerDay = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func (s *HandlerSuite) TestListAdmins() {
	s.seed(
		testutil.NewDutyEntry("1", "Marko", "L-1", 30, handlerDay),
		testutil.NewDutyEntry("2", "Ana", "L-2", 50, handlerDay),
	)

	rec := s.get("/admins")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	resp := s.decodeAdmins(rec)
	assert.True(s.T(), resp.Success)
	require.Len(s.T(), resp.Admins, 2)
	assert.Equal(s.T(), "Ana", resp.Admins[0].Admin)
	assert.Equal(s.T(), 50, resp.Admins[0].TotalMinutes)
	assert.Equal(s.T(), "L-1", resp.Admins[1].License)
	require.NotNil(s.T(), resp.Admins[1].LastDuty)
	assert.True(s.T(), resp.Admins[1].LastDuty.Equal(handlerDay))
}

func (s *HandlerSuite) TestAddTimeThenRemoveTime() {
	s.seed(testutil.NewDutyEntry("1", "Marko", "L-1", 30, handlerDay))

	rec := s.post("/admins/add-time", map[string]any{"admin": "Marko", "minutes": 20})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.post("/admins/remove-time", map[string]any{"admin": "Marko", "minutes": 10})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	resp := s.decodeAdmins(s.get("/admins"))
	require.Len(s.T(), resp.Admins, 1)
	assert.Equal(s.T(), 40, resp.Admins[0].TotalMinutes)
}

func (s *HandlerSuite) TestAddTime_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/admins/add-time", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestAddTime_MissingFields() {
	rec := s.post("/admins/add-time", map[string]any{"minutes": 10})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	rec = s.post("/admins/add-time", map[string]any{"admin": "Marko"})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(s.T(), resp.Success)
	assert.NotEmpty(s.T(), resp.Error)
}

func (s *HandlerSuite) TestRemoveAdmin() {
	s.seed(
		testutil.NewDutyEntry("1", "Marko", "L-1", 30, handlerDay),
		testutil.NewDutyEntry("2", "Ana", "L-2", 20, handlerDay),
	)

	rec := s.post("/admins/remove-admin", map[string]any{"admin": "Marko"})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var resp purgeResponse
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(s.T(), resp.Success)
	assert.Equal(s.T(), int64(1), resp.Removed)

	admins := s.decodeAdmins(s.get("/admins"))
	require.Len(s.T(), admins.Admins, 1)
	assert.Equal(s.T(), "Ana", admins.Admins[0].Admin)
}

func (s *HandlerSuite) TestBlacklistFlow() {
	s.seed(testutil.NewDutyEntry("1", "Marko", "L-1", 30, handlerDay))

	rec := s.post("/admins/blacklist", map[string]any{"admin": "Marko"})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var bl blacklistResponse
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&bl))
	assert.Equal(s.T(), []string{"Marko"}, bl.Blacklist)

	admins := s.decodeAdmins(s.get("/admins"))
	assert.Empty(s.T(), admins.Admins)

	rec = s.get("/admins/blacklist")
	require.Equal(s.T(), http.StatusOK, rec.Code)
	require.NoError(s.T(), json.NewDecoder(rec.Body).Decode(&bl))
	assert.Equal(s.T(), []string{"Marko"}, bl.Blacklist)

	rec = s.post("/admins/unblacklist", map[string]any{"admin": "Marko"})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	admins = s.decodeAdmins(s.get("/admins"))
	require.Len(s.T(), admins.Admins, 1)
}

func (s *HandlerSuite) TestByDateAndRange() {
	s.seed(
		testutil.NewDutyEntry("1", "B", "L-1", 10, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)),
		testutil.NewDutyEntry("2", "B", "L-1", 20, time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
	)

	resp := s.decodeAdmins(s.get("/admins/bydate/2024-01-01"))
	require.Len(s.T(), resp.Admins, 1)
	assert.Equal(s.T(), 10, resp.Admins[0].TotalMinutes)

	resp = s.decodeAdmins(s.get("/admins/range?from=2024-01-01&to=2024-01-02"))
	require.Len(s.T(), resp.Admins, 1)
	assert.Equal(s.T(), 30, resp.Admins[0].TotalMinutes)
}

func (s *HandlerSuite) TestByDate_Malformed() {
	rec := s.get("/admins/bydate/yesterday")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestRange_MissingBound() {
	rec := s.get("/admins/range?from=2024-01-01")
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestRescan_NoSourceIsServerError() {
	rec := s.post("/rescan", nil)
	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
}

func (s *HandlerSuite) TestHealthz() {
	rec := s.get("/healthz")
	assert.Equal(s.T(), http.StatusOK, rec.Code)
}
