package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/rehab/internal/api"
	errorvalues "github.com/limbo/rehab/internal/error_values"
	"github.com/limbo/rehab/internal/recovery"
	"github.com/limbo/rehab/internal/service"
	"github.com/limbo/rehab/internal/service/mocks"
	"github.com/limbo/rehab/pkg/entity"
	jwtservice "github.com/limbo/rehab/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	secret   = "secret"
	playerID = uuid.New()
	injury   = entity.ActiveInjury{
		ID:                    42,
		PlayerID:              playerID,
		InjuryLibraryID:       5,
		BodyArea:              "Knee",
		InjuryType:            "ACL Sprain (Minor)",
		StartDate:             time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Status:                entity.InjuryStatusActive,
		EstimatedRecoveryDays: 28,
	}
)

type testEnv struct {
	serv      *api.Server
	injuries  *mocks.MockInjuryServiceI
	homework  *mocks.MockHomeworkServiceI
	protocol  *ProtocolServiceMock
	authToken string
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	jwtService := jwtservice.New(secret)
	token, err := jwtService.GenerateToken(playerID)
	require.NoError(t, err)
	env := &testEnv{
		injuries:  mocks.NewMockInjuryServiceI(ctrl),
		homework:  mocks.NewMockHomeworkServiceI(ctrl),
		protocol:  &ProtocolServiceMock{},
		authToken: token,
	}
	env.serv = api.New(&api.ServicesList{
		InjuryService:   env.injuries,
		HomeworkService: env.homework,
		ProtocolService: env.protocol,
		JwtService:      jwtService,
	})
	return env
}

func (env *testEnv) do(method, path string, body io.Reader) *http.Response {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+env.authToken)
	env.serv.ServeHTTP(rr, req)
	return rr.Result()
}

// ProtocolServiceMock answers with whatever the test stored in it.
type ProtocolServiceMock struct {
	view      *entity.ProtocolView
	result    *entity.CompletionResult
	resolved  *entity.ActiveInjury
	err       error
	confirmed bool
}

func (pm *ProtocolServiceMock) Today(ctx context.Context, playerID uuid.UUID) (*entity.ProtocolView, error) {
	return pm.view, pm.err
}

func (pm *ProtocolServiceMock) Complete(ctx context.Context, playerID uuid.UUID, taskID string) (*entity.CompletionResult, error) {
	return pm.result, pm.err
}

func (pm *ProtocolServiceMock) Resolve(ctx context.Context, playerID uuid.UUID, confirm recovery.Confirmer) (*entity.ActiveInjury, error) {
	if pm.err != nil {
		return nil, pm.err
	}
	pm.confirmed = confirm(pm.resolved)
	if !pm.confirmed {
		return nil, errorvalues.ErrResolutionNotConfirmed
	}
	return pm.resolved, nil
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/v1/injuries/current/" + playerID.String()

	t.Run("successful auth", func(t *testing.T) {
		env.injuries.EXPECT().CurrentInjury(gomock.Any(), playerID).Return(&injury, nil)
		resp := env.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		env.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("foreign token", func(t *testing.T) {
		token, err := jwtservice.New("other").GenerateToken(playerID)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		env.serv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("another player's data", func(t *testing.T) {
		resp := env.do(http.MethodGet, "/api/v1/injuries/current/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
	t.Run("malformed player id", func(t *testing.T) {
		resp := env.do(http.MethodGet, "/api/v1/injuries/current/p-1", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestInjuriesByArea(t *testing.T) {
	env := newTestEnv(t)
	testCases := []struct {
		Desc         string
		ExpectedCode int
		ExpectedLen  int
		MockPrepFunc func()
	}{
		{
			Desc:         "found",
			ExpectedCode: http.StatusOK,
			ExpectedLen:  1,
			MockPrepFunc: func() {
				env.injuries.EXPECT().InjuriesByArea(gomock.Any(), "Knee").
					Return([]entity.InjuryCatalogEntry{{ID: 5, BodyArea: "Knee"}}, nil)
			},
		},
		{
			Desc:         "empty catalog",
			ExpectedCode: http.StatusOK,
			ExpectedLen:  0,
			MockPrepFunc: func() {
				env.injuries.EXPECT().InjuriesByArea(gomock.Any(), "Knee").Return(nil, nil)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.injuries.EXPECT().InjuriesByArea(gomock.Any(), "Knee").Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			resp := env.do(http.MethodGet, "/api/v1/injuries/library/Knee", nil)
			assert.Equal(t, tc.ExpectedCode, resp.StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var entries []entity.InjuryCatalogEntry
				require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&entries))
				assert.NotNil(t, entries)
				assert.Len(t, entries, tc.ExpectedLen)
			}
		})
	}
}

func TestCurrentInjury(t *testing.T) {
	env := newTestEnv(t)
	path := "/api/v1/injuries/current/" + playerID.String()

	env.injuries.EXPECT().CurrentInjury(gomock.Any(), playerID).Return(nil, nil)
	resp := env.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	env.injuries.EXPECT().CurrentInjury(gomock.Any(), playerID).Return(nil, errors.New("service error"))
	resp = env.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAssignInjury(t *testing.T) {
	env := newTestEnv(t)
	req := api.AssignInjuryRequest{
		PlayerID:        playerID.String(),
		InjuryLibraryID: 5,
	}
	body, err := sonic.ConfigDefault.Marshal(req)
	require.NoError(t, err)
	expected := &service.AssignInjuryRequest{PlayerID: req.PlayerID, InjuryLibraryID: 5}
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				env.injuries.EXPECT().Assign(gomock.Any(), expected).Return(&injury, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "conflict",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				env.injuries.EXPECT().Assign(gomock.Any(), expected).Return(nil, errorvalues.ErrActivationConflict)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "unknown catalog entry",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.injuries.EXPECT().Assign(gomock.Any(), expected).Return(nil, errorvalues.ErrCatalogEntryNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.injuries.EXPECT().Assign(gomock.Any(), expected).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				env.injuries.EXPECT().Assign(gomock.Any(), expected).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			resp := env.do(http.MethodPost, "/api/v1/injuries/assign", tc.Body)
			assert.Equal(t, tc.ExpectedCode, resp.StatusCode)
		})
	}
}

func TestResolveInjury(t *testing.T) {
	env := newTestEnv(t)
	resolved := injury
	resolved.Status = entity.InjuryStatusResolved

	env.injuries.EXPECT().ResolveInjury(gomock.Any(), int64(42)).Return(&resolved, nil)
	resp := env.do(http.MethodPost, "/api/v1/injuries/resolve/42", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got entity.ActiveInjury
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, entity.InjuryStatusResolved, got.Status)

	env.injuries.EXPECT().ResolveInjury(gomock.Any(), int64(43)).Return(nil, errorvalues.ErrInjuryNotFound)
	resp = env.do(http.MethodPost, "/api/v1/injuries/resolve/43", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(http.MethodPost, "/api/v1/injuries/resolve/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProgress(t *testing.T) {
	env := newTestEnv(t)
	testCases := []struct {
		Desc         string
		Query        string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "updated",
			Query:        "?percent=60",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				env.injuries.EXPECT().UpdateProgress(gomock.Any(), int64(42), &service.ProgressRequest{Percent: 60}).Return(&injury, nil)
			},
		},
		{
			Desc:         "out of range",
			Query:        "?percent=160",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				env.injuries.EXPECT().UpdateProgress(gomock.Any(), int64(42), &service.ProgressRequest{Percent: 160}).
					Return(nil, errorvalues.ErrInvalidProgress)
			},
		},
		{
			Desc:         "not a number",
			Query:        "?percent=lots",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "not found",
			Query:        "?percent=10",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				env.injuries.EXPECT().UpdateProgress(gomock.Any(), int64(42), &service.ProgressRequest{Percent: 10}).
					Return(nil, errorvalues.ErrInjuryNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			resp := env.do(http.MethodPost, "/api/v1/injuries/progress/42"+tc.Query, nil)
			assert.Equal(t, tc.ExpectedCode, resp.StatusCode)
		})
	}
}

func TestActiveInjuries(t *testing.T) {
	env := newTestEnv(t)
	env.injuries.EXPECT().ListActive(gomock.Any()).Return([]*entity.ActiveInjury{&injury}, nil)
	resp := env.do(http.MethodGet, "/api/v1/injuries/active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []entity.ActiveInjury
	require.NoError(t, sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 1)
}
