package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"logiflow/internal/data_sync"
	"logiflow/internal/localstore"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSync struct {
	mock.Mock
}

func (m *MockSync) Start(userID, companyID string) { m.Called(userID, companyID) }
func (m *MockSync) Stop(userID string) { m.Called(userID) }

func (m *MockSync) ForceSyncNowService(ctx context.Context, userID, companyID string) (data_sync.PassReport, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).(data_sync.PassReport), args.Error(1)
}

func (m *MockSync) StatusService(userID, companyID string) data_sync.StatusResponse {
	return m.Called(userID, companyID).Get(0).(data_sync.StatusResponse)
}

var owner = Owner{UserID: "u1", CompanyID: "c1"}

func newTestService(t *testing.T, syncer data_sync.InterfaceService) *Service {
	t.Helper()
	store, err := localstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	svc := NewRecordsService(store, syncer)
	fixed := time.Unix(1700000000, 0)
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestSaveActionService(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	first, err := svc.SaveActionService(ctx, owner, "create_order", map[string]any{"order_id": 7})
	require.NoError(t, err)
	second, err := svc.SaveActionService(ctx, owner, "delete_order", nil)
	require.NoError(t, err)

	assert.Equal(t, "user_actions-u1-1700000000000000000", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.JSONEq(t, `{"order_id":7}`, string(first.Details))
	assert.Nil(t, second.Details)

	actions, err := svc.GetActionsService(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, actions, 2)

	_, err = svc.SaveActionService(ctx, owner, "", nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSaveFormService_DefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	form, err := svc.SaveFormService(ctx, owner, SaveFormRequest{FormData: json.RawMessage(`{"a":1}`)})
	require.NoError(t, err)
	assert.Equal(t, localstore.FormStatusDraft, form.Status)
	assert.True(t, strings.HasPrefix(form.ID, "forms-u1-"))

	_, err = svc.SaveFormService(ctx, owner, SaveFormRequest{FormData: json.RawMessage(`{bad`)})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	forms, err := svc.GetFormsService(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, forms, 1)

	others, err := svc.GetFormsService(ctx, Owner{UserID: "u2", CompanyID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestSaveOrderService(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	order, err := svc.SaveOrderService(ctx, owner, SaveOrderRequest{OrderNumber: "PED-1", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "PED-1", order.OrderNumber)

	_, err = svc.SaveOrderService(ctx, owner, SaveOrderRequest{OrderNumber: "PED-2"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	orders, err := svc.GetOrdersService(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestForceSyncDelegates(t *testing.T) {
	ctx := context.Background()
	syncer := new(MockSync)
	syncer.On("ForceSyncNowService", ctx, "u1", "c1").Return(data_sync.PassReport{UserID: "u1"}, nil)
	syncer.On("StatusService", "u1", "c1").Return(data_sync.StatusResponse{Running: true})

	svc := newTestService(t, syncer)
	report, err := svc.ForceSyncService(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "u1", report.UserID)
	assert.True(t, svc.SyncStatusService(owner).Running)
	syncer.AssertExpectations(t)
}

func TestForceSyncHandler_Conflict(t *testing.T) {
	syncer := new(MockSync)
	syncer.On("ForceSyncNowService", mock.Anything, mock.Anything, mock.Anything).
		Return(data_sync.PassReport{}, data_sync.ErrSyncInProgress)

	h := NewRecordsHandler(newTestService(t, syncer))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/sync/force", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token_user_id", uuid.New())
	c.Set("token_company_id", uuid.New())

	require.NoError(t, h.ForceSyncHandler(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveActionHandler_Validation(t *testing.T) {
	h := NewRecordsHandler(newTestService(t, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/records/actions", strings.NewReader(`{"details":{}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SaveActionHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncStatusHandler_ScopedToCaller(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	syncer := new(MockSync)
	syncer.On("StatusService", userID.String(), companyID.String()).
		Return(data_sync.StatusResponse{UserID: userID.String(), CompanyID: companyID.String(), Running: true}).Once()

	h := NewRecordsHandler(newTestService(t, syncer))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token_user_id", userID)
	c.Set("token_company_id", companyID)

	require.NoError(t, h.SyncStatusHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body data_sync.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body.UserID)
	assert.True(t, body.Running)
	syncer.AssertExpectations(t)
}
