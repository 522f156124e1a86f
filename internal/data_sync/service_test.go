package data_sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"logiflow/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) UpsertUserAction(ctx context.Context, arg localstore.UserAction) error {
	return m.Called(ctx, arg).Error(0)
}

func (m *MockRemote) ListUserActions(ctx context.Context, userID, companyID string) ([]localstore.UserAction, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).([]localstore.UserAction), args.Error(1)
}

func (m *MockRemote) UpsertForm(ctx context.Context, arg localstore.Form) error {
	return m.Called(ctx, arg).Error(0)
}

func (m *MockRemote) ListForms(ctx context.Context, userID, companyID string) ([]localstore.Form, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).([]localstore.Form), args.Error(1)
}

func (m *MockRemote) UpsertOrder(ctx context.Context, arg localstore.Order) error {
	return m.Called(ctx, arg).Error(0)
}

func (m *MockRemote) ListOrders(ctx context.Context, userID, companyID string) ([]localstore.Order, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).([]localstore.Order), args.Error(1)
}

func (m *MockRemote) ListTracking(ctx context.Context, companyID string) ([]localstore.TrackingInfo, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]localstore.TrackingInfo), args.Error(1)
}

func (m *MockRemote) ListHistory(ctx context.Context, userID, companyID string) ([]localstore.HistoryEvent, error) {
	args := m.Called(ctx, userID, companyID)
	return args.Get(0).([]localstore.HistoryEvent), args.Error(1)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Broadcast(companyID string, eventType string, data any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, companyID+":"+eventType)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

const (
	testUser    = "u1"
	testCompany = "c1"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// emptyPulls lets every list call the test does not care about return nothing.
func emptyPulls(m *MockRemote) {
	m.On("ListUserActions", mock.Anything, testUser, testCompany).Return([]localstore.UserAction{}, nil).Maybe()
	m.On("ListForms", mock.Anything, testUser, testCompany).Return([]localstore.Form{}, nil).Maybe()
	m.On("ListOrders", mock.Anything, testUser, testCompany).Return([]localstore.Order{}, nil).Maybe()
	m.On("ListTracking", mock.Anything, testCompany).Return([]localstore.TrackingInfo{}, nil).Maybe()
	m.On("ListHistory", mock.Anything, testUser, testCompany).Return([]localstore.HistoryEvent{}, nil).Maybe()
}

func TestForceSync_PushesOwnRecordsAndPullsRemote(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	remote := new(MockRemote)

	mine := localstore.UserAction{ID: "a1", UserID: testUser, CompanyID: testCompany, ActionType: "create_order"}
	other := localstore.UserAction{ID: "a2", UserID: "u2", CompanyID: testCompany, ActionType: "create_order"}
	require.NoError(t, localstore.Put(ctx, store, mine))
	require.NoError(t, localstore.Put(ctx, store, other))

	pulled := localstore.UserAction{ID: "a9", UserID: testUser, CompanyID: testCompany, ActionType: "delete_order"}
	remote.On("UpsertUserAction", mock.Anything, mine).Return(nil).Once()
	remote.On("ListUserActions", mock.Anything, testUser, testCompany).Return([]localstore.UserAction{mine, pulled}, nil).Once()
	emptyPulls(remote)

	svc := NewSyncService(store, remote, nil, time.Minute)
	report, err := svc.ForceSyncNowService(ctx, testUser, testCompany)
	require.NoError(t, err)

	require.Len(t, report.Kinds, 5)
	assert.Equal(t, localstore.KindUserActions, report.Kinds[0].Kind)
	assert.Equal(t, 1, report.Kinds[0].Pushed)
	assert.Equal(t, 2, report.Kinds[0].Pulled)
	assert.False(t, report.Failed())

	got, err := localstore.Get[localstore.UserAction](ctx, store, "a9")
	require.NoError(t, err)
	assert.Equal(t, "delete_order", got.ActionType)

	remote.AssertExpectations(t)
	remote.AssertNotCalled(t, "UpsertUserAction", mock.Anything, other)
}

func TestForceSync_KindsRunInOrder(t *testing.T) {
	remote := new(MockRemote)
	emptyPulls(remote)

	svc := NewSyncService(newTestStore(t), remote, nil, time.Minute)
	report, err := svc.ForceSyncNowService(context.Background(), testUser, testCompany)
	require.NoError(t, err)

	var kinds []localstore.Kind
	for _, k := range report.Kinds {
		kinds = append(kinds, k.Kind)
	}
	assert.Equal(t, []localstore.Kind{
		localstore.KindUserActions,
		localstore.KindForms,
		localstore.KindOrders,
		localstore.KindTracking,
		localstore.KindHistory,
	}, kinds)

	var methods []string
	for _, call := range remote.Calls {
		methods = append(methods, call.Method)
	}
	assert.Equal(t, []string{"ListUserActions", "ListForms", "ListOrders", "ListTracking", "ListHistory"}, methods)
}

func TestForceSync_FailedUpsertContinues(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	remote := new(MockRemote)

	f1 := localstore.Form{ID: "f1", UserID: testUser, CompanyID: testCompany, Status: localstore.FormStatusDraft}
	f2 := localstore.Form{ID: "f2", UserID: testUser, CompanyID: testCompany, Status: localstore.FormStatusDraft}
	require.NoError(t, localstore.Put(ctx, store, f1))
	require.NoError(t, localstore.Put(ctx, store, f2))

	remote.On("UpsertForm", mock.Anything, f1).Return(errors.New("timeout")).Once()
	remote.On("UpsertForm", mock.Anything, f2).Return(nil).Once()
	emptyPulls(remote)

	svc := NewSyncService(store, remote, nil, time.Minute)
	report, err := svc.ForceSyncNowService(ctx, testUser, testCompany)
	require.NoError(t, err)

	forms := report.Kinds[1]
	assert.Equal(t, 1, forms.PushErrors)
	assert.Equal(t, 1, forms.Pushed)
	assert.Empty(t, forms.Error)
	assert.True(t, report.Failed())
	remote.AssertExpectations(t)
}

func TestForceSync_FailedPullEndsOnlyThatKind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	remote := new(MockRemote)

	track := localstore.TrackingInfo{ID: "t1", OrderID: "o1", UserID: "u2", CompanyID: testCompany, StatusUpdate: "in_transit"}
	remote.On("ListOrders", mock.Anything, testUser, testCompany).Return([]localstore.Order(nil), errors.New("connection refused")).Once()
	remote.On("ListTracking", mock.Anything, testCompany).Return([]localstore.TrackingInfo{track}, nil).Once()
	emptyPulls(remote)

	svc := NewSyncService(store, remote, nil, time.Minute)
	report, err := svc.ForceSyncNowService(ctx, testUser, testCompany)
	require.NoError(t, err)

	assert.Equal(t, "connection refused", report.Kinds[2].Error)
	assert.Empty(t, report.Kinds[3].Error)
	assert.Equal(t, 1, report.Kinds[3].Pulled)

	got, err := localstore.List[localstore.TrackingInfo](ctx, store, testUser, testCompany)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestForceSync_OverlappingPassIsSkipped(t *testing.T) {
	remote := new(MockRemote)
	svc := NewSyncService(newTestStore(t), remote, nil, time.Minute)

	svc.state(testUser).syncing.Store(true)
	_, err := svc.ForceSyncNowService(context.Background(), testUser, testCompany)
	assert.ErrorIs(t, err, ErrSyncInProgress)
	assert.Equal(t, int64(1), svc.StatusService(testUser, testCompany).SkipCount)
	remote.AssertNotCalled(t, "ListUserActions", mock.Anything, mock.Anything, mock.Anything)
}

func TestForceSync_NotifiesCompany(t *testing.T) {
	remote := new(MockRemote)
	emptyPulls(remote)
	notifier := &recordingNotifier{}

	svc := NewSyncService(newTestStore(t), remote, notifier, time.Minute)
	_, err := svc.ForceSyncNowService(context.Background(), testUser, testCompany)
	require.NoError(t, err)

	assert.Equal(t, []string{testCompany + ":" + EventSyncCompleted}, notifier.events)
}

func TestStartRunsImmediatelyAndStop(t *testing.T) {
	remote := new(MockRemote)
	emptyPulls(remote)
	notifier := &recordingNotifier{}

	svc := NewSyncService(newTestStore(t), remote, notifier, time.Hour)
	svc.Start(testUser, testCompany)

	assert.Eventually(t, func() bool { return notifier.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, svc.StatusService(testUser, testCompany).Running)

	svc.Stop(testUser)
	status := svc.StatusService(testUser, testCompany)
	assert.False(t, status.Running)
	assert.Equal(t, testCompany, status.CompanyID)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, svc.Shutdown(ctx))
}

func TestStartReplacesPreviousLoop(t *testing.T) {
	remote := new(MockRemote)
	emptyPulls(remote)
	remote.On("ListUserActions", mock.Anything, testUser, "c2").Return([]localstore.UserAction{}, nil).Maybe()
	remote.On("ListForms", mock.Anything, testUser, "c2").Return([]localstore.Form{}, nil).Maybe()
	remote.On("ListOrders", mock.Anything, testUser, "c2").Return([]localstore.Order{}, nil).Maybe()
	remote.On("ListTracking", mock.Anything, "c2").Return([]localstore.TrackingInfo{}, nil).Maybe()
	remote.On("ListHistory", mock.Anything, testUser, "c2").Return([]localstore.HistoryEvent{}, nil).Maybe()

	svc := NewSyncService(newTestStore(t), remote, nil, time.Hour)
	svc.Start(testUser, testCompany)
	svc.Start(testUser, "c2")
	defer svc.Stop(testUser)

	assert.False(t, svc.StatusService(testUser, testCompany).Running)
	assert.True(t, svc.StatusService(testUser, "c2").Running)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, svc.Shutdown(ctx))
}

// anyPulls answers every list call, whoever asks.
func anyPulls(m *MockRemote) {
	m.On("ListUserActions", mock.Anything, mock.Anything, mock.Anything).Return([]localstore.UserAction{}, nil).Maybe()
	m.On("ListForms", mock.Anything, mock.Anything, mock.Anything).Return([]localstore.Form{}, nil).Maybe()
	m.On("ListOrders", mock.Anything, mock.Anything, mock.Anything).Return([]localstore.Order{}, nil).Maybe()
	m.On("ListTracking", mock.Anything, mock.Anything).Return([]localstore.TrackingInfo{}, nil).Maybe()
	m.On("ListHistory", mock.Anything, mock.Anything, mock.Anything).Return([]localstore.HistoryEvent{}, nil).Maybe()
}

func TestLoopsArePerUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	remote := new(MockRemote)

	actionA := localstore.UserAction{ID: "a1", UserID: "userA", CompanyID: "cA", ActionType: "order_created"}
	require.NoError(t, localstore.Put(ctx, store, actionA))

	pushedA := make(chan struct{}, 1)
	remote.On("UpsertUserAction", mock.Anything, actionA).Return(nil).Run(func(mock.Arguments) {
		select {
		case pushedA <- struct{}{}:
		default:
		}
	})
	anyPulls(remote)
	notifier := &recordingNotifier{}

	svc := NewSyncService(store, remote, notifier, time.Hour)
	svc.Start("userA", "cA")
	svc.Start("userB", "cB")

	select {
	case <-pushedA:
	case <-time.After(2 * time.Second):
		t.Fatal("records of the first user were not pushed")
	}
	assert.Eventually(t, func() bool { return notifier.count() >= 2 }, 2*time.Second, 10*time.Millisecond)

	assert.True(t, svc.StatusService("userA", "cA").Running)
	assert.True(t, svc.StatusService("userB", "cB").Running)

	svc.Stop("userB")
	assert.False(t, svc.StatusService("userB", "cB").Running)
	assert.True(t, svc.StatusService("userA", "cA").Running)

	// a status request for another company never shows this user's loop
	other := svc.StatusService("userA", "cB")
	assert.False(t, other.Running)
	assert.Nil(t, other.LastPass)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(shutdownCtx))
	assert.False(t, svc.StatusService("userA", "cA").Running)
}

func TestConcurrentStartLeavesOneLoop(t *testing.T) {
	remote := new(MockRemote)
	anyPulls(remote)

	svc := NewSyncService(newTestStore(t), remote, nil, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.Start(testUser, fmt.Sprintf("c%d", i))
		}(i)
	}
	wg.Wait()

	svc.Stop(testUser)

	// an orphaned loop would keep Shutdown waiting past the deadline
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, svc.Shutdown(ctx))
}
