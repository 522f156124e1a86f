package data_sync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"logiflow/internal/localstore"
	"logiflow/pkg/metrics"

	log "github.com/sirupsen/logrus"
)

var ErrSyncInProgress = errors.New("a sync pass is already running")

const (
	EventSyncCompleted = "sync_completed"

	defaultPassTimeout = 2 * time.Minute
)

// Notifier receives a message when a pass finishes for a company.
type Notifier interface {
	Broadcast(companyID string, eventType string, data any)
}

type InterfaceService interface {
	Start(userID, companyID string)
	Stop(userID string)
	ForceSyncNowService(ctx context.Context, userID, companyID string) (PassReport, error)
	StatusService(userID, companyID string) StatusResponse
}

// userSync is the loop and pass counters of one user.
type userSync struct {
	syncing atomic.Bool

	companyID string
	cancel    context.CancelFunc
	loopDone  chan struct{}
	lastPass  *PassReport
	passCount int64
	skipCount int64
}

type Service struct {
	store       *localstore.Store
	remote      RemoteRepository
	notifier    Notifier
	interval    time.Duration
	passTimeout time.Duration

	loops  sync.WaitGroup
	passes sync.WaitGroup

	// mu also covers the whole stop-then-install sequence of Start.
	mu    sync.Mutex
	users map[string]*userSync
}

func NewSyncService(store *localstore.Store, remote RemoteRepository, notifier Notifier, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Service{
		store:       store,
		remote:      remote,
		notifier:    notifier,
		interval:    interval,
		passTimeout: defaultPassTimeout,
		users:       make(map[string]*userSync),
	}
}

// stateLocked returns the user's entry, creating it on first use. s.mu must be held.
func (s *Service) stateLocked(userID string) *userSync {
	u, ok := s.users[userID]
	if !ok {
		u = &userSync{}
		s.users[userID] = u
	}
	return u
}

func (s *Service) state(userID string) *userSync {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(userID)
}

// Start replaces the user's loop with one for companyID. Loops of other
// users are untouched. It runs a pass right away and then one per interval.
func (s *Service) Start(userID, companyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked(userID)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	u := s.stateLocked(userID)
	u.cancel = cancel
	u.loopDone = done
	u.companyID = companyID

	log.WithFields(log.Fields{
		"user_id":    userID,
		"company_id": companyID,
		"interval":   s.interval.String(),
	}).Info("sincronização iniciada")

	s.loops.Add(1)
	go s.loop(ctx, done, userID, companyID)
}

// Stop halts the user's timer. A pass already running is left to finish.
func (s *Service) Stop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(userID)
}

// stopLocked waits for the loop goroutine to exit. The loop never takes s.mu.
func (s *Service) stopLocked(userID string) {
	u, ok := s.users[userID]
	if !ok || u.cancel == nil {
		return
	}
	cancel, done := u.cancel, u.loopDone
	u.cancel, u.loopDone = nil, nil

	cancel()
	<-done
	log.WithField("user_id", userID).Info("sincronização parada")
}

// Shutdown stops every loop and waits for in-flight passes until ctx expires.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for userID := range s.users {
		s.stopLocked(userID)
	}
	s.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		s.loops.Wait()
		s.passes.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) loop(ctx context.Context, done chan struct{}, userID, companyID string) {
	defer s.loops.Done()
	defer close(done)

	s.trigger(userID, companyID)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.trigger(userID, companyID)
		}
	}
}

// trigger starts a pass in the background so a slow pass never blocks the ticker.
func (s *Service) trigger(userID, companyID string) {
	s.passes.Add(1)
	go func() {
		defer s.passes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.passTimeout)
		defer cancel()

		if _, err := s.syncOnce(ctx, userID, companyID); err != nil && !errors.Is(err, ErrSyncInProgress) {
			log.WithError(err).Error("erro na sincronização")
		}
	}()
}

func (s *Service) ForceSyncNowService(ctx context.Context, userID, companyID string) (PassReport, error) {
	return s.syncOnce(ctx, userID, companyID)
}

// StatusService reports the caller's own loop, and only for the company asked about.
func (s *Service) StatusService(userID, companyID string) StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := StatusResponse{
		UserID:    userID,
		CompanyID: companyID,
		Interval:  s.interval.String(),
	}
	u, ok := s.users[userID]
	if !ok {
		return status
	}

	status.Running = u.cancel != nil && u.companyID == companyID
	status.InFlight = u.syncing.Load()
	status.PassCount = u.passCount
	status.SkipCount = u.skipCount
	if u.lastPass != nil && u.lastPass.CompanyID == companyID {
		last := *u.lastPass
		status.LastPass = &last
	}
	return status
}

func (s *Service) syncOnce(ctx context.Context, userID, companyID string) (PassReport, error) {
	u := s.state(userID)
	if !u.syncing.CompareAndSwap(false, true) {
		metrics.SyncPasses.WithLabelValues("skipped").Inc()
		s.mu.Lock()
		u.skipCount++
		s.mu.Unlock()
		return PassReport{}, ErrSyncInProgress
	}
	defer u.syncing.Store(false)

	report := PassReport{
		UserID:    userID,
		CompanyID: companyID,
		StartedAt: time.Now(),
	}

	report.Kinds = append(report.Kinds,
		runKind(ctx, s.store, localstore.KindUserActions, userID, companyID,
			s.remote.UpsertUserAction,
			func(ctx context.Context) ([]localstore.UserAction, error) {
				return s.remote.ListUserActions(ctx, userID, companyID)
			}),
		runKind(ctx, s.store, localstore.KindForms, userID, companyID,
			s.remote.UpsertForm,
			func(ctx context.Context) ([]localstore.Form, error) {
				return s.remote.ListForms(ctx, userID, companyID)
			}),
		runKind(ctx, s.store, localstore.KindOrders, userID, companyID,
			s.remote.UpsertOrder,
			func(ctx context.Context) ([]localstore.Order, error) {
				return s.remote.ListOrders(ctx, userID, companyID)
			}),
		runKind[localstore.TrackingInfo](ctx, s.store, localstore.KindTracking, userID, companyID,
			nil,
			func(ctx context.Context) ([]localstore.TrackingInfo, error) {
				return s.remote.ListTracking(ctx, companyID)
			}),
		runKind[localstore.HistoryEvent](ctx, s.store, localstore.KindHistory, userID, companyID,
			nil,
			func(ctx context.Context) ([]localstore.HistoryEvent, error) {
				return s.remote.ListHistory(ctx, userID, companyID)
			}),
	)

	report.FinishedAt = time.Now()
	metrics.SyncDuration.Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())
	metrics.SyncPasses.WithLabelValues("completed").Inc()

	s.mu.Lock()
	u.lastPass = &report
	u.passCount++
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Broadcast(companyID, EventSyncCompleted, report)
	}

	log.WithFields(log.Fields{
		"user_id":    userID,
		"company_id": companyID,
		"failed":     report.Failed(),
	}).Debug("sincronização concluída")

	return report, nil
}

// runKind pushes local records of kind T (when push is set) and then overwrites
// the local copies with what the remote lists. A failed upsert is logged and skipped.
// A failed read on either side ends the kind.
func runKind[T localstore.Record](
	ctx context.Context,
	store *localstore.Store,
	kind localstore.Kind,
	userID, companyID string,
	push func(context.Context, T) error,
	pull func(context.Context) ([]T, error),
) KindReport {
	report := KindReport{Kind: kind}
	logger := log.WithFields(log.Fields{"kind": kind, "company_id": companyID})

	fail := func(stage string, err error) KindReport {
		metrics.SyncFailures.WithLabelValues(string(kind), stage).Inc()
		logger.WithError(err).Errorf("erro ao sincronizar (%s)", stage)
		report.Error = err.Error()
		return report
	}

	if push != nil {
		local, err := localstore.List[T](ctx, store, userID, companyID)
		if err != nil {
			return fail("local_read", err)
		}

		for _, rec := range local {
			if err := push(ctx, rec); err != nil {
				metrics.SyncFailures.WithLabelValues(string(kind), "push").Inc()
				logger.WithError(err).WithField("id", rec.Key()).Error("erro ao enviar registro")
				report.PushErrors++
				continue
			}
			report.Pushed++
		}
		metrics.SyncRecords.WithLabelValues(string(kind), "push").Add(float64(report.Pushed))
	}

	remote, err := pull(ctx)
	if err != nil {
		return fail("pull", err)
	}

	for _, rec := range remote {
		if err := localstore.Put(ctx, store, rec); err != nil {
			return fail("local_write", err)
		}
		report.Pulled++
	}
	metrics.SyncRecords.WithLabelValues(string(kind), "pull").Add(float64(report.Pulled))

	return report
}
