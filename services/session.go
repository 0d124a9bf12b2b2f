package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tekrabyte/waui-sub001/pkg/logger"
)

var ErrStaffRequired = errors.New("staffId is required")

// Backends bundles what a session needs from the outside world.
type Backends struct {
	Catalog        CatalogBackend
	Transactions   TransactionBackend
	PaymentMethods PaymentMethodBackend
	Tables         TableBackend
	Cache          KeyValueStore
	Notifier       TableNotifier
}

// Session is the state of one logged-in terminal. It is created on login and
// torn down on logout; nothing here lives in package-level variables.
type Session struct {
	ID       string    `json:"id"`
	StaffID  string    `json:"staffId"`
	OpenedAt time.Time `json:"openedAt"`

	Cart           *Cart                  `json:"-"`
	Catalog        *Catalog               `json:"-"`
	PaymentMethods *PaymentMethodRegistry `json:"-"`
	Tables         *TableBoard            `json:"-"`
}

type SessionManager struct {
	Backends Backends
	Checkout *CheckoutService
	Log      *logger.Logger
	// TTL matches the token lifetime; zero keeps sessions until logout.
	TTL time.Duration

	newID func() string
	now   func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager(b Backends, log *logger.Logger) *SessionManager {
	return &SessionManager{
		Backends: b,
		Checkout: NewCheckoutService(b.Transactions, log),
		Log:      log,
		newID:    uuid.NewString,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Open starts a session and performs the initial loads. A failed load leaves the
// affected component empty (or on defaults) and is only logged.
func (m *SessionManager) Open(ctx context.Context, staffID string) (*Session, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return nil, ErrStaffRequired
	}

	s := &Session{
		ID:             m.newID(),
		StaffID:        staffID,
		OpenedAt:       m.now().UTC(),
		Cart:           NewCart(),
		Catalog:        NewCatalog(m.Backends.Catalog, m.Log),
		PaymentMethods: NewPaymentMethodRegistry(m.Backends.PaymentMethods, m.Backends.Cache, m.Log),
		Tables:         NewTableBoard(m.Backends.Tables, m.Backends.Notifier, m.Log),
	}

	if err := s.Catalog.Load(ctx); err != nil {
		m.Log.Warn("session_open", s.ID, "catalog not loaded", err)
	}
	src := s.PaymentMethods.Load(ctx)
	m.Log.Debug("session_open", s.ID, "payment methods from "+string(src))
	if err := s.Tables.Load(ctx); err != nil {
		m.Log.Warn("session_open", s.ID, "tables not loaded", err)
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.Log.Info("session_opened", s.ID, "staff "+staffID+" logged in")
	return s, nil
}

func (m *SessionManager) expired(s *Session, now time.Time) bool {
	return m.TTL > 0 && !now.Before(s.OpenedAt.Add(m.TTL))
}

// Get returns an open session. An expired one is torn down and reported as not found.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.expired(s, m.now()) {
		_ = m.Close(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Sweep closes every expired session and returns how many were closed.
func (m *SessionManager) Sweep() int {
	now := m.now()
	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if m.expired(s, now) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if m.Close(id) == nil {
			n++
		}
	}
	return n
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *SessionManager) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				m.Log.Info("session_sweep", "", fmt.Sprintf("%d expired sessions closed", n))
			}
		}
	}
}

// Close clears the cart and resets the registry, then forgets the session.
func (m *SessionManager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Cart.Clear()
	s.PaymentMethods.Reset()
	m.Log.Info("session_closed", id, "staff "+s.StaffID+" logged out")
	return nil
}

func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
