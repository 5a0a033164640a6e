// Package store implements the storefront's application state: catalog,
// users, orders, session, cart, active page and the transient
// notification. All mutations go through Store methods; views read a
// point-in-time Snapshot and never touch state directly.
//
// Every slice is mirrored to a kv.Store after each mutation. Persistence
// failures are logged and swallowed: the in-memory state stays
// authoritative and the user is never blocked.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"tunga-storefront/kv"
	"tunga-storefront/models"
	"tunga-storefront/utils"
)

// Page tokens understood by Navigate. Only the admin page is guarded;
// everything else is reachable regardless of session state.
const (
	PageHome           = "home"
	PageProducts       = "products"
	PageCart           = "cart"
	PageCheckout       = "checkout"
	PageLogin          = "login"
	PageSignup         = "signup"
	PageWallet         = "wallet"
	PageReferral       = "referral"
	PageContact        = "contact"
	PageAdmin          = "admin"
	PageForgotPassword = "forgot-password"
)

// notificationTTL is how long a notification stays visible before it
// clears itself.
const notificationTTL = 4000 * time.Millisecond

const persistTimeout = 5 * time.Second

// Config configures a Store. Zero-value fields get defaults: an
// in-memory kv store, a no-op logger, a no-op mailer and the seed
// catalog.
type Config struct {
	KV     kv.Store
	Logger *zap.Logger
	Mailer utils.Mailer

	// SeedCatalog overrides the default product list used when no
	// persisted catalog exists.
	SeedCatalog []models.Product
}

// Store holds all mutable application state. Methods are safe for
// concurrent use; in practice mutations arrive one UI event at a time
// and the lock mainly serializes the notification expiry callback
// against them.
type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *zap.Logger
	mailer utils.Mailer

	products []models.Product
	users    []models.User
	orders   []models.Order
	cart     []models.CartItem
	session  *models.User

	activePage   string
	notification *models.Notification
	notifyTimer  *time.Timer
	notifySeq    uint64

	notifyTTL time.Duration
	now       func() time.Time
}

// New builds a Store, loading each state slice from the kv backend and
// falling back to seed data where a slice is absent or unreadable.
func New(cfg Config) *Store {
	s := &Store{
		kv:        cfg.KV,
		logger:    cfg.Logger,
		mailer:    cfg.Mailer,
		notifyTTL: notificationTTL,
		now:       time.Now,
	}
	if s.kv == nil {
		s.kv = kv.NewMemory()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.mailer == nil {
		s.mailer = utils.NopMailer{}
	}

	seedCatalog := cfg.SeedCatalog
	if seedCatalog == nil {
		seedCatalog = models.SeedProducts()
	}

	if !s.loadSlice(kv.KeyProducts, &s.products) {
		s.products = seedCatalog
	}
	if !s.loadSlice(kv.KeyUsers, &s.users) {
		s.users = models.SeedUsers()
	}
	if !s.loadSlice(kv.KeyOrders, &s.orders) {
		s.orders = []models.Order{}
	}
	if !s.loadSlice(kv.KeyCart, &s.cart) {
		s.cart = []models.CartItem{}
	}
	// A persisted "null" session decodes to nil, which is the
	// anonymous state.
	if !s.loadSlice(kv.KeySession, &s.session) {
		s.session = nil
	}

	s.activePage = PageHome
	return s
}

// loadSlice decodes one persisted slice into dst. Absent keys, load
// errors and corrupt blobs all report false so the caller seeds instead.
func (s *Store) loadSlice(key string, dst interface{}) bool {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	blob, ok, err := s.kv.Load(ctx, key)
	if err != nil {
		s.logger.Warn("failed to load state slice", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		s.logger.Warn("discarding corrupt state slice", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// persist mirrors one slice to its key. Failures are logged and
// swallowed.
func (s *Store) persist(key string, v interface{}) {
	blob, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode state slice", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.kv.Save(ctx, key, blob); err != nil {
		s.logger.Warn("failed to persist state slice", zap.String("key", key), zap.Error(err))
	}
}

// Snapshot is a read-only copy of the store's state for rendering.
type Snapshot struct {
	Products     []models.Product
	Users        []models.User
	Orders       []models.Order
	Cart         []models.CartItem
	Session      *models.User
	ActivePage   string
	Notification *models.Notification
}

// Snapshot returns a deep copy of the current state. Mutating the
// returned value has no effect on the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Products:   append([]models.Product(nil), s.products...),
		Users:      append([]models.User(nil), s.users...),
		Orders:     copyOrders(s.orders),
		Cart:       append([]models.CartItem(nil), s.cart...),
		ActivePage: s.activePage,
	}
	if s.session != nil {
		session := *s.session
		snap.Session = &session
	}
	if s.notification != nil {
		notification := *s.notification
		snap.Notification = &notification
	}
	return snap
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		o.Items = append([]models.CartItem(nil), o.Items...)
		out[i] = o
	}
	return out
}

// Navigate sets the active page. Navigating to the admin page without
// an admin session emits an error notification and leaves the active
// page unchanged; no other page is guarded here. The checkout page does
// its own best-effort redirect to login (see Checkout).
func (s *Store) Navigate(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigateLocked(pageID)
}

func (s *Store) navigateLocked(pageID string) {
	if pageID == PageAdmin && (s.session == nil || !s.session.IsAdmin) {
		s.notifyLocked("Admin access required.", models.NotifyError)
		return
	}
	s.activePage = pageID
}

// Login sets the session to user and navigates home. The caller is
// expected to have verified credentials via Authenticate.
func (s *Store) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginLocked(user)
}

func (s *Store) loginLocked(user models.User) {
	session := user
	s.session = &session
	s.persist(kv.KeySession, s.session)
	s.navigateLocked(PageHome)
}

// Logout clears the session and the cart, then navigates to the login
// page. The cart is cleared only here and on order submission.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.cart = []models.CartItem{}
	s.persist(kv.KeySession, s.session)
	s.persist(kv.KeyCart, s.cart)
	s.notifyLocked("You have been logged out.", models.NotifyInfo)
	s.navigateLocked(PageLogin)
}

// Notify replaces the current notification. It clears itself after four
// seconds unless a newer notification arrives first; a newer one cancels
// the pending expiry and starts its own.
func (s *Store) Notify(message, notifyType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifyLocked(message, notifyType)
}

func (s *Store) notifyLocked(message, notifyType string) {
	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
	}
	s.notification = &models.Notification{Message: message, Type: notifyType}
	s.notifySeq++
	seq := s.notifySeq

	s.notifyTimer = time.AfterFunc(s.notifyTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A stale timer that lost the Stop race must not clear a
		// newer notification.
		if s.notifySeq == seq {
			s.notification = nil
			s.notifyTimer = nil
		}
	})
}

// DismissNotification clears the current notification immediately, as
// the toast's close button does.
func (s *Store) DismissNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
		s.notifyTimer = nil
	}
	s.notification = nil
	s.notifySeq++
}
