package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunga-storefront/models"
)

func TestWalletBalance(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.WalletBalance()

		require.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("returns the user's balance", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		balance, err := s.WalletBalance()

		require.NoError(t, err)
		assert.Equal(t, int64(50000), balance)
	})

	t.Run("empty wallet shows the demo balance", func(t *testing.T) {
		s := newTestStore(t)
		s.Login(models.User{ID: "u1", Email: "u@example.com"})

		balance, err := s.WalletBalance()

		require.NoError(t, err)
		assert.Equal(t, int64(mockWalletBalance), balance)
	})
}

func TestRequestTransactions(t *testing.T) {
	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		require.ErrorIs(t, s.RequestDeposit(0), ErrInvalidAmount)
		require.ErrorIs(t, s.RequestWithdrawal(-100), ErrInvalidAmount)

		snap := s.Snapshot()
		require.NotNil(t, snap.Notification)
		assert.Equal(t, "Please enter a valid amount.", snap.Notification.Message)
		assert.Equal(t, models.NotifyError, snap.Notification.Type)
	})

	t.Run("withdrawal beyond balance is rejected", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		err := s.RequestWithdrawal(60000)

		require.ErrorIs(t, err, ErrInsufficientFunds)
		snap := s.Snapshot()
		require.NotNil(t, snap.Notification)
		assert.Equal(t, "Insufficient funds.", snap.Notification.Message)
	})

	t.Run("valid requests acknowledge without moving funds", func(t *testing.T) {
		s := newTestStore(t)
		loginAdmin(t, s)

		require.NoError(t, s.RequestDeposit(10000))
		snap := s.Snapshot()
		require.NotNil(t, snap.Notification)
		assert.Equal(t, "Deposit of 10000 RWF requested. Processing... (Mock)", snap.Notification.Message)
		assert.Equal(t, models.NotifyInfo, snap.Notification.Type)

		require.NoError(t, s.RequestWithdrawal(10000))
		snap = s.Snapshot()
		require.NotNil(t, snap.Notification)
		assert.Equal(t, "Withdraw of 10000 RWF requested. Processing... (Mock)", snap.Notification.Message)

		balance, err := s.WalletBalance()
		require.NoError(t, err)
		assert.Equal(t, int64(50000), balance)
	})

	t.Run("anonymous requests fail", func(t *testing.T) {
		s := newTestStore(t)

		require.ErrorIs(t, s.RequestDeposit(1000), ErrLoginRequired)
	})
}

func TestReferral(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Referral()

		require.ErrorIs(t, err, ErrLoginRequired)
	})

	t.Run("derives code and link from the user id", func(t *testing.T) {
		s := newTestStore(t)
		s.Login(models.User{ID: "u1724832abc", Email: "u@example.com"})

		stats, err := s.Referral()

		require.NoError(t, err)
		assert.Equal(t, "832ABC", stats.Code)
		assert.Equal(t, "https://tunga.co/ref=832ABC", stats.Link)
		assert.Equal(t, mockReferralCount, stats.Referrals)
		assert.Equal(t, int64(mockReferralCount*referralBonus), stats.Bonus)
	})
}
