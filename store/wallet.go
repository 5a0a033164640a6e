package store

import (
	"fmt"
	"strings"

	"tunga-storefront/models"
)

// mockWalletBalance stands in for an empty wallet so the demo page has
// something to show. No transaction ever moves real funds.
const mockWalletBalance = 50000

// referralBonus is the mock per-referral reward in RWF.
const referralBonus = 6000

// mockReferralCount is the fixed referral count shown on the invite page.
const mockReferralCount = 3

// WalletBalance returns the session user's balance, substituting the
// demo balance when the wallet is empty.
func (s *Store) WalletBalance() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return 0, ErrLoginRequired
	}
	if s.session.Wallet == 0 {
		return mockWalletBalance, nil
	}
	return s.session.Wallet, nil
}

// RequestDeposit validates a deposit request and acknowledges it with a
// mock processing notification. Nothing is credited.
func (s *Store) RequestDeposit(amount int64) error {
	return s.requestTransaction("deposit", amount)
}

// RequestWithdrawal validates a withdrawal request against the balance
// and acknowledges it with a mock processing notification. Nothing is
// debited.
func (s *Store) RequestWithdrawal(amount int64) error {
	return s.requestTransaction("withdraw", amount)
}

func (s *Store) requestTransaction(kind string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrLoginRequired
	}
	if amount <= 0 {
		s.notifyLocked("Please enter a valid amount.", models.NotifyError)
		return ErrInvalidAmount
	}

	balance := s.session.Wallet
	if balance == 0 {
		balance = mockWalletBalance
	}
	if kind == "withdraw" && amount > balance {
		s.notifyLocked("Insufficient funds.", models.NotifyError)
		return ErrInsufficientFunds
	}

	label := strings.ToUpper(kind[:1]) + kind[1:]
	s.notifyLocked(fmt.Sprintf("%s of %d RWF requested. Processing... (Mock)", label, amount), models.NotifyInfo)
	return nil
}

// ReferralStats describes the invite page for the session user. Counts
// and bonuses are demo values.
type ReferralStats struct {
	Code      string
	Link      string
	Referrals int
	Bonus     int64
}

// Referral returns the session user's referral code, link and mock
// earnings.
func (s *Store) Referral() (ReferralStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ReferralStats{}, ErrLoginRequired
	}
	return ReferralStats{
		Code:      s.session.ReferralCode(),
		Link:      s.session.ReferralLink(),
		Referrals: mockReferralCount,
		Bonus:     mockReferralCount * referralBonus,
	}, nil
}
