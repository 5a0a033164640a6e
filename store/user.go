package store

import (
	"fmt"

	"github.com/google/uuid"

	"tunga-storefront/kv"
	"tunga-storefront/models"
)

// Authenticate checks identifier and password against the user list
// with exact, case-sensitive string comparison (plaintext demo auth; no
// hashing by design). On match it logs the user in and welcomes them;
// on mismatch it surfaces a generic error that never reveals which
// field was wrong, and the session is unchanged.
func (s *Store) Authenticate(identifier, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == identifier && user.Password == password {
			s.loginLocked(user)
			s.notifyLocked(fmt.Sprintf("Welcome back, %s!", user.Name), models.NotifySuccess)
			return user, nil
		}
	}

	s.notifyLocked("Invalid credentials. Try admin@tunga.com / password123", models.NotifyError)
	return models.User{}, ErrInvalidCredentials
}

// Signup creates a non-admin account with a zero wallet and a fresh
// unique id, appends it unconditionally (duplicate emails are not
// checked) and navigates to the login page. The new user is NOT logged
// in automatically.
func (s *Store) Signup(name, email, phone, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || email == "" || password == "" {
		s.notifyLocked("Please fill in all required fields.", models.NotifyError)
		return models.User{}, ErrMissingField
	}

	user := models.User{
		ID:       "u" + uuid.NewString(),
		Email:    email,
		Password: password,
		Name:     name,
		Phone:    phone,
		IsAdmin:  false,
		Wallet:   0,
	}
	s.users = append(s.users, user)
	s.persist(kv.KeyUsers, s.users)
	s.notifyLocked("Account created successfully! Please log in.", models.NotifySuccess)
	s.navigateLocked(PageLogin)
	return user, nil
}
