package store

import (
	"go.uber.org/zap"

	"tunga-storefront/models"
)

// SubmitContactForm validates and forwards a contact-form message.
// Delivery is best-effort: a mail failure is logged but the user still
// sees the success notification, matching the mock form's behavior.
func (s *Store) SubmitContactForm(name, email, message string) error {
	s.mu.Lock()
	if name == "" || email == "" || message == "" {
		s.notifyLocked("Please fill in all required fields.", models.NotifyError)
		s.mu.Unlock()
		return ErrMissingField
	}
	s.notifyLocked("Message sent successfully! We will get back to you soon.", models.NotifySuccess)
	s.mu.Unlock()

	if err := s.mailer.SendContactMessage(name, email, message); err != nil {
		s.logger.Warn("failed to forward contact message", zap.String("from", email), zap.Error(err))
	}
	return nil
}
