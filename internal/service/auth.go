package service

import (
	"context"

	"easy-shop/internal/apperr"
	"easy-shop/internal/hash"
	"easy-shop/internal/logging"
	"easy-shop/internal/models"
	"easy-shop/internal/password"
)

const userEventsTopic = "user_events"

type AuthService struct {
	Users  UserStore
	Events EventPublisher
}

// Register validates input, enforces the password policy, rejects
// duplicate emails and persists the account with a salted hash.
// Exactly one read and one write hit the store.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || rawPassword == "" {
		return apperr.New(apperr.KindValidation, "All fields are required")
	}

	if err := password.Validate(rawPassword); err != nil {
		return apperr.New(apperr.KindPolicy, err.Error())
	}

	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil && apperr.KindOf(err) != apperr.KindNotFound {
		l.Error("register_failed", "reason", "cannot check existing email", "error", err)
		return err
	}
	if existing != nil {
		return apperr.New(apperr.KindConflict, "Email already exists")
	}

	pwHash, err := hash.HashPassword(rawPassword)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash the password", "error", err)
		return apperr.Wrap(apperr.KindInternal, "cannot hash the password", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := s.Users.Create(ctx, user); err != nil {
		l.Error("register_failed", "reason", "cannot create user", "error", err)
		return err
	}

	s.publish(ctx, userEventsTopic, user.ID.Hex(), map[string]interface{}{
		"type":   "user_registrated",
		"userID": user.ID.Hex(),
		"name":   user.Name,
	})

	l.Info("register_successful")
	return nil
}

// Login verifies the claimed password against the stored hash using
// bcrypt's constant-time comparison and returns the account on match.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			l.Warn("login_failed", "reason", "user not found")
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		l.Error("login_failed", "reason", "cannot look up user", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, rawPassword) {
		l.Warn("login_failed", "reason", "incorrect password")
		return nil, apperr.New(apperr.KindAuth, "Incorrect password")
	}

	l.Info("login_successful")
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]interface{}) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
