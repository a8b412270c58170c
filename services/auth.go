package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/auth"
	"github.com/ToeMom/GroupUp-Final/models"
	"github.com/ToeMom/GroupUp-Final/store"
)

const otpTTL = 10 * time.Minute

// Mailer delivers a single message; the email utility satisfies it.
type Mailer interface {
	Send(to, subject, body string) error
}

// AuthService implements the email OTP login: a short-lived code is mailed to
// the address, and verifying it mints a bearer token. The token subject is
// the existing profile id for a known address, or a fresh id the client then
// registers a profile under.
type AuthService struct {
	users  store.UserStore
	mailer Mailer
	tokens *auth.Manager

	mu    sync.Mutex
	codes map[string]otpEntry
}

type otpEntry struct {
	code    string
	expires time.Time
}

func NewAuthService(users store.UserStore, mailer Mailer, tokens *auth.Manager) *AuthService {
	return &AuthService{
		users:  users,
		mailer: mailer,
		tokens: tokens,
		codes:  map[string]otpEntry{},
	}
}

// RequestOTP mails a six-digit code to the address.
func (s *AuthService) RequestOTP(_ context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", models.ErrInvalidInput)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	s.mu.Lock()
	s.codes[email] = otpEntry{code: code, expires: time.Now().Add(otpTTL)}
	s.mu.Unlock()

	body := fmt.Sprintf("Your GroupUp login code is %s. It expires in 10 minutes.", code)
	if err := s.mailer.Send(email, "Your GroupUp login code", body); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	logrus.Infof("otp issued for %s", email)
	return nil
}

// VerifyOTP checks the code and returns a signed token plus its subject. A
// code is single-use and expires after otpTTL.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (token, subject string, err error) {
	if email == "" || code == "" {
		return "", "", fmt.Errorf("%w: email and code are required", models.ErrInvalidInput)
	}

	s.mu.Lock()
	entry, ok := s.codes[email]
	if ok {
		delete(s.codes, email)
	}
	s.mu.Unlock()

	if !ok || entry.code != code || time.Now().After(entry.expires) {
		return "", "", models.ErrNotAuthenticated
	}

	subject = ""
	user, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		subject = user.ID
	case errors.Is(err, models.ErrUserNotFound):
		subject = uuid.New().String()
	default:
		return "", "", err
	}

	token, err = s.tokens.Generate(subject)
	if err != nil {
		return "", "", err
	}
	return token, subject, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
