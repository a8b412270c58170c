package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToeMom/GroupUp-Final/auth"
	"github.com/ToeMom/GroupUp-Final/models"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

var codePattern = regexp.MustCompile(`\d{6}`)

func newAuthFixture(t *testing.T) (*fixture, *AuthService, *fakeMailer, *auth.Manager) {
	t.Helper()
	f := newFixture(t)
	mailer := &fakeMailer{}
	tokens := auth.NewManager("test-secret", "groupup-test", time.Hour)
	return f, NewAuthService(f.store.Users, mailer, tokens), mailer, tokens
}

func TestOTPLoginKnownUser(t *testing.T) {
	f, svc, mailer, tokens := newAuthFixture(t)
	ctx := context.Background()
	f.seedUser(t, "alice", 28, false, false)

	require.NoError(t, svc.RequestOTP(ctx, "alice@example.com"))
	assert.Equal(t, "alice@example.com", mailer.to)

	code := codePattern.FindString(mailer.body)
	require.Len(t, code, 6)

	token, subject, err := svc.VerifyOTP(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	verified, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", verified)
}

func TestOTPLoginNewUserGetsFreshSubject(t *testing.T) {
	_, svc, mailer, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "new@example.com"))
	code := codePattern.FindString(mailer.body)

	_, subject, err := svc.VerifyOTP(ctx, "new@example.com", code)
	require.NoError(t, err)
	assert.NotEmpty(t, subject)
}

func TestOTPIsSingleUse(t *testing.T) {
	f, svc, mailer, _ := newAuthFixture(t)
	ctx := context.Background()
	f.seedUser(t, "alice", 28, false, false)

	require.NoError(t, svc.RequestOTP(ctx, "alice@example.com"))
	code := codePattern.FindString(mailer.body)

	_, _, err := svc.VerifyOTP(ctx, "alice@example.com", code)
	require.NoError(t, err)

	_, _, err = svc.VerifyOTP(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)
}

func TestOTPRejectsWrongCode(t *testing.T) {
	_, svc, mailer, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "alice@example.com"))
	code := codePattern.FindString(mailer.body)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, _, err := svc.VerifyOTP(ctx, "alice@example.com", wrong)
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	_, _, err = svc.VerifyOTP(ctx, "nobody@example.com", "123456")
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	_, _, err = svc.VerifyOTP(ctx, "", "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
