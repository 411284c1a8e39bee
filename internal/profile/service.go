// Package profile implements the profile/password change workflow and
// security-code issuance. The external identity backend is authoritative
// for whether email and password changes are accepted; this service only
// applies accepted changes locally and keeps the audit trail.
package profile

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alexiva1995/Networkx-back/internal/httpx"
	"github.com/Alexiva1995/Networkx-back/internal/identity"
	"github.com/Alexiva1995/Networkx-back/internal/models"
)

// CodeTTL is how long an issued security code stays valid.
const CodeTTL = time.Hour

const codeLength = 12

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type UserStore interface {
	Find(ctx context.Context, id uint) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type LogStore interface {
	Append(ctx context.Context, userID uint, subject string) error
}

type IdentityClient interface {
	ChangeData(ctx context.Context, id uint, name, lastName, email string) (*identity.Response, error)
	ChangePassword(ctx context.Context, id uint, password string) (*identity.Response, error)
	CheckCredentials(ctx context.Context, id uint, email, password string) (*identity.Response, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type PictureStore interface {
	Replace(userID uint, filename string, r io.Reader) (string, error)
}

// RateLimiter gates security-code sends. Allow reports whether the key
// may fire and, when it may, claims it for the given window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, window time.Duration) (bool, error)
}

type Service struct {
	users    UserStore
	logs     LogStore
	identity IdentityClient
	mailer   Mailer
	pictures PictureStore
	limiter  RateLimiter
	now      func() time.Time
}

func NewService(users UserStore, logs LogStore, idc IdentityClient, m Mailer, pics PictureStore, limiter RateLimiter) *Service {
	return &Service{
		users:    users,
		logs:     logs,
		identity: idc,
		mailer:   m,
		pictures: pics,
		limiter:  limiter,
		now:      time.Now,
	}
}

// Upload is a pending profile picture.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// ChangeDataInput carries the submitted profile fields. Blank fields are
// left untouched locally even when the upstream accepts the change.
type ChangeDataInput struct {
	Name     string
	LastName string
	UserName string
	Email    string
	Phone    string
	PrefixID *uint
	Picture  *Upload
}

// ChangeData forwards the profile change to the identity backend and,
// on acceptance, applies the non-empty fields and writes one audit row.
// A rejected change mutates nothing locally.
func (s *Service) ChangeData(ctx context.Context, userID uint, in ChangeDataInput) error {
	resp, err := s.identity.ChangeData(ctx, userID, in.Name, in.LastName, in.Email)
	if err != nil {
		return err
	}
	if !resp.Status {
		return httpx.ErrUnauthorized
	}

	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return httpx.ErrNotFound
	}

	if in.Email != "" {
		user.Email = in.Email
		// An accepted email change invalidates any pending
		// email-verification code.
		user.CodeSecurity = nil
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.UserName != "" {
		user.UserName = in.UserName
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.PrefixID != nil {
		user.PrefixID = in.PrefixID
	}

	if in.Picture != nil {
		name, err := s.pictures.Replace(userID, in.Picture.Filename, in.Picture.Reader)
		if err != nil {
			return err
		}
		user.ProfilePicture = name
	}

	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	return s.logs.Append(ctx, user.ID, "Profile Data updated")
}

// ChangePassword delegates the decision to the identity backend and
// audits accepted changes. No password material is stored locally.
func (s *Service) ChangePassword(ctx context.Context, userID uint, newPassword string) error {
	resp, err := s.identity.ChangePassword(ctx, userID, newPassword)
	if err != nil {
		return err
	}
	if !resp.Status {
		return httpx.ErrUnauthorized
	}

	logID := resp.UserID
	if logID == 0 {
		logID = userID
	}
	return s.logs.Append(ctx, logID, "Password Updated")
}

// SendSecurityCode issues a fresh 12-character code, stores only its
// bcrypt hash plus the issuance time, and mails the plaintext to the
// user. Re-issuing overwrites the previous hash, invalidating it.
func (s *Service) SendSecurityCode(ctx context.Context, userID uint) error {
	if s.limiter != nil {
		key := fmt.Sprintf("security_code_send_%d", userID)
		ok, err := s.limiter.Allow(ctx, key, time.Minute)
		if err != nil {
			return err
		}
		if !ok {
			return httpx.ErrRateLimited
		}
	}

	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return httpx.ErrNotFound
	}

	code, err := randomCode(codeLength)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hash := string(hashed)
	issuedAt := s.now()
	user.CodeSecurity = &hash
	user.CodeVerifiedAt = &issuedAt
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	if err := s.logs.Append(ctx, user.ID, "Request code security"); err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, user.Email, "Security Code", securityCodeBody(user.Name, code)); err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrUpstream, err)
	}
	return nil
}

// VerifyCodeForEmailChange checks the submitted code against the stored
// hash and, when valid, asks the identity backend to verify the
// email/password pair. A code at or past its TTL is rejected and cleared
// so it can never be replayed.
func (s *Service) VerifyCodeForEmailChange(ctx context.Context, userID uint, code, email, password string) error {
	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return httpx.ErrNotFound
	}

	if user.CodeSecurity == nil || user.CodeVerifiedAt == nil {
		return httpx.ErrInvalidCode
	}

	if !s.now().Before(user.CodeVerifiedAt.Add(CodeTTL)) {
		user.CodeSecurity = nil
		if err := s.users.Save(ctx, user); err != nil {
			return err
		}
		return httpx.ErrExpiredCode
	}

	if bcrypt.CompareHashAndPassword([]byte(*user.CodeSecurity), []byte(code)) != nil {
		return httpx.ErrInvalidCode
	}

	resp, err := s.identity.CheckCredentials(ctx, userID, email, password)
	if err != nil {
		return err
	}
	if !resp.Status {
		return httpx.ErrUnauthorized
	}
	return nil
}

func randomCode(length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = codeCharset[n.Int64()]
	}
	return string(out), nil
}

func securityCodeBody(name, code string) string {
	return fmt.Sprintf(
		"Hello %s,\n\nYour security code is: %s\n\nIt expires in one hour. If you did not request it, ignore this message.\n",
		name, code)
}
