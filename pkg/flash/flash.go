// Package flash carries one-shot user messages across a redirect in a signed
// cookie. The cookie value is an HS256 JWT so it cannot be forged or edited
// without the site secret.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "flash"
	// Expiry bounds how long an unread message survives.
	Expiry = 5 * time.Minute

	CategorySuccess = "success"
	CategoryError   = "error"
)

// Message is one flashed notice. Category is "success" or "error".
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

func Success(text string) Message { return Message{Category: CategorySuccess, Text: text} }
func Error(text string) Message   { return Message{Category: CategoryError, Text: text} }

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies with the site secret.
type Store struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewStore creates a flash store. secure marks the cookie HTTPS-only.
func NewStore(secret string, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		secure: secure,
		now:    time.Now,
	}
}

// Add appends messages to any already pending in the request's cookie.
func (s *Store) Add(c *gin.Context, msgs ...Message) error {
	pending := s.read(c)
	return s.write(c, append(pending, msgs...))
}

// Pop returns pending messages and clears the cookie.
func (s *Store) Pop(c *gin.Context) []Message {
	msgs := s.read(c)
	if _, err := c.Cookie(CookieName); err == nil {
		s.setCookie(c, "", -1)
	}
	return msgs
}

func (s *Store) read(c *gin.Context) []Message {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	msgs, err := s.decode(raw)
	if err != nil {
		// Stale or tampered cookies are dropped silently
		return nil
	}
	return msgs
}

func (s *Store) write(c *gin.Context, msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}
	token, err := s.encode(msgs)
	if err != nil {
		return err
	}
	s.setCookie(c, token, int(Expiry.Seconds()))
	return nil
}

func (s *Store) encode(msgs []Message) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Expiry)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign flash cookie: %w", err)
	}
	return signed, nil
}

func (s *Store) decode(raw string) ([]Message, error) {
	var parsed claims
	token, err := jwt.ParseWithClaims(raw, &parsed, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid flash token")
	}
	return parsed.Messages, nil
}

func (s *Store) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		CookieName,
		value,
		maxAge,
		"/",
		"",       // Domain (empty = current domain)
		s.secure, // Secure (HTTPS only in production)
		true,     // HttpOnly
	)
}
