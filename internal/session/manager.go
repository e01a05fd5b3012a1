// Package session implements server-side login sessions. The session record
// lives in Redis under a random identifier; the client holds only a signed
// token carrying that identifier, so the cookie cannot be forged or used to
// read session contents.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

// CookieName is the cookie the signed session token travels in.
const CookieName = "job_tracker_session"

var ErrNoSession = errors.New("no active session")

// Session is the server-side state a valid token resolves to.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type Manager struct {
	client *redisv9.Client
	secret []byte
	ttl    time.Duration
}

func NewManager(client *redisv9.Client, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		client: client,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Start stores a fresh session in Redis and returns the signed token to hand
// to the client.
func (m *Manager) Start(ctx context.Context, userID uint, username string) (string, error) {
	sid := uuid.NewString()
	payload, err := json.Marshal(Session{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("marshal session failed: %w", err)
	}
	if err := m.client.Set(ctx, m.key(sid), payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session failed: %w", err)
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token failed: %w", err)
	}
	return token, nil
}

// Validate resolves a signed token to its session. Any failure along the way
// (bad signature, expired token, evicted Redis key) is ErrNoSession; callers
// never learn which.
func (m *Manager) Validate(ctx context.Context, token string) (*Session, error) {
	sid, err := m.parse(token)
	if err != nil {
		return nil, ErrNoSession
	}

	raw, err := m.client.Get(ctx, m.key(sid)).Result()
	if err == redisv9.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session failed: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &sess, nil
}

// End deletes the session behind the token. Unparseable tokens and already
// ended sessions are not errors; logout is idempotent.
func (m *Manager) End(ctx context.Context, token string) error {
	sid, err := m.parse(token)
	if err != nil {
		return nil
	}
	if err := m.client.Del(ctx, m.key(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

// CookieMaxAge is the session TTL in whole seconds, for Set-Cookie.
func (m *Manager) CookieMaxAge() int {
	return int(m.ttl.Seconds())
}

func (m *Manager) parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("missing session id claim")
	}
	return claims.Subject, nil
}

func (m *Manager) key(sid string) string {
	return "session:" + sid
}
