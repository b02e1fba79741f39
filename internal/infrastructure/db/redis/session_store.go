package redis

import (
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	// sessionTTLFallback applies to browser-lifetime sessions (MaxAge 0).
	sessionTTLFallback = 24 * time.Hour
)

var errUnsupportedValue = errors.New("session: only string keys and values are supported")

// SessionStore is a gorilla/sessions Store that keeps session values in Redis.
// The cookie carries only the signed session id.
// Key format: session:<id>
type SessionStore struct {
	client  *redis.Client
	Codecs  []securecookie.Codec
	Options *sessions.Options
}

// NewSessionStore returns a store signing session ids with keyPairs
// (see securecookie.CodecsFromPairs). opts are copied into every new session.
func NewSessionStore(client *redis.Client, opts sessions.Options, keyPairs ...[]byte) *SessionStore {
	s := &SessionStore{
		client:  client,
		Codecs:  securecookie.CodecsFromPairs(keyPairs...),
		Options: &opts,
	}
	s.MaxAge(opts.MaxAge)
	return s
}

// MaxAge sets the cookie and codec lifetime of new sessions.
func (s *SessionStore) MaxAge(age int) {
	s.Options.MaxAge = age
	for _, codec := range s.Codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}

func (s *SessionStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the session named by the request cookie, or a fresh one when the
// cookie is missing, forged, expired or points at a vanished key.
func (s *SessionStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		session.ID = ""
		return session, err
	}

	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	if !found {
		session.ID = ""
		return session, nil
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session and writes the cookie. A negative MaxAge deletes
// the Redis key and expires the cookie. An empty ID is replaced with a fresh
// random one, which is how callers rotate the id after login.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()

	if session.Options.MaxAge < 0 {
		if err := s.Delete(ctx, session.ID); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}

	payload, err := encodeValues(session.Values)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(session.ID), payload, ttlFor(session.Options.MaxAge)).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Delete removes the server-side record of session id. A missing key is not
// an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) load(ctx context.Context, session *sessions.Session) (bool, error) {
	data, err := s.client.Get(ctx, s.key(session.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("session load: %w", err)
	}

	values, err := decodeValues(data)
	if err != nil {
		return false, err
	}
	session.Values = values
	return true, nil
}

func (s *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}

func ttlFor(maxAge int) time.Duration {
	if maxAge <= 0 {
		return sessionTTLFallback
	}
	return time.Duration(maxAge) * time.Second
}

func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

func encodeValues(values map[interface{}]interface{}) ([]byte, error) {
	flat := make(map[string]string, len(values))
	for k, v := range values {
		ks, ok := k.(string)
		if !ok {
			return nil, errUnsupportedValue
		}
		vs, ok := v.(string)
		if !ok {
			return nil, errUnsupportedValue
		}
		flat[ks] = vs
	}
	return json.Marshal(flat)
}

func decodeValues(data []byte) (map[interface{}]interface{}, error) {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	values := make(map[interface{}]interface{}, len(flat))
	for k, v := range flat {
		values[k] = v
	}
	return values, nil
}
