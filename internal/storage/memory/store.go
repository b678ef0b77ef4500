package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yndnr/msgserver-go/internal/core/domain"
)

// PutPolicy decides what Put does when the key already holds a message.
type PutPolicy string

const (
	// PolicyOverwrite replaces the existing message (last write wins).
	PolicyOverwrite PutPolicy = "overwrite"
	// PolicyReject keeps the existing message and reports it (first write wins).
	PolicyReject PutPolicy = "reject"
)

// ParsePutPolicy converts a configuration string into a PutPolicy.
// An empty string selects PolicyOverwrite.
func ParsePutPolicy(s string) (PutPolicy, error) {
	switch PutPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyOverwrite:
		return PolicyOverwrite, nil
	case PolicyReject:
		return PolicyReject, nil
	default:
		return "", domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown put policy %q", s))
	}
}

// Store is the shared key -> message map.
type Store struct {
	mu       sync.Mutex
	messages map[string]string
	policy   PutPolicy
}

// Option configures the Store.
type Option func(*Store)

// WithPutPolicy sets the overwrite behavior of Put.
func WithPutPolicy(p PutPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		messages: make(map[string]string),
		policy:   PolicyOverwrite,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Policy returns the configured put policy.
func (s *Store) Policy() PutPolicy {
	return s.policy
}

// Put stores msg under key.
//
// Under PolicyReject an occupied key is left untouched; Put then returns the
// message already stored together with domain.ErrKeyExists. The existence
// check and the insert happen under one lock acquisition.
func (s *Store) Put(key, msg string) (string, error) {
	if err := domain.ValidateKey(key); err != nil {
		return "", err
	}
	if err := domain.ValidateMessage(msg); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == PolicyReject {
		if existing, ok := s.messages[key]; ok {
			return existing, domain.ErrKeyExists
		}
	}
	s.messages[key] = msg
	return "", nil
}

// Get returns the message stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.messages[key]
	return msg, ok
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
