package domain

import (
	"strconv"
	"unicode/utf8"
)

const (
	// KeySize is the exact width of every key, in characters.
	KeySize = 8
	// MaxMessageSize is the largest message a key may hold, in characters.
	MaxMessageSize = 160
)

// Lengths are counted in characters (runes). A byte that is not valid
// UTF-8 counts as one character.

// ValidateKey checks that key is exactly KeySize characters.
func ValidateKey(key string) error {
	if n := utf8.RuneCountInString(key); n != KeySize {
		return ErrInvalidArgument.WithDetails("key must be " + strconv.Itoa(KeySize) + " characters, got " + strconv.Itoa(n))
	}
	return nil
}

// ValidateMessage checks that msg fits in MaxMessageSize characters.
// An empty message is valid.
func ValidateMessage(msg string) error {
	if n := utf8.RuneCountInString(msg); n > MaxMessageSize {
		return ErrValueTooLong.WithDetails(strconv.Itoa(n) + " characters")
	}
	return nil
}

// SplitKey splits a command payload into its leading KeySize characters
// and the rest. It returns ErrKeyTooShort when payload cannot hold a full key.
func SplitKey(payload string) (key, rest string, err error) {
	n := 0
	for i := range payload {
		if n == KeySize {
			return payload[:i], payload[i:], nil
		}
		n++
	}
	if n == KeySize {
		return payload, "", nil
	}
	return "", "", ErrKeyTooShort
}
