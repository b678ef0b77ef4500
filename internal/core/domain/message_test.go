package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"00000001", false},
		{"\x00\x01\x02\x03\x04\x05\x06\x07", false},
		{"0001", true},
		{"", true},
		{"000000001", true},
		{"é0000000", false},
		{"日本語キー12345", true},
		{"日本語のキー12", false},
	}

	for _, tt := range tests {
		err := ValidateKey(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidateKey(%q) error = %v, want ErrInvalidArgument", tt.key, err)
		}
	}
}

func TestValidateMessage(t *testing.T) {
	if err := ValidateMessage(""); err != nil {
		t.Errorf("ValidateMessage(empty) error = %v", err)
	}
	if err := ValidateMessage(strings.Repeat("x", MaxMessageSize)); err != nil {
		t.Errorf("ValidateMessage(max) error = %v", err)
	}
	err := ValidateMessage(strings.Repeat("x", MaxMessageSize+1))
	if !errors.Is(err, ErrValueTooLong) {
		t.Errorf("ValidateMessage(max+1) error = %v, want ErrValueTooLong", err)
	}
}

func TestValidateMessage_CountsCharacters(t *testing.T) {
	if err := ValidateMessage(strings.Repeat("é", MaxMessageSize)); err != nil {
		t.Errorf("ValidateMessage(%d two-byte chars) error = %v", MaxMessageSize, err)
	}
	if err := ValidateMessage(strings.Repeat("é", MaxMessageSize+1)); !errors.Is(err, ErrValueTooLong) {
		t.Errorf("ValidateMessage(%d two-byte chars) error = %v, want ErrValueTooLong", MaxMessageSize+1, err)
	}
}

func TestSplitKey_Multibyte(t *testing.T) {
	tests := []struct {
		payload  string
		wantKey  string
		wantRest string
		wantErr  error
	}{
		{"é0000000hello", "é0000000", "hello", nil},
		{"日本語のキー12メッセージ", "日本語のキー12", "メッセージ", nil},
		{"é0000000", "é0000000", "", nil},
		{"é000000", "", "", ErrKeyTooShort},
		{"\xff0000000x", "\xff0000000", "x", nil},
	}

	for _, tt := range tests {
		key, rest, err := SplitKey(tt.payload)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("SplitKey(%q) error = %v, want %v", tt.payload, err, tt.wantErr)
			continue
		}
		if key != tt.wantKey || rest != tt.wantRest {
			t.Errorf("SplitKey(%q) = (%q, %q), want (%q, %q)", tt.payload, key, rest, tt.wantKey, tt.wantRest)
		}
	}
}

func TestSplitKey(t *testing.T) {
	key, rest, err := SplitKey("00000001hello")
	if err != nil {
		t.Fatalf("SplitKey() error = %v", err)
	}
	if key != "00000001" || rest != "hello" {
		t.Errorf("SplitKey() = (%q, %q), want (%q, %q)", key, rest, "00000001", "hello")
	}

	key, rest, err = SplitKey("00000001")
	if err != nil || key != "00000001" || rest != "" {
		t.Errorf("SplitKey(exact) = (%q, %q, %v)", key, rest, err)
	}

	if _, _, err := SplitKey("0001"); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("SplitKey(short) error = %v, want ErrKeyTooShort", err)
	}
}
