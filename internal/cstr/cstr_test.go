package cstr

import (
	"errors"
	"testing"
)

func TestBytes(t *testing.T) {
	got, err := Bytes("void main(){}")
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if want := "void main(){}\x00"; string(got) != want {
		t.Errorf("Bytes() = %q, want %q", got, want)
	}
}

func TestBytesEmpty(t *testing.T) {
	got, err := Bytes("")
	if err != nil {
		t.Fatalf("Bytes(\"\") error = %v", err)
	}
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Bytes(\"\") = %v, want [0]", got)
	}
}

func TestBytesInteriorNul(t *testing.T) {
	_, err := Bytes("void\x00main")
	if !errors.Is(err, ErrInteriorNul) {
		t.Fatalf("Bytes() error = %v, want ErrInteriorNul", err)
	}
	var nerr *NulError
	if !errors.As(err, &nerr) {
		t.Fatalf("Bytes() error = %T, want *NulError", err)
	}
	if nerr.Pos != 4 {
		t.Errorf("NulError.Pos = %d, want 4", nerr.Pos)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    string
		wantErr error
	}{
		{"ascii", []byte("hello\x00"), "hello", nil},
		{"utf8", []byte("héllo ✓\x00"), "héllo ✓", nil},
		{"only terminator", []byte{0}, "", nil},
		{"empty", nil, "", ErrMissingTerminator},
		{"no terminator", []byte("hello"), "", ErrMissingTerminator},
		{"interior nul", []byte("he\x00llo\x00"), "", ErrMissingTerminator},
		{"trailing garbage", []byte("hello\x00xx"), "", ErrMissingTerminator},
		{"invalid utf8", []byte{'a', 0xff, 'b', 0}, "", ErrInvalidUTF8},
		{"truncated rune", []byte{'a', 0xe2, 0x9c, 0}, "", ErrInvalidUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("String(%q) error = %v, want %v", tt.buf, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.buf, got, tt.want)
			}
		})
	}
}
