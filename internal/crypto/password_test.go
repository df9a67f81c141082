// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$") {
		t.Fatalf("unexpected hash prefix: %s", encoded)
	}
	if parts := strings.Split(encoded, "$"); len(parts) != 6 {
		t.Fatalf("hash has %d parts, want 6", len(parts))
	}
}

func TestHash_SaltIsRandom(t *testing.T) {
	h := NewPasswordHasher()

	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("correct horse battery staple", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Verify("wrong", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestVerify_UsesStoredParameters(t *testing.T) {
	cheap := &argonHasher{argonTime: 2, argonMemory: 8 * 1024, argonThreads: 1, argonKeyLen: 16}

	encoded, err := cheap.Hash("pw")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher().Verify("pw", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify with other parameters = %v, %v; want true, nil", ok, err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	h := NewPasswordHasher()

	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
	} {
		if _, err := h.Verify("pw", encoded); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("Verify(%q) error = %v, want ErrMalformedHash", encoded, err)
		}
	}
}
