package auth

import "testing"

func TestHashPassword_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("generate salt: %v", err)
	}

	h1, err := HashPassword("s3cret", salt)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("s3cret", salt)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("same password and salt produced different hashes")
	}
	if h1 == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	s1, _ := GenerateSalt()
	s2, _ := GenerateSalt()
	if s1 == s2 {
		t.Fatalf("two generated salts are identical")
	}

	h1, _ := HashPassword("s3cret", s1)
	h2, _ := HashPassword("s3cret", s2)
	if h1 == h2 {
		t.Fatalf("different salts produced the same hash")
	}
}

func TestHashPassword_MalformedSalt(t *testing.T) {
	if _, err := HashPassword("pass", "!!not-base64!!"); err != ErrMalformedSalt {
		t.Fatalf("expected ErrMalformedSalt, got %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, _ := GenerateSalt()
	hash, _ := HashPassword("correct horse", salt)

	if !VerifyPassword("correct horse", salt, hash) {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword("battery staple", salt, hash) {
		t.Fatalf("wrong password accepted")
	}
	if VerifyPassword("correct horse", "!!bad!!", hash) {
		t.Fatalf("malformed salt accepted")
	}
}

func TestVerifyPassword_EmptyPassword(t *testing.T) {
	// Empty plaintext is a legal credential; only the hash comparison decides.
	salt, _ := GenerateSalt()
	hash, _ := HashPassword("", salt)

	if !VerifyPassword("", salt, hash) {
		t.Fatalf("empty password did not round-trip")
	}
	if VerifyPassword("x", salt, hash) {
		t.Fatalf("non-empty password matched empty credential")
	}
}
