package service

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret" || hash == "" {
		t.Fatalf("expected a hash, got %q", hash)
	}
	if !CheckPassword("s3cret", hash) {
		t.Fatalf("correct password did not verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_Unique(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash 1: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("hash 2: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("anything", "") {
		t.Fatalf("empty hash verified")
	}
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
}
