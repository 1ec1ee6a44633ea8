package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Aegis@123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Aegis@123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "Aegis@123") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password must not verify")
	}
}

func TestCheckPasswordBadHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("malformed hash must not verify")
	}
}
