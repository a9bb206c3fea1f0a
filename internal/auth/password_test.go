package auth

import (
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the raw password")
	}

	if !CheckPassword(hash, "s3cret") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("not-a-hash", "s3cret") {
		t.Error("CheckPassword() accepted a malformed hash")
	}
}
