package auth

import "testing"

func TestHashAndVerifyPIN(t *testing.T) {
	// Low cost keeps the test fast; verification behavior is identical.
	hash, err := HashPIN("482913", 4)
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}
	if hash == "482913" {
		t.Fatal("hash must not equal the raw pin")
	}

	if !VerifyPIN("482913", hash) {
		t.Fatal("expected matching pin to verify")
	}
	if VerifyPIN("000000", hash) {
		t.Fatal("expected non-matching pin to fail verification")
	}
}

func TestHashPINFreshSalt(t *testing.T) {
	first, err := HashPIN("482913", 4)
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}
	second, err := HashPIN("482913", 4)
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same pin must differ (fresh salt per call)")
	}
	if !VerifyPIN("482913", first) || !VerifyPIN("482913", second) {
		t.Fatal("both hashes must still verify the original pin")
	}
}

func TestVerifyPINGarbageHash(t *testing.T) {
	if VerifyPIN("482913", "not-a-bcrypt-hash") {
		t.Fatal("expected verification against garbage hash to fail")
	}
}
