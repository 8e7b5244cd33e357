package utils

import (
	"testing"

	"backend_chiccit/pkg/config"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		12.344:  12.34,
		12.346:  12.35,
		0:       0,
		99.999:  100,
		-3.456:  -3.46,
		1234.56: 1234.56,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("password stored in plain text")
	}
	if err := ComparePassword(hash, "hunter2"); err != nil {
		t.Errorf("ComparePassword with correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: "1d",
	}

	token, err := GenerateToken("user-42", "chef@test.chiccit.app")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.ID != "user-42" {
		t.Errorf("ID = %q, want user-42", claims.ID)
	}
	if claims.Email != "chef@test.chiccit.app" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	token, err := GenerateToken("user-42", "chef@test.chiccit.app")
	if err != nil {
		t.Fatal(err)
	}

	config.AppConfig.JWTSecret = "different-secret"
	if _, err := VerifyToken(token); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}
