package utils_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/JavCast03/proyectoGSASD/utils"
)

func TestCheckPasswordHash(t *testing.T) {
	password := "SecurePass123!"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate password hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Valid password should match hash",
			password: password,
			hash:     string(hash),
			want:     true,
		},
		{
			name:     "Invalid password should not match hash",
			password: "WrongPassword123!",
			hash:     string(hash),
			want:     false,
		},
		{
			name:     "Empty password should not match hash",
			password: "",
			hash:     string(hash),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CheckPasswordHash(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("Contraseña123!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Contraseña123!" {
		t.Error("HashPassword() returned the plaintext password")
	}
	if !utils.CheckPasswordHash("Contraseña123!", hash) {
		t.Error("CheckPasswordHash() rejected the password it was hashed from")
	}
}
