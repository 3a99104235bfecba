//go:build ignore

// This script generates the secrets used by the label service.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/label-service/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	fmt.Println("=== Label Service Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits, the HS256 key size
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("JWT secret", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fail("API key hash", err)
	}

	token, err := service.NewTokenService(jwtSecret).GenerateToken("local-dev", 24*time.Hour)
	if err != nil {
		fail("sample token", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# Store the hash on the server and hand the key to the client")
	fmt.Printf("API_KEYS=%s\n", hash)
	fmt.Println()
	fmt.Println("Client credentials:")
	fmt.Printf("  X-API-Key: %s\n", apiKey)
	fmt.Printf("  Authorization: Bearer %s   (expires in 24h)\n", token)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- EASYPOST_API_KEY is issued by EasyPost and is not generated here")
}
