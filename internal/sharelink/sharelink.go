// Package sharelink builds short recipe links and account-link tokens.
//
// Recipe short codes are base62-encoded recipe IDs carrying an "r-" prefix.
// Account-link tokens are short-lived HS256 JWTs binding a Telegram chat to
// a registered user.
package sharelink

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const codePrefix = "r-"

// EncodeRecipeID turns a recipe ID into a short code such as "r-3D7".
func EncodeRecipeID(id int64) string {
	if id == 0 {
		return codePrefix + "0"
	}
	var b strings.Builder
	for id > 0 {
		b.WriteByte(base62Alphabet[id%62])
		id /= 62
	}
	s := []byte(b.String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return codePrefix + string(s)
}

// DecodeRecipeCode parses a short code back into a recipe ID. The "r-"
// prefix is optional on input.
func DecodeRecipeCode(code string) (int64, error) {
	code = strings.TrimPrefix(code, codePrefix)
	if code == "" {
		return 0, fmt.Errorf("empty short code")
	}
	var id int64
	for _, r := range code {
		idx := strings.IndexRune(base62Alphabet, r)
		if idx < 0 {
			return 0, fmt.Errorf("invalid character %q in short code", r)
		}
		id = id*62 + int64(idx)
	}
	return id, nil
}

// RecipeURL joins a short code onto the configured base URL.
func RecipeURL(baseURL string, recipeID int64) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + EncodeRecipeID(recipeID)
}

// Tokens issues and verifies account-link tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens creates a Tokens helper with the given signing secret.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue mints a short-lived token for the given user.
func (t *Tokens) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
		"aud": "account-link",
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign account-link token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the user ID it was issued for. Expired
// or tampered tokens are rejected.
func (t *Tokens) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithAudience("account-link"), jwt.WithExpirationRequired())
	if err != nil {
		return 0, fmt.Errorf("invalid account-link token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("account-link token has no subject: %w", err)
	}
	var userID int64
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID <= 0 {
		return 0, fmt.Errorf("account-link token has invalid subject %q", sub)
	}
	return userID, nil
}
