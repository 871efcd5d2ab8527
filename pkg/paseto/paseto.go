package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"github.com/Sujal2120/DailyFlow/models"
)

// Claims is the session identity carried by every authenticated request.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Maker struct {
	instance     *paseto.V2
	symmetricKey []byte
}

// NewMaker builds a token maker from a base64 URL-encoded secret. PASETO
// v2 local requires the decoded key to be exactly 32 bytes.
func NewMaker(secretBase64 string) (*Maker, error) {
	decodedKey, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		decodedKey, err = base64.StdEncoding.DecodeString(secretBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode PASETO secret: %w", err)
		}
	}

	if len(decodedKey) != 32 {
		return nil, fmt.Errorf("PASETO secret must be exactly 32 bytes after decoding, got %d", len(decodedKey))
	}

	return &Maker{
		instance:     paseto.NewV2(),
		symmetricKey: decodedKey,
	}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	token.Set("user_id", user.ID)
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.instance.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.instance.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	claims := &Claims{
		UserID: token.Get("user_id"),
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token is missing the user_id claim")
	}

	return claims, nil
}
