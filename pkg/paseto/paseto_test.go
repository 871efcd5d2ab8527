package paseto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sujal2120/DailyFlow/models"
	util "github.com/Sujal2120/DailyFlow/pkg/utils"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret, err := util.GenerateBase64Key(32)
	require.NoError(t, err)

	maker, err := NewMaker(secret)
	require.NoError(t, err)

	user := &models.User{ID: "01HZX", Email: "sujal@dayflow.com", Role: models.RoleEmployee}
	token, err := maker.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Role, claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	secret, err := util.GenerateBase64Key(32)
	require.NoError(t, err)

	maker, err := NewMaker(secret)
	require.NoError(t, err)

	_, err = maker.ValidateToken("v2.local.not-a-real-token")
	require.Error(t, err)
}

func TestNewMaker_RejectsShortKey(t *testing.T) {
	_, err := NewMaker("dG9vc2hvcnQ=") // "tooshort"
	require.Error(t, err)
}
