package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rolexfittings/pipestock-api/internal/application/auth"
	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/pkg/jwt"
)

const testAccessCode = "rolex-2025"

func newAuthUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAccessCode), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(string(hash), auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "pipestock-test",
	})
}

func TestLogin_CodigoCorrectoEmiteToken(t *testing.T) {
	uc := newAuthUseCase(t)

	token, err := uc.Login(testAccessCode, "Suresh")
	require.NoError(t, err)

	name, err := jwt.Parse("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "Suresh", name, "el token lleva el nombre del operador")
}

func TestLogin_CodigoIncorrecto(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login("otro-codigo", "Suresh")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SinHashConfigurado(t *testing.T) {
	uc := auth.NewUseCase("", auth.JWTConfig{Secret: "test-secret"})

	_, err := uc.Login(testAccessCode, "Suresh")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "sin hash configurado el login queda deshabilitado")
}

func TestLogin_NombreObligatorio(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(testAccessCode, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
