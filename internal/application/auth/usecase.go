package auth

import (
	"strings"

	"github.com/rolexfittings/pipestock-api/internal/domain"
	"github.com/rolexfittings/pipestock-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase implementa el acceso compartido del almacén: un código de acceso
// único (hash bcrypt en configuración) se intercambia por un JWT. El núcleo
// del libro trata el control de acceso como colaborador externo; esto es
// deliberadamente mínimo.
type UseCase struct {
	accessCodeHash string
	jwtCfg         JWTConfig
}

// NewUseCase construye el caso de uso de acceso.
func NewUseCase(accessCodeHash string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{accessCodeHash: accessCodeHash, jwtCfg: jwtCfg}
}

// Login compara el código de acceso contra el hash configurado y emite un
// token con el nombre del operador.
func (uc *UseCase) Login(accessCode, name string) (string, error) {
	if uc.accessCodeHash == "" {
		return "", domain.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidInput
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.accessCodeHash), []byte(accessCode)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
