package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal es la identidad autenticada que viaja dentro del token.
// EmpresaID solo aplica a usuarios cliente; el personal interno no pertenece a una empresa.
type Principal struct {
	ID        int64
	Email     string
	Rol       string
	EmpresaID *int64
}

// Claims incluye los claims estándar JWT más los campos propios del portal.
// Rol viaja en el token para que el middleware de capacidades decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Rol       string `json:"rol"` // "admin" | "rh" | "user" | "cliente"
	EmpresaID *int64 `json:"empresa_id,omitempty"`
}

// Principal devuelve la identidad contenida en los claims.
func (c *Claims) Principal() Principal {
	return Principal{ID: c.ID, Email: c.Email, Rol: c.Rol, EmpresaID: c.EmpresaID}
}

// Generate genera un token JWT HS256 firmado para el principal indicado.
func Generate(secret string, p Principal, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(p.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		ID:        p.ID,
		Email:     p.Email,
		Rol:       p.Rol,
		EmpresaID: p.EmpresaID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
