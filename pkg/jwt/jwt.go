package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de principal que puede portar un token: una empresa o un postulante.
const (
	PrincipalEmpresa    = "empresa"
	PrincipalPostulante = "postulante"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// PrincipalType permite al middleware decidir el tipo de actor sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	PrincipalID   string `json:"principal_id"`
	PrincipalType string `json:"principal_type"` // "empresa" | "postulante"
}

// Generate genera un token JWT firmado para el principal indicado.
func Generate(secret, principalID, principalType, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		PrincipalID:   principalID,
		PrincipalType: principalType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el ID y tipo del principal.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (principalID, principalType string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.PrincipalID, claims.PrincipalType, nil
}
