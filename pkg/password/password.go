package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Símbolos aceptados por la política de contraseñas.
const allowedSymbols = "!@#$&*"

// Hash genera un hash bcrypt (salt aleatorio incluido en el digest).
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara una contraseña en claro contra un digest bcrypt.
// Devuelve false ante cualquier mismatch o digest malformado; nunca propaga pánico.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

// ValidatePolicy verifica la política: 8-16 caracteres, al menos una mayúscula
// y al menos un símbolo de allowedSymbols. Devuelve false si no cumple.
func ValidatePolicy(plain string) bool {
	if len(plain) < 8 || len(plain) > 16 {
		return false
	}
	var hasUpper, hasSymbol bool
	for _, r := range plain {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(allowedSymbols, r):
			hasSymbol = true
		}
	}
	return hasUpper && hasSymbol
}
