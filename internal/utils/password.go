package utils

import (
    "errors"

    "golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword bcrypts plain. bcrypt only reads the first 72 bytes; longer
// inputs are rejected by the library.
func HashPassword(plain string) (string, error) {
    if plain == "" {
        return "", ErrEmptyPassword
    }
    hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
    if hashed == "" {
        return false
    }
    return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
