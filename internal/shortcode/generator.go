// Package shortcode генерирует случайные короткие идентификаторы ссылок.
package shortcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Alphabet 62 символа: строчные, прописные латинские буквы и цифры.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	DefaultLength = 6 // Длина кода по умолчанию
	MaxLength     = 8 // Максимальная длина кода, до которой допускается расширение
)

var ErrInvalidLength = errors.New("invalid short code length")

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// Generator генерирует коды равномерно по алфавиту, используя crypto/rand.
type Generator struct{}

// New создает генератор.
func New() *Generator {
	return &Generator{}
}

// Generate возвращает случайный код заданной длины.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate random number: %w", err)
		}
		b[i] = Alphabet[num.Int64()]
	}
	return string(b), nil
}

// IsValid проверяет, может ли строка быть коротким кодом: длина от DefaultLength до MaxLength,
// только символы алфавита.
func IsValid(code string) bool {
	if len(code) < DefaultLength || len(code) > MaxLength {
		return false
	}
	for _, r := range code {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
