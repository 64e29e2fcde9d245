package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits      = "0123456789"
)

func randomString(alphabet string, n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	size := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[num.Int64()])
	}
	return sb.String(), nil
}

// GeneratePassword returns a random alphanumeric password of length n.
func GeneratePassword(n int) (string, error) {
	return randomString(base62Chars, n)
}

// GenerateNumericCode returns n random digits, used for verification codes.
func GenerateNumericCode(n int) (string, error) {
	return randomString(digits, n)
}
