package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(tokenCharset))))
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}

// GenerateMFACode returns a 6-digit numeric code.
func GenerateMFACode() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1000000))
	return fmt.Sprintf("%06d", n.Int64())
}
