package generator

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRandomID returns a crypto-random alphanumeric id, used for
// user ids minted at provisioning time.
func GenerateRandomID(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		result[i] = alphabet[randomIndex.Int64()]
	}

	return string(result), nil
}
