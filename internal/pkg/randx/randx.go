/*
Package randx generates cryptographically secure random identifiers.

It is used to suggest fresh meeting room names to teachers opening a new class.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// RoomChars is the alphabet of generated room names. Lowercase only, since conferencing
	// servers commonly treat room names case-insensitively in URLs.
	RoomChars = "0123456789abcdefghijklmnopqrstuvwxyz"

	// RoomNamePrefix is prepended to every generated room name.
	RoomNamePrefix = "class-"

	// RoomNameRandomLength is the number of random characters after the prefix.
	RoomNameRandomLength = 10
)

// RoomName returns a random room name such as "class-4k2m9x0qzt".
func RoomName() (string, error) {
	suffix, err := randomString(RoomChars, RoomNameRandomLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate room name: %w", err)
	}
	return RoomNamePrefix + suffix, nil
}

func randomString(alphabet string, length int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}
