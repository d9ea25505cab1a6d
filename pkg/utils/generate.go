package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID creates a unique record identifier from a creation timestamp and
// a random base36 suffix, e.g. "booking_1735689600123_k3j9x0q2m". The suffix
// keeps IDs unique even under near-simultaneous calls.
func GenerateID(prefix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('_')
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	sb.WriteByte('_')

	for i := 0; i < 9; i++ {
		sb.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}

	return sb.String()
}
