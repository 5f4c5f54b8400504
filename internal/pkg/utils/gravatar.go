package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GetGravatarURL returns the Gravatar avatar URL for an email address. The
// address is hashed after the trim-and-lowercase normalization Gravatar
// prescribes, so differently cased spellings resolve to the same avatar. A
// non-positive size falls back to 200px.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
