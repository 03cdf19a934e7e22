package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL derives the content-addressed avatar reference for an email:
// the Gravatar URL for the md5 of the lowercased, trimmed address, sized
// 200px, pg-rated, with the mystery-man default.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
