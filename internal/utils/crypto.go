package utils

import (
    "crypto/sha256"
    "encoding/hex"
    "strings"
)

func SHA256Hex(s string) string {
    h := sha256.Sum256([]byte(s))
    return hex.EncodeToString(h[:])
}

// Fingerprint is a short, case-insensitive digest used to correlate log lines
// without writing the raw value (e.g. an email address).
func Fingerprint(s string) string {
    s = strings.ToLower(strings.TrimSpace(s))
    if s == "" {
        return "-"
    }
    return SHA256Hex(s)[:12]
}
