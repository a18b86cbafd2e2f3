package crypto

import "encoding/base64"

// b64 returns standard base64 encoding without newlines.
func b64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// unb64 decodes standard base64.
func unb64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
