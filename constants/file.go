package constants

import "strings"

// BucketName is the storage bucket audit documents are uploaded to.
const BucketName = "audit-files"

// MaxUploadBytes is the per-file size cap enforced before any I/O.
const MaxUploadBytes = 10 * 1024 * 1024

// AllowedMIMETypes holds the content types accepted for intake documents.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// AllowedMIMEList returns the allow-list as a slice, for bucket provisioning.
func AllowedMIMEList() []string {
	return []string{"application/pdf", "image/jpeg", "image/png"}
}

// MIMEAllowed reports whether a content type is accepted for upload.
func MIMEAllowed(contentType string) bool {
	_, ok := AllowedMIMETypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ok
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
