package picture

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"profile-service/internal/domain/profile"
)

const jpegContentType = "image/jpeg"

// DecodeJPEG decodes a base64 picture, optionally wrapped in a data URL,
// and rejects anything that does not sniff as JPEG.
func DecodeJPEG(data string) ([]byte, error) {
	raw := strings.TrimSpace(data)
	if strings.HasPrefix(raw, "data:") {
		i := strings.Index(raw, ",")
		if i < 0 {
			return nil, fmt.Errorf("%w: malformed data url", profile.ErrInvalidPicture)
		}
		raw = raw[i+1:]
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: empty payload", profile.ErrInvalidPicture)
	}

	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", profile.ErrInvalidPicture, err)
		}
	}

	if ct := http.DetectContentType(b); ct != jpegContentType {
		return nil, fmt.Errorf("%w: expected %s, got %s", profile.ErrInvalidPicture, jpegContentType, ct)
	}
	return b, nil
}

// cleanName keeps only the base name so a stored reference can never
// address anything outside the store root.
func cleanName(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("invalid picture name %q", name)
	}
	return base, nil
}
