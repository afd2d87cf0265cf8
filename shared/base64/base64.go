package base64

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid base64 data uri")

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a data URI into its content type and decoded payload.
func Decode(file string) (string, []byte, error) {
	contentType := GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURI
	}

	payload := file[strings.Index(file, ";base64,")+len(";base64,"):]

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURI, err)
	}

	return contentType, data, nil
}
