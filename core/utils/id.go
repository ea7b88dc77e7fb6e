package utils

import (
	"fmt"
	"strings"

	"romantic-api/core/constants"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// UploadFileName builds a collision-safe disk name for an uploaded file,
// e.g. "picnic-en-la-playa-x4F9dwQ2p.jpg".
func UploadFileName(title, ext string) string {
	id, err := gonanoid.Generate(idAlphabet, constants.UploadFileIDLength)
	if err != nil {
		id = GenerateID()
	}

	base := slug.Make(title)
	if base == "" {
		base = "photo"
	}

	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return fmt.Sprintf("%s-%s%s", base, id, ext)
}
