package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	errImageTooLarge   = errors.New("image upload too large")
	errQuestionMissing = errors.New("question missing")
	errQuestionBlank   = errors.New("question blank")
	errQuestionType    = errors.New("question not a string")
)

// readImageField returns the bytes of the multipart "image" field.
func readImageField(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) ([]byte, error) {
	if r.ContentLength > maxUploadBytes {
		return nil, errImageTooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errImageTooLarge
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, fmt.Errorf("failed to read image field: %w", err)
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// parseQuestion pulls the "question" string out of a JSON body.
func parseQuestion(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errQuestionMissing
	}

	question := gjson.GetBytes(body, "question")
	switch {
	case !question.Exists():
		return "", errQuestionMissing
	case question.Type == gjson.Null:
		return "", errQuestionBlank
	case question.Type != gjson.String:
		return "", errQuestionType
	case strings.TrimSpace(question.String()) == "":
		return "", errQuestionBlank
	}

	return question.String(), nil
}
