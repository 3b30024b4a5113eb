// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/utils"
	"github.com/StyNW7/WhatsVUpp-V99/models"
)

// maxEncryptBodyBytes caps the request body accepted by POST /encrypt.
const maxEncryptBodyBytes = 2 << 20

const passwordField = "password"

// encryptRequestBody distinguishes an absent "password" field from an empty
// one; the latter is a valid secret.
type encryptRequestBody struct {
	Password *string `json:"password"`
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeEncryptRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Msg("rejected encrypt request")

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteText(w, ErrRequestBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		utils.WriteText(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := h.services.CipherService.Encrypt(r.Context(), req)

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error writing response")
	}
}

func decodeEncryptRequest(w http.ResponseWriter, r *http.Request) (models.EncryptionRequest, error) {
	if !isJSONContentType(r.Header.Get("Content-Type")) {
		return models.EncryptionRequest{}, ErrUnsupportedContentType
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEncryptBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.EncryptionRequest{}, err
		}
		return models.EncryptionRequest{}, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	// encoding/json would silently replace bad bytes with U+FFFD and encrypt
	// a different secret than the one sent
	if !utf8.Valid(raw) {
		return models.EncryptionRequest{}, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidJSON)
	}

	if err = checkDuplicatePassword(raw); err != nil {
		return models.EncryptionRequest{}, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))

	var body encryptRequestBody
	if err = decoder.Decode(&body); err != nil {
		return models.EncryptionRequest{}, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}
	if err = decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.EncryptionRequest{}, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidJSON)
	}

	if body.Password == nil {
		return models.EncryptionRequest{}, ErrMissingPassword
	}

	return models.EncryptionRequest{Password: *body.Password}, nil
}

// checkDuplicatePassword walks the keys of a top-level JSON object and fails
// when more than one of them maps to the password field. encoding/json
// matches keys case-insensitively and keeps the last value. Anything that
// is not a well-formed object is left for the decoder to report.
func checkDuplicatePassword(raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	if tok, err := decoder.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	seen := false
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil
		}

		if strings.EqualFold(key, passwordField) {
			if seen {
				return ErrDuplicatePassword
			}
			seen = true
		}

		var skip json.RawMessage
		if err = decoder.Decode(&skip); err != nil {
			return nil
		}
	}

	return nil
}

// isJSONContentType accepts application/json and any +json media type.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
