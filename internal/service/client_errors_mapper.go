// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/StyNW7/WhatsVUpp-V99/internal/adapter"
)

// mapAdapterError turns adapter transport errors into the client's service
// errors. Only a rejected request keeps the server's explanation; errors it
// does not recognise pass through unchanged.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, serverMessage(err, adapter.ErrBadRequest))
	case errors.Is(err, adapter.ErrNotFound):
		return ErrCipherEndpointMissing
	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	default:
		return err
	}
}

// serverMessage strips the "<sentinel>: " prefix the adapter adds.
func serverMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
