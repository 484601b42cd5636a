package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/hearttrack/internal/common"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{common.ErrorAlreadyExists, http.StatusConflict},
	{common.ErrorInvalidCredentials, http.StatusUnauthorized},
	{common.ErrorUnauthorized, http.StatusUnauthorized},
	{common.ErrorForbidden, http.StatusForbidden},
	{common.ErrorMissingCredentials, http.StatusBadRequest},
	{common.ErrorInvalidRole, http.StatusBadRequest},
	{common.ErrorHeartRateRange, http.StatusBadRequest},
	{common.ErrorThresholdRange, http.StatusBadRequest},
	{common.ErrorArchiveDisabled, http.StatusServiceUnavailable},
}

// statusFor maps a service error to its HTTP status and the message shown
// to the user. Anything unknown is a 500 with a generic message.
func statusFor(err error) (int, string) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
