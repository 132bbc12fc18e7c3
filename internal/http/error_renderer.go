package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// invalidCredentialsMessage is the exact denial message the login screen
// shows; the client renders it verbatim.
const invalidCredentialsMessage = "Usuário ou senha inválidos."

// errNotFound renders delete misses that report (false, nil) rather
// than a typed error.
var errNotFound = errors.New("resource not found")

// WriteAppError maps an application error to its HTTP rendering. Rejected
// credentials always surface the same message regardless of cause, so the
// response never leaks whether the email or the senha was wrong.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	if code == apperrors.ErrCodeUnauthorized {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: string(code),
			Err:     errors.New(invalidCredentialsMessage),
		})
		return
	}

	WriteError(w, ErrorParams{Code: statusForCode(code, err), ErrCode: string(code), Err: publicError(code, err)})
}

func statusForCode(code apperrors.ErrorCode, err error) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		return http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	default:
		if errors.Is(err, context.Canceled) {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}
}

// publicError keeps internal error detail out of responses.
func publicError(code apperrors.ErrorCode, err error) error {
	if code == apperrors.ErrCodeInternal {
		return errors.New("internal server error")
	}
	return err
}
