package httpx

import (
	"net/http"

	apperrors "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/errors"
)

// RenderError turns a service error into a response. When the request's
// Reaction carries a forced navigation (recorded by the backend
// interceptor), the response is a redirect with the toast headers attached;
// otherwise the AppError code maps to a status and a JSON body.
func RenderError(w http.ResponseWriter, r *http.Request, err error) {
	applyToast(w, r)

	if rx := ReactionFrom(r.Context()); rx != nil {
		if route, ok := rx.ForcedRoute(); ok {
			http.Redirect(w, r, route, http.StatusSeeOther)
			return
		}
	}

	WriteError(w, ErrorParams{
		Code:    statusFor(err),
		ErrCode: string(codeFor(err)),
		Err:     err,
	})
}

// applyToast copies a recorded toast into response headers.
func applyToast(w http.ResponseWriter, r *http.Request) {
	rx := ReactionFrom(r.Context())
	if rx == nil {
		return
	}
	if level, message, ok := rx.Toast(); ok {
		w.Header().Set(ToastLevelHeader, string(level))
		w.Header().Set(ToastMessageHeader, message)
	}
}

func codeFor(err error) apperrors.ErrorCode {
	if code := apperrors.GetCode(err); code != "" {
		return code
	}
	return apperrors.ErrCodeInternal
}

func statusFor(err error) int {
	switch codeFor(err) {
	case apperrors.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return 499 // client closed request
	default:
		return http.StatusInternalServerError
	}
}
