package security

import (
	"net/http"
	"strings"
)

// APIPrefix marks programmatic requests that expect JSON envelopes.
const APIPrefix = "/api/"

// Interactive failure destinations.
const (
	LoginPath        = "/login"
	AccessDeniedPath = "/access-denied"
	ErrorTemplate    = "error"
)

// Failure 請求失敗的種類
type Failure int

const (
	Unauthenticated Failure = iota
	Forbidden
	NotFound
	UnhandledFault
)

func (f Failure) String() string {
	switch f {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case UnhandledFault:
		return "unhandled_fault"
	}
	return "unknown"
}

// FailureForDecision maps a deny decision to its failure kind.
func FailureForDecision(d Decision) (Failure, bool) {
	switch d {
	case DenyUnauthenticated:
		return Unauthenticated, true
	case DenyForbidden:
		return Forbidden, true
	}
	return 0, false
}

// IsProgrammatic reports whether path is under the API prefix.
func IsProgrammatic(path string) bool {
	return strings.HasPrefix(path, APIPrefix)
}

// FailureResponse describes how a failed request is answered.
// Exactly one of Body, Redirect or Template is set.
type FailureResponse struct {
	Status   int
	Body     map[string]string
	Redirect string
	Template string
	Model    map[string]any
}

// IsRedirect 是否以重新導向回應
func (r FailureResponse) IsRedirect() bool {
	return r.Redirect != ""
}

// RespondFailure picks the response for a failed request. The shape depends only
// on the request path; fault is consulted for its message on UnhandledFault.
func RespondFailure(path string, kind Failure, fault error) FailureResponse {
	if IsProgrammatic(path) {
		return programmatic(kind, fault)
	}
	return interactive(path, kind, fault)
}

func programmatic(kind Failure, fault error) FailureResponse {
	switch kind {
	case Unauthenticated:
		return jsonFailure(http.StatusUnauthorized, "Unauthorized")
	case Forbidden:
		return jsonFailure(http.StatusForbidden, "Forbidden")
	case NotFound:
		return jsonFailure(http.StatusNotFound, "Not Found")
	default:
		return jsonFailure(http.StatusInternalServerError, faultMessage(fault))
	}
}

func interactive(path string, kind Failure, fault error) FailureResponse {
	switch kind {
	case Unauthenticated:
		return FailureResponse{Status: http.StatusFound, Redirect: LoginPath}
	case Forbidden:
		return FailureResponse{Status: http.StatusFound, Redirect: AccessDeniedPath}
	case NotFound:
		return errorPage(http.StatusNotFound, "page not found: "+path)
	default:
		return errorPage(http.StatusInternalServerError, faultMessage(fault))
	}
}

func jsonFailure(status int, message string) FailureResponse {
	return FailureResponse{Status: status, Body: map[string]string{"error": message}}
}

func errorPage(status int, message string) FailureResponse {
	return FailureResponse{
		Status:   status,
		Template: ErrorTemplate,
		Model:    map[string]any{"message": message},
	}
}

func faultMessage(fault error) string {
	if fault == nil || fault.Error() == "" {
		return http.StatusText(http.StatusInternalServerError)
	}
	return fault.Error()
}
