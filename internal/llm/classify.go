package llm

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// FailureType classifies a failed completion call for reporting
type FailureType int

const (
	FailureUnknown FailureType = iota
	FailureCanceled
	FailureTimeout
	FailureNetwork
	FailureAuth
	FailureNotFound
	FailureRateLimit
	FailureServer
	FailureBadRequest
	FailureContextLength
)

// String returns the string representation of FailureType
func (f FailureType) String() string {
	switch f {
	case FailureCanceled:
		return "Canceled"
	case FailureTimeout:
		return "Timeout"
	case FailureNetwork:
		return "Network"
	case FailureAuth:
		return "Auth"
	case FailureNotFound:
		return "NotFound"
	case FailureRateLimit:
		return "RateLimit"
	case FailureServer:
		return "Server"
	case FailureBadRequest:
		return "BadRequest"
	case FailureContextLength:
		return "ContextLength"
	default:
		return "Unknown"
	}
}

// HTTPStatusError is an interface for errors that have HTTP status codes
type HTTPStatusError interface {
	error
	HTTPStatusCode() int
}

// statusCodePattern matches the status the OpenAI client embeds in its error text
var statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)

// ClassifyError determines what kind of failure a completion error is
func ClassifyError(err error) FailureType {
	if err == nil {
		return FailureUnknown
	}

	if errors.Is(err, context.Canceled) {
		return FailureCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var statusErr HTTPStatusError
	if errors.As(err, &statusErr) {
		return classifyHTTPStatus(statusErr.HTTPStatusCode())
	}

	errMsg := strings.ToLower(err.Error())
	if m := statusCodePattern.FindStringSubmatch(errMsg); m != nil {
		code, _ := strconv.Atoi(m[1])
		if t := classifyHTTPStatus(code); t != FailureUnknown {
			return t
		}
	}

	contextKeywords := []string{
		"context length",
		"context_length",
		"maximum context",
		"token limit",
		"tokens exceeded",
	}
	for _, keyword := range contextKeywords {
		if strings.Contains(errMsg, keyword) {
			return FailureContextLength
		}
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return FailureNetwork
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureNetwork
	}

	if strings.Contains(errMsg, "timeout") {
		return FailureTimeout
	}

	return FailureUnknown
}

// classifyHTTPStatus classifies HTTP status codes
func classifyHTTPStatus(statusCode int) FailureType {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return FailureAuth
	case http.StatusNotFound:
		return FailureNotFound
	case http.StatusTooManyRequests:
		return FailureRateLimit
	case http.StatusGatewayTimeout:
		return FailureTimeout
	default:
		if statusCode >= 500 {
			return FailureServer
		}
		if statusCode >= 400 {
			return FailureBadRequest
		}
		return FailureUnknown
	}
}

// Hint returns a short suggestion for the user based on the failure type
func Hint(err error) string {
	switch ClassifyError(err) {
	case FailureAuth:
		return "check openai.apiKey in your config file"
	case FailureNotFound:
		return "check openai.baseURL and openai.model in your config file"
	case FailureRateLimit:
		return "the service is rate limiting requests, try again later"
	case FailureServer:
		return "the service returned a server error, try again later"
	case FailureNetwork:
		return "check your network connection and openai.baseURL"
	case FailureTimeout:
		return "the request timed out, try again later"
	case FailureContextLength:
		return "the staged diff is too large, exclude generated files with openai.exclude or commit in smaller pieces"
	case FailureBadRequest:
		return "the service rejected the request, check openai.model and openai.maxTokens"
	default:
		return ""
	}
}
