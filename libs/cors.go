package libs

const (
	corsAllowMethods = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-From"
	corsMaxAge       = "86400"
)

// CORSHeaders computes the CORS response headers for a request Origin.
//
// Credentials are allowed, so an allowed origin is echoed exactly and never
// replaced by "*". A present but disallowed origin gets no
// Access-Control-Allow-Origin and the browser blocks the response. Requests
// without an Origin get the first allowed origin.
func CORSHeaders(allowedOrigins []string, requestOrigin string) map[string]string {
	headers := map[string]string{
		"Vary":                             "Origin",
		"Access-Control-Allow-Methods":     corsAllowMethods,
		"Access-Control-Allow-Headers":     corsAllowHeaders,
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           corsMaxAge,
	}

	if origin := allowOrigin(allowedOrigins, requestOrigin); origin != "" {
		headers["Access-Control-Allow-Origin"] = origin
	}
	return headers
}

func allowOrigin(allowedOrigins []string, requestOrigin string) string {
	if requestOrigin == "" {
		if len(allowedOrigins) > 0 {
			return allowedOrigins[0]
		}
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == requestOrigin {
			return requestOrigin
		}
	}
	return ""
}
