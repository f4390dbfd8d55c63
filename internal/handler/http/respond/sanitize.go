package respond

import "regexp"

var (
	// bearer tokens that may leak through wrapped upstream errors
	bearerTokenPattern = regexp.MustCompile(`Bearer [a-zA-Z0-9\-_.]+`)

	// database passwords inside DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// api keys passed as query parameters
	apiKeyParamPattern = regexp.MustCompile(`(serviceKey|apiKey|api_key)=[^&\s]+`)
)

// SanitizeError returns the error message with credentials masked. Upstream
// client errors routinely embed the full request URL, so the catalog API key
// and DSN passwords must never reach logs verbatim.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = apiKeyParamPattern.ReplaceAllString(msg, "$1=****")
	return msg
}
