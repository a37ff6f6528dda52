package httpio

import "strconv"

// Status codes used directly by this module.
const (
	StatusContinue            = 100
	StatusOK                  = 200
	StatusNoContent           = 204
	StatusNotModified         = 304
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusPayloadTooLarge     = 413
	StatusInternalServerError = 500
)

// Valid range for any status a Response may carry.
const (
	MinStatus = 100
	MaxStatus = 599
)

// reasonPhrases is the registry of known status codes. It is never written
// after package initialization.
var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	103: "Early Hints",

	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",

	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Content",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// MessageForCode returns the "<code> <reason>" text for a registered status
// code. The boolean is false when the code is not in the registry, which is
// different from a code whose phrase happens to be empty.
func MessageForCode(code int) (string, bool) {
	phrase, ok := reasonPhrases[code]
	if !ok {
		return "", false
	}

	return strconv.Itoa(code) + " " + phrase, true
}

// ReasonPhrase returns the bare phrase for code, or "" when unregistered.
func ReasonPhrase(code int) string {
	return reasonPhrases[code]
}

// BodyAllowed reports whether a response with the given status may carry a
// body. Informational statuses, 204 and 304 may not.
func BodyAllowed(code int) bool {
	if code >= 100 && code < 200 {
		return false
	}

	return code != StatusNoContent && code != StatusNotModified
}

// ValidStatus reports whether code is inside [MinStatus, MaxStatus].
func ValidStatus(code int) bool {
	return code >= MinStatus && code <= MaxStatus
}
