package httpsig

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// componentValue is one canonicalized line of the signature base.
type componentValue struct {
	name  string
	value string
}

// canonicalizeRequest resolves each component against a request.
func canonicalizeRequest(req *http.Request, components []Component) ([]componentValue, error) {
	values := make([]componentValue, 0, len(components))

	for _, c := range components {
		var value string
		switch c {
		case Method:
			value = req.Method
		case TargetURI:
			value = req.URL.String()
		case Authority:
			value = req.Host
			if value == "" {
				value = req.URL.Host
			}
			if value == "" {
				return nil, fmt.Errorf("request has no authority")
			}
		case Scheme:
			if req.URL.Scheme == "" {
				return nil, fmt.Errorf("request has no scheme")
			}
			value = req.URL.Scheme
		case RequestTarget:
			value = req.URL.Path
			if req.URL.RawQuery != "" {
				value += "?" + req.URL.RawQuery
			}
		case Path:
			value = req.URL.Path
		case Query:
			value = "?" + req.URL.RawQuery
		case StatusCode:
			return nil, fmt.Errorf("@status is not valid for requests")
		default:
			if c.derived() {
				return nil, fmt.Errorf("unsupported derived component %q", c)
			}
			header, err := headerValue(req.Header, string(c))
			if err != nil {
				return nil, err
			}
			value = header
		}
		values = append(values, componentValue{name: c.Identifier(), value: value})
	}
	return values, nil
}

// canonicalizeResponse resolves each component against a response. Only
// @status and header components are meaningful for responses.
func canonicalizeResponse(resp *http.Response, components []Component) ([]componentValue, error) {
	values := make([]componentValue, 0, len(components))

	for _, c := range components {
		var value string
		switch {
		case c == StatusCode:
			value = strconv.Itoa(resp.StatusCode)
		case c.derived():
			return nil, fmt.Errorf("%q is not valid for responses", c)
		default:
			header, err := headerValue(resp.Header, string(c))
			if err != nil {
				return nil, err
			}
			value = header
		}
		values = append(values, componentValue{name: c.Identifier(), value: value})
	}
	return values, nil
}

// headerValue joins multiple field values with ", " per RFC 9421.
func headerValue(h http.Header, name string) (string, error) {
	values := h.Values(name)
	if len(values) == 0 {
		return "", fmt.Errorf("header %q not present", name)
	}
	return strings.Join(values, ", "), nil
}

// signatureBase assembles the canonical base string that is signed: one
// quoted-name line per component, terminated by the @signature-params
// line.
func signatureBase(values []componentValue, signatureInput string) string {
	var b strings.Builder
	for _, cv := range values {
		fmt.Fprintf(&b, "%q: %s\n", cv.name, cv.value)
	}
	fmt.Fprintf(&b, "%q: %s", "@signature-params", signatureInput)
	return b.String()
}
