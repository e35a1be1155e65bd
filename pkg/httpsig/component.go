package httpsig

import (
	"fmt"
	"strings"
)

// Component identifies one piece of an HTTP message covered by a
// signature: either a derived component ("@"-prefixed) or a lowercase
// header field name.
type Component string

// Derived components from RFC 9421 section 2.2.
const (
	Method        Component = "@method"
	TargetURI     Component = "@target-uri"
	Authority     Component = "@authority"
	Scheme        Component = "@scheme"
	RequestTarget Component = "@request-target"
	Path          Component = "@path"
	Query         Component = "@query"
	StatusCode    Component = "@status"
)

// Header returns the component for an HTTP header field. Field names are
// lowercased, as the signature base requires.
func Header(name string) Component {
	return Component(strings.ToLower(name))
}

// Identifier returns the component's identifier string as it appears in
// the signature base.
func (c Component) Identifier() string { return string(c) }

func (c Component) derived() bool { return strings.HasPrefix(string(c), "@") }

// parseComponent maps an identifier from a received Signature-Input header
// back to a Component, rejecting derived components this package does not
// know.
func parseComponent(id string) (Component, error) {
	switch Component(id) {
	case Method, TargetURI, Authority, Scheme, RequestTarget, Path, Query, StatusCode:
		return Component(id), nil
	}
	if strings.HasPrefix(id, "@") {
		return "", fmt.Errorf("unsupported derived component %q", id)
	}
	return Header(id), nil
}
