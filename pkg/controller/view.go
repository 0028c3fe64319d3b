package controller

import (
	"regexp"
	"strings"

	"askhub/pkg/apiclient"
)

// ViewKind enumerates the four navigable views.
type ViewKind int

const (
	ViewHome ViewKind = iota
	ViewDetail
	ViewAsk
	ViewAdmin
)

func (k ViewKind) String() string {
	switch k {
	case ViewHome:
		return "home"
	case ViewDetail:
		return "detail"
	case ViewAsk:
		return "ask"
	case ViewAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// View is the active view resolved from a path. QuestionID is set only for
// ViewDetail.
type View struct {
	Kind       ViewKind
	QuestionID apiclient.ID
}

var tenantPathPattern = regexp.MustCompile(`^/c/([^/]+)`)

// ParseTenantSlug extracts an optional tenant slug from a path prefixed with
// /c/:slug. The second return value is the remaining path with the prefix
// stripped, normalized to start with "/".
func ParseTenantSlug(path string) (string, string) {
	match := tenantPathPattern.FindStringSubmatch(path)
	if match == nil {
		return "", normalizePath(path)
	}
	rest := path[len(match[0]):]
	return match[1], normalizePath(rest)
}

// ResolveView derives the view from a path. The tenant prefix, if any, is
// ignored: /c/acme/ask and /ask resolve identically.
func ResolveView(path string) View {
	_, rest := ParseTenantSlug(path)
	segments := strings.Split(strings.Trim(rest, "/"), "/")

	switch segments[0] {
	case "ask":
		return View{Kind: ViewAsk}
	case "admin":
		return View{Kind: ViewAdmin}
	case "q":
		if len(segments) > 1 && segments[1] != "" {
			return View{Kind: ViewDetail, QuestionID: apiclient.ID(segments[1])}
		}
		return View{Kind: ViewHome}
	default:
		return View{Kind: ViewHome}
	}
}

func normalizePath(path string) string {
	if path == "" || path[0] != '/' {
		return "/" + path
	}
	return path
}
