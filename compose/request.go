// Package compose turns a fragment request into a response: it loads the
// primary fragment, merges secondary fragments into it, curries the result
// with request parameters and serializes it.
package compose

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fragd/fragment"
)

// ErrNotFragmentRequest is returned for requests not asking for a fragment
// (no "spf" parameter with one of the navigation values).
var ErrNotFragmentRequest = errors.New("not a fragment request")

// Navigation values client side library sends in "spf" parameter.
const (
	NavigateRequest = "navigate"
	LoadRequest     = "load"
)

// Request is a parsed fragment request.
type Request struct {
	// Primary is identifier of the fragment everything else is merged into.
	Primary string
	// Secondaries are resolved identifiers of fragments to merge, in order.
	Secondaries []string
	Params      fragment.Params
	// Navigation is the value of "spf" parameter, if any.
	Navigation string
}

// IsFragmentRequest reports whether query carries spf=navigate or spf=load.
func IsFragmentRequest(q url.Values) bool {
	switch q.Get("spf") {
	case NavigateRequest, LoadRequest:
		return true
	}
	return false
}

// ParseRequest parses request target such as
// "/news/list+sidebar+ads.top?page=footer&title=News&spf=navigate".
func ParseRequest(raw string) (Request, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Request{}, fmt.Errorf("unable to parse request '%s': %w", raw, err)
	}
	return RequestFromURL(u), nil
}

// RequestFromURL builds request out of URL path and query.
//
// Path is a list of fragment names joined with "+". The first one is the
// primary fragment identifier, the rest, followed by space separated names
// from "page" query parameter, name secondary fragments. Secondary names are
// relative to the directory of the primary fragment with dots standing for
// slashes: for "/shop/cart+promo.banner" secondary is "shop/promo/banner".
func RequestFromURL(u *url.URL) Request {
	parts := strings.Split(u.Path, "+")
	q := u.Query()

	primary := parts[0]
	req := Request{
		Primary:    strings.Trim(primary, "/"),
		Navigation: q.Get("spf"),
		Params: fragment.Params{
			Attr:    q.Get("attr"),
			Foot:    q.Get("foot"),
			Head:    q.Get("head"),
			Targets: q.Get("targets"),
			Title:   q.Get("title"),
			URL:     q.Get("url"),
		},
	}

	names := parts[1:]
	if page := q.Get("page"); len(page) > 0 {
		names = append(names, strings.Split(page, " ")...)
	}
	base := parentDir(primary)
	for _, name := range names {
		if len(name) == 0 {
			continue
		}
		req.Secondaries = append(req.Secondaries, base+strings.ReplaceAll(name, ".", "/"))
	}
	return req
}

// parentDir returns directory of the primary fragment path without leading
// slash and with trailing one: "/news/list" -> "news/", "/news" -> "".
func parentDir(p string) string {
	p = strings.TrimPrefix(p, "/")
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i+1]
}

// String returns request in the path form it was parsed from, query is not
// included.
func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString("/" + r.Primary)
	for _, s := range r.Secondaries {
		sb.WriteString("+" + s)
	}
	return sb.String()
}
