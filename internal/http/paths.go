package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/paykit-io/gcpay/pkg/gcpay"
)

// ExpandPath substitutes colon-prefixed placeholders in a path template
// ("/refunds/:identity") with the supplied values. Every placeholder
// must resolve to a non-empty value; a missing or empty substitution is
// an invalid-argument error raised before any network call.
func ExpandPath(template string, params map[string]string) (string, error) {
	if !strings.Contains(template, ":") {
		return template, nil
	}

	segments := strings.Split(template, "/")

	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		name := segment[1:]

		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: missing path parameter %q in %q", gcpay.ErrInvalidArgument, name, template)
		}

		segments[i] = url.PathEscape(value)
	}

	return strings.Join(segments, "/"), nil
}
