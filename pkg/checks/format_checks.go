package checks

import (
	"encoding/json"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

var (
	// International phone format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	hexColorRegex = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// IsEmail validates email addresses using RFC 5322 parsing plus the stricter
// domain shape expected in typical web forms.
func IsEmail(v any, _ rules.Options) bool {
	s, ok := str(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// IsURL passes for absolute http(s) URLs with a host.
func IsURL(v any, _ rules.Options) bool {
	s, ok := str(v)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsIP passes for IPv4 and IPv6 addresses. An optional "version" option of 4
// or 6 restricts the accepted family.
func IsIP(v any, opts rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	if version, ok := intOption(opts, "version"); ok {
		switch version {
		case 4:
			return ip.To4() != nil
		case 6:
			return ip.To4() == nil
		default:
			return false
		}
	}
	return true
}

// IsPort passes for decimal port numbers 1..65535.
func IsPort(v any, _ rules.Options) bool {
	s, ok := str(v)
	if !ok {
		return false
	}
	port, err := strconv.Atoi(s)
	return err == nil && port > 0 && port <= 65535
}

// IsUUID validates the standard textual UUID form with fast rejection before
// parsing.
func IsUUID(v any, _ rules.Options) bool {
	s, ok := str(v)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsJSON passes for syntactically valid JSON documents.
func IsJSON(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && json.Valid([]byte(s))
}

// IsHexColor passes for 3, 6, or 8 digit hex colors with an optional leading #.
func IsHexColor(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && hexColorRegex.MatchString(s)
}

// IsMobilePhone passes for international phone numbers with an optional
// leading +.
func IsMobilePhone(v any, _ rules.Options) bool {
	s, ok := str(v)
	return ok && phoneRegex.MatchString(strings.ReplaceAll(s, " ", ""))
}
