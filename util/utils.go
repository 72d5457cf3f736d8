package util

import (
	"html/template"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	RgxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return RgxEmail.MatchString(value)
}

func safeHTML(s string) template.HTML {
	return template.HTML(s)
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

// FormatISO renders a backend ISO-8601 timestamp for display. Strings the
// backend sends that do not parse are passed through untouched.
func FormatISO(format, iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format(format)
}

// Truncate cuts s to max runes and appends an ellipsis, mirroring the
// display truncation used for long report descriptions.
func Truncate(max int, s string) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// StatusLabel turns a backend status value into its display form:
// underscores become spaces and the first letter is capitalised.
func StatusLabel(status string) string {
	s := strings.ReplaceAll(status, "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Initials picks the avatar-placeholder character for a user: first rune of
// the name, else first rune of the email, else "U".
func Initials(name, email string) string {
	if name != "" {
		return strings.ToUpper(string([]rune(name)[0]))
	}
	if email != "" {
		return strings.ToUpper(string([]rune(email)[0]))
	}
	return "U"
}

// StrOr dereferences nullable backend strings for display.
func StrOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

var TemplateFuncs = template.FuncMap{
	// Time functions
	"now":        time.Now,
	"timeSince":  time.Since,
	"formatTime": formatTime,
	"formatISO":  FormatISO,

	// String functions
	"uppercase":   strings.ToUpper,
	"lowercase":   strings.ToLower,
	"truncate":    Truncate,
	"statusLabel": StatusLabel,
	"initials":    Initials,
	"strOr":       StrOr,
	"safeHTML":    safeHTML,
}
