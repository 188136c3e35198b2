// Package redact scrubs credentials, connection strings, SQL and personal
// data out of error text before it is logged.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	HashPlaceholder       = "[REDACTED_HASH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	HostPlaceholder       = "[REDACTED_HOST]"
	StackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	re          *regexp.Regexp
	placeholder string
}

// rules run in order; connection strings go first so their user info is
// not half-matched by the email rule.
var rules = []rule{
	{
		re:          regexp.MustCompile(`(?i)(postgres|postgresql|pgx)://[^\s@]+@`),
		placeholder: CredentialPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]+['"]?)[^'"&\s]{3,}`),
		placeholder: CredentialPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		placeholder: HashPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: StackPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: EmailPlaceholder,
	},
	{
		re: regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\w,.*()=$'"]+?\b(FROM|INTO|SET)\b[\s\w,.*()=$'"]*`,
		),
		placeholder: SQLPlaceholder,
	},
	{
		re:          regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: PathPlaceholder,
	},
	{
		re:          regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}:\d{1,5}\b`),
		placeholder: HostPlaceholder,
	},
}

// String redacts sensitive fragments from input.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive fragments from err's message. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
