package creds

import (
	"sort"
	"strings"
)

const redactedMarker = "((redacted))"

// Redactor scrubs secret values from build output before lines reach the
// log pipeline. Longer values are replaced first so a value that contains
// another value cannot leave a fragment behind.
type Redactor struct {
	replacer *strings.Replacer
}

func NewRedactor(values []string) *Redactor {
	filtered := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			filtered = append(filtered, value)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return len(filtered[i]) > len(filtered[j])
	})

	oldnew := make([]string, 0, len(filtered)*2)
	for _, value := range filtered {
		oldnew = append(oldnew, value, redactedMarker)
	}

	return &Redactor{replacer: strings.NewReplacer(oldnew...)}
}

func (r *Redactor) Redact(line string) string {
	return r.replacer.Replace(line)
}
