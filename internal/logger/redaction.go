package logger

import (
	"io"
	"regexp"
)

const redacted = "[REDACTED]"

type Redactor struct {
	patterns []*regexp.Regexp
}

func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`Bearer\s+[a-zA-Z0-9._~+/=-]+`),
			// JWTs as issued by /auth/login
			regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
			// also matches inside JSON that was itself embedded in a JSON log field
			regexp.MustCompile(`(?i)password[\\"\s]*[:=][\\"\s]*[^\s"\\,}]+`),
			regexp.MustCompile(`(?i)(admin)?token[\\"\s]*[:=][\\"\s]*[a-zA-Z0-9._-]{16,}`),
		},
	}
}

func (r *Redactor) AddPattern(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	r.patterns = append(r.patterns, re)
	return nil
}

func (r *Redactor) Redact(s string) string {
	result := s
	for _, pattern := range r.patterns {
		result = pattern.ReplaceAllString(result, redacted)
	}
	return result
}

func (r *Redactor) Wrap(w io.Writer) io.Writer {
	return &redactingWriter{writer: w, redactor: r}
}

type redactingWriter struct {
	writer   io.Writer
	redactor *Redactor
}

// Write reports len(p) on success so callers never see a short write when the
// redacted line is shorter than the original.
func (w *redactingWriter) Write(p []byte) (int, error) {
	if _, err := w.writer.Write([]byte(w.redactor.Redact(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
