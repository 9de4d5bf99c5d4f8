package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldJobTitle is the structured log field key for the job title.
	FieldJobTitle = "job_title"
	// FieldCompany is the structured log field key for the employer name.
	FieldCompany = "company"
	// FieldSession is the structured log field key for the practice session id.
	FieldSession = "session_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// JobFields returns standard zap fields that describe the job a user is
// working with. Empty values are ignored to keep log entries compact.
func JobFields(title, company string) []zap.Field {
	return StringFields(
		StringField{Key: FieldJobTitle, Value: title},
		StringField{Key: FieldCompany, Value: company},
	)
}

// WithJobFields attaches the common job fields to the provided logger.
func WithJobFields(logger *zap.Logger, title, company string) *zap.Logger {
	return WithFields(logger, JobFields(title, company)...)
}
