package notifier

import "errors"

// Validation errors short-circuit before any network call.
var (
	ErrInvalidProtocol    = errors.New("invalid protocol: use email, email-json, or sms")
	ErrInvalidSMSEndpoint = errors.New("invalid sms endpoint: must be 11 digits starting with 1")
	ErrMissingTopicName   = errors.New("topic name is required")
)
