package coldstorage

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/glacier/types"
)

// Validation errors are raised before any network call. Remote failures are
// returned as the service's own error, unwrapped and unretried; match them
// with errors.As against the SDK types.
var (
	ErrInvalidVaultName  = errors.New("invalid vault name")
	ErrInvalidTopicARN   = errors.New("invalid topic arn")
	ErrInvalidJobStatus  = errors.New("invalid job status")
	ErrInvalidFormat     = errors.New("invalid inventory format")
	ErrNoDeliveryTarget  = errors.New("no delivery target: pass a topic arn or configure vault notifications")
	ErrPathNotFound      = errors.New("path does not exist")
	ErrNotRegularFile    = errors.New("not a regular file")
	ErrDestinationExists = errors.New("destination file already exists")
	ErrMissingArchiveID  = errors.New("archive id is required")
	ErrUnknownOutputSize = errors.New("job output size unknown")
)

// IsNotFound reports whether err is the service's resource-not-found
// rejection. Callers treat some of these (no notification config) as a
// normal negative result rather than a failure.
func IsNotFound(err error) bool {
	var nf *types.ResourceNotFoundException
	return errors.As(err, &nf)
}
