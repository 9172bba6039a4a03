// Package coldstorage wraps the archival-storage service: vault lifecycle,
// per-vault notification configuration, retrieval jobs, and archive
// upload/download/delete. Every call is scoped to a single account id
// (normally "-", the calling account) fixed at construction.
package coldstorage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/glacier"

	"github.com/sixfootdad/coldvault/internal/logging"
)

// API is the subset of the storage service client this package calls.
// *glacier.Client satisfies it; tests substitute fakes.
type API interface {
	CreateVault(ctx context.Context, params *glacier.CreateVaultInput, optFns ...func(*glacier.Options)) (*glacier.CreateVaultOutput, error)
	DescribeVault(ctx context.Context, params *glacier.DescribeVaultInput, optFns ...func(*glacier.Options)) (*glacier.DescribeVaultOutput, error)
	ListVaults(ctx context.Context, params *glacier.ListVaultsInput, optFns ...func(*glacier.Options)) (*glacier.ListVaultsOutput, error)
	DeleteVault(ctx context.Context, params *glacier.DeleteVaultInput, optFns ...func(*glacier.Options)) (*glacier.DeleteVaultOutput, error)

	GetVaultNotifications(ctx context.Context, params *glacier.GetVaultNotificationsInput, optFns ...func(*glacier.Options)) (*glacier.GetVaultNotificationsOutput, error)
	SetVaultNotifications(ctx context.Context, params *glacier.SetVaultNotificationsInput, optFns ...func(*glacier.Options)) (*glacier.SetVaultNotificationsOutput, error)
	DeleteVaultNotifications(ctx context.Context, params *glacier.DeleteVaultNotificationsInput, optFns ...func(*glacier.Options)) (*glacier.DeleteVaultNotificationsOutput, error)

	InitiateJob(ctx context.Context, params *glacier.InitiateJobInput, optFns ...func(*glacier.Options)) (*glacier.InitiateJobOutput, error)
	DescribeJob(ctx context.Context, params *glacier.DescribeJobInput, optFns ...func(*glacier.Options)) (*glacier.DescribeJobOutput, error)
	ListJobs(ctx context.Context, params *glacier.ListJobsInput, optFns ...func(*glacier.Options)) (*glacier.ListJobsOutput, error)
	GetJobOutput(ctx context.Context, params *glacier.GetJobOutputInput, optFns ...func(*glacier.Options)) (*glacier.GetJobOutputOutput, error)

	UploadArchive(ctx context.Context, params *glacier.UploadArchiveInput, optFns ...func(*glacier.Options)) (*glacier.UploadArchiveOutput, error)
	InitiateMultipartUpload(ctx context.Context, params *glacier.InitiateMultipartUploadInput, optFns ...func(*glacier.Options)) (*glacier.InitiateMultipartUploadOutput, error)
	UploadMultipartPart(ctx context.Context, params *glacier.UploadMultipartPartInput, optFns ...func(*glacier.Options)) (*glacier.UploadMultipartPartOutput, error)
	CompleteMultipartUpload(ctx context.Context, params *glacier.CompleteMultipartUploadInput, optFns ...func(*glacier.Options)) (*glacier.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, params *glacier.AbortMultipartUploadInput, optFns ...func(*glacier.Options)) (*glacier.AbortMultipartUploadOutput, error)

	DeleteArchive(ctx context.Context, params *glacier.DeleteArchiveInput, optFns ...func(*glacier.Options)) (*glacier.DeleteArchiveOutput, error)
}

var _ API = (*glacier.Client)(nil)

type Options struct {
	// AccountID defaults to "-" (the calling account).
	AccountID string

	// PartSizeBytes is the multipart upload part size. Must be a power of
	// two between 1 MiB and 4 GiB; defaults to DefaultPartSizeBytes.
	PartSizeBytes int64

	Logger logging.Logger
}

type Client struct {
	api      API
	account  string
	partSize int64
	log      logging.Logger
}

func New(api API, opts Options) *Client {
	account := opts.AccountID
	if account == "" {
		account = "-"
	}
	partSize := opts.PartSizeBytes
	if partSize <= 0 {
		partSize = DefaultPartSizeBytes
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Client{api: api, account: account, partSize: partSize, log: log}
}

// AccountID reports the account scope every call is issued under.
func (c *Client) AccountID() string {
	return c.account
}
