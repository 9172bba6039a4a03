package coldstorage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"

	"github.com/sixfootdad/coldvault/internal/paging"
)

// JobKind selects what a retrieval job fetches.
type JobKind string

const (
	JobArchiveRetrieval   JobKind = "archive-retrieval"
	JobInventoryRetrieval JobKind = "inventory-retrieval"
)

// Retrieval tiers trade cost against how long the service takes to stage the
// output.
const (
	TierExpedited = "Expedited"
	TierStandard  = "Standard"
	TierBulk      = "Bulk"
)

// JobSpec describes a job to initiate. ArchiveID is required for archive
// retrieval; Format (CSV or JSON) applies to inventory retrieval only.
type JobSpec struct {
	Kind        JobKind
	ArchiveID   string
	Format      string
	Description string
	Tier        string
}

// JobInfo is the observed state of a job. The service drives the only
// transitions (InProgress to Succeeded or Failed); this layer polls.
type JobInfo struct {
	ID             string
	Action         string
	StatusCode     string
	StatusMessage  string
	ArchiveID      string
	Description    string
	SNSTopic       string
	CreationDate   string
	CompletionDate string
	Completed      bool
	ArchiveSize    int64
	InventorySize  int64
	Tier           string
}

// OutputSize is the byte size of the job's output, for either job kind.
func (j JobInfo) OutputSize() int64 {
	if j.ArchiveSize > 0 {
		return j.ArchiveSize
	}
	return j.InventorySize
}

// CanonicalStatus normalizes a caller-supplied status filter to the
// service's enumeration: InProgress, Succeeded, or Failed.
func CanonicalStatus(s string) (string, error) {
	switch strings.ToLower(s) {
	case "inprogress", "in-progress":
		return string(types.StatusCodeInProgress), nil
	case "succeeded":
		return string(types.StatusCodeSucceeded), nil
	case "failed":
		return string(types.StatusCodeFailed), nil
	default:
		return "", fmt.Errorf("%w: %q (use InProgress, Succeeded, or Failed)", ErrInvalidJobStatus, s)
	}
}

func validateJobSpec(spec JobSpec) error {
	switch spec.Kind {
	case JobArchiveRetrieval:
		if spec.ArchiveID == "" {
			return ErrMissingArchiveID
		}
	case JobInventoryRetrieval:
		switch strings.ToUpper(spec.Format) {
		case "", "CSV", "JSON":
		default:
			return fmt.Errorf("%w: %q (use CSV or JSON)", ErrInvalidFormat, spec.Format)
		}
	default:
		return fmt.Errorf("unknown job kind %q", string(spec.Kind))
	}
	return nil
}

// InitiateJob starts an asynchronous retrieval job. When topicARN is empty
// the vault's notification configuration supplies the delivery target; if
// neither is available the job is never submitted and ErrNoDeliveryTarget is
// returned. Completion happens out of band; poll with DescribeJob or listen
// on the topic.
func (c *Client) InitiateJob(ctx context.Context, vault string, spec JobSpec, topicARN string) (JobInfo, error) {
	if err := validateJobSpec(spec); err != nil {
		return JobInfo{}, err
	}
	if topicARN != "" {
		if err := ValidateTopicARN(topicARN); err != nil {
			return JobInfo{}, err
		}
	} else {
		cfg, err := c.Notifications(ctx, vault)
		if err != nil {
			return JobInfo{}, err
		}
		if cfg == nil || cfg.TopicARN == "" {
			return JobInfo{}, ErrNoDeliveryTarget
		}
		topicARN = cfg.TopicARN
	}

	params := &types.JobParameters{
		Type:     aws.String(string(spec.Kind)),
		SNSTopic: aws.String(topicARN),
	}
	if spec.ArchiveID != "" {
		params.ArchiveId = aws.String(spec.ArchiveID)
	}
	if spec.Kind == JobInventoryRetrieval && spec.Format != "" {
		params.Format = aws.String(strings.ToUpper(spec.Format))
	}
	if spec.Description != "" {
		params.Description = aws.String(spec.Description)
	}
	if spec.Tier != "" {
		params.Tier = aws.String(spec.Tier)
	}

	out, err := c.api.InitiateJob(ctx, &glacier.InitiateJobInput{
		AccountId:     aws.String(c.account),
		VaultName:     aws.String(vault),
		JobParameters: params,
	})
	if err != nil {
		return JobInfo{}, err
	}
	c.log.Debug(ctx, "job initiated", "vault", vault, "job", aws.ToString(out.JobId), "kind", string(spec.Kind))
	return JobInfo{
		ID:         aws.ToString(out.JobId),
		Action:     string(spec.Kind),
		StatusCode: string(types.StatusCodeInProgress),
		SNSTopic:   topicARN,
	}, nil
}

// DescribeJob is a single-job point lookup.
func (c *Client) DescribeJob(ctx context.Context, vault, jobID string) (JobInfo, error) {
	out, err := c.api.DescribeJob(ctx, &glacier.DescribeJobInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return JobInfo{}, err
	}
	return JobInfo{
		ID:             aws.ToString(out.JobId),
		Action:         string(out.Action),
		StatusCode:     string(out.StatusCode),
		StatusMessage:  aws.ToString(out.StatusMessage),
		ArchiveID:      aws.ToString(out.ArchiveId),
		Description:    aws.ToString(out.JobDescription),
		SNSTopic:       aws.ToString(out.SNSTopic),
		CreationDate:   aws.ToString(out.CreationDate),
		CompletionDate: aws.ToString(out.CompletionDate),
		Completed:      out.Completed,
		ArchiveSize:    aws.ToInt64(out.ArchiveSizeInBytes),
		InventorySize:  aws.ToInt64(out.InventorySizeInBytes),
		Tier:           aws.ToString(out.Tier),
	}, nil
}

// ListJobsOptions restrict a job listing. Both filters are forwarded to the
// service as advisory hints.
type ListJobsOptions struct {
	// Status, when set, must be a canonical status code (see
	// CanonicalStatus).
	Status string

	// CompletedOnly restricts to terminal jobs regardless of outcome.
	CompletedOnly bool

	// Limit caps the page size when positive.
	Limit int
}

// Jobs returns a lazy iterator over a vault's jobs.
func (c *Client) Jobs(vault string, opts ListJobsOptions) *paging.Iterator[JobInfo] {
	return paging.New(func(ctx context.Context, marker *string) ([]JobInfo, *string, error) {
		input := &glacier.ListJobsInput{
			AccountId: aws.String(c.account),
			VaultName: aws.String(vault),
			Marker:    marker,
		}
		if opts.Status != "" {
			input.Statuscode = aws.String(opts.Status)
		}
		if opts.CompletedOnly {
			input.Completed = aws.String("true")
		}
		if opts.Limit > 0 {
			input.Limit = aws.Int32(int32(opts.Limit))
		}
		out, err := c.api.ListJobs(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		items := make([]JobInfo, 0, len(out.JobList))
		for _, j := range out.JobList {
			items = append(items, jobInfoFromDescription(j))
		}
		return items, out.Marker, nil
	})
}

func jobInfoFromDescription(j types.GlacierJobDescription) JobInfo {
	return JobInfo{
		ID:             aws.ToString(j.JobId),
		Action:         string(j.Action),
		StatusCode:     string(j.StatusCode),
		StatusMessage:  aws.ToString(j.StatusMessage),
		ArchiveID:      aws.ToString(j.ArchiveId),
		Description:    aws.ToString(j.JobDescription),
		SNSTopic:       aws.ToString(j.SNSTopic),
		CreationDate:   aws.ToString(j.CreationDate),
		CompletionDate: aws.ToString(j.CompletionDate),
		Completed:      j.Completed,
		ArchiveSize:    aws.ToInt64(j.ArchiveSizeInBytes),
		InventorySize:  aws.ToInt64(j.InventorySizeInBytes),
		Tier:           aws.ToString(j.Tier),
	}
}
