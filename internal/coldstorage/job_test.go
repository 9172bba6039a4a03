package coldstorage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixfootdad/coldvault/internal/paging"
)

func TestInitiateJob_ExplicitTopicWins(t *testing.T) {
	fake := &fakeAPI{
		initiateJob: func(in *glacier.InitiateJobInput) (*glacier.InitiateJobOutput, error) {
			assert.Equal(t, testTopicARN, aws.ToString(in.JobParameters.SNSTopic))
			assert.Equal(t, "inventory-retrieval", aws.ToString(in.JobParameters.Type))
			return &glacier.InitiateJobOutput{JobId: aws.String("job-1")}, nil
		},
	}
	c := New(fake, Options{})
	job, err := c.InitiateJob(context.Background(), "photos", JobSpec{Kind: JobInventoryRetrieval}, testTopicARN)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, "InProgress", job.StatusCode)
	assert.Zero(t, fake.calls["GetVaultNotifications"], "an explicit topic needs no fallback lookup")
}

func TestInitiateJob_FallsBackToVaultTopic(t *testing.T) {
	fake := &fakeAPI{
		getNotifications: func(in *glacier.GetVaultNotificationsInput) (*glacier.GetVaultNotificationsOutput, error) {
			return &glacier.GetVaultNotificationsOutput{
				VaultNotificationConfig: &types.VaultNotificationConfig{
					SNSTopic: aws.String(testTopicARN),
					Events:   []string{EventInventoryRetrievalCompleted},
				},
			}, nil
		},
		initiateJob: func(in *glacier.InitiateJobInput) (*glacier.InitiateJobOutput, error) {
			assert.Equal(t, testTopicARN, aws.ToString(in.JobParameters.SNSTopic))
			return &glacier.InitiateJobOutput{JobId: aws.String("job-2")}, nil
		},
	}
	c := New(fake, Options{})
	job, err := c.InitiateJob(context.Background(), "photos", JobSpec{Kind: JobInventoryRetrieval}, "")
	require.NoError(t, err)
	assert.Equal(t, testTopicARN, job.SNSTopic)
}

func TestInitiateJob_NoDeliveryTarget(t *testing.T) {
	fake := &fakeAPI{
		getNotifications: func(in *glacier.GetVaultNotificationsInput) (*glacier.GetVaultNotificationsOutput, error) {
			return nil, notFound()
		},
	}
	c := New(fake, Options{})
	_, err := c.InitiateJob(context.Background(), "photos", JobSpec{Kind: JobInventoryRetrieval}, "")
	require.ErrorIs(t, err, ErrNoDeliveryTarget)
	assert.Zero(t, fake.calls["InitiateJob"], "the job must never be submitted without a delivery target")
}

func TestInitiateJob_RejectsMalformedTopic(t *testing.T) {
	fake := &fakeAPI{}
	c := New(fake, Options{})
	_, err := c.InitiateJob(context.Background(), "photos", JobSpec{Kind: JobInventoryRetrieval}, "does-not-start-with-arn:aws:")
	require.ErrorIs(t, err, ErrInvalidTopicARN)
	assert.Empty(t, fake.calls, "validation failures must not reach the network")
}

func TestInitiateJob_ValidatesSpec(t *testing.T) {
	tests := []struct {
		name string
		spec JobSpec
		want error
	}{
		{"archive retrieval without id", JobSpec{Kind: JobArchiveRetrieval}, ErrMissingArchiveID},
		{"inventory with bad format", JobSpec{Kind: JobInventoryRetrieval, Format: "XML"}, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{}
			c := New(fake, Options{})
			_, err := c.InitiateJob(context.Background(), "photos", tt.spec, testTopicARN)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, fake.calls)
		})
	}
}

func TestInitiateJob_ForwardsArchiveSpec(t *testing.T) {
	fake := &fakeAPI{
		initiateJob: func(in *glacier.InitiateJobInput) (*glacier.InitiateJobOutput, error) {
			p := in.JobParameters
			assert.Equal(t, "archive-retrieval", aws.ToString(p.Type))
			assert.Equal(t, "archive-123", aws.ToString(p.ArchiveId))
			assert.Equal(t, "restore photos", aws.ToString(p.Description))
			assert.Equal(t, TierBulk, aws.ToString(p.Tier))
			assert.Nil(t, p.Format, "format applies to inventory jobs only")
			return &glacier.InitiateJobOutput{JobId: aws.String("job-3")}, nil
		},
	}
	c := New(fake, Options{})
	spec := JobSpec{
		Kind:        JobArchiveRetrieval,
		ArchiveID:   "archive-123",
		Description: "restore photos",
		Tier:        TierBulk,
	}
	_, err := c.InitiateJob(context.Background(), "photos", spec, testTopicARN)
	require.NoError(t, err)
}

func TestJobs_ForwardsFilters(t *testing.T) {
	fake := &fakeAPI{
		listJobs: func(in *glacier.ListJobsInput) (*glacier.ListJobsOutput, error) {
			assert.Equal(t, "Succeeded", aws.ToString(in.Statuscode))
			assert.Equal(t, "true", aws.ToString(in.Completed))
			assert.Equal(t, int32(10), aws.ToInt32(in.Limit))
			return &glacier.ListJobsOutput{}, nil
		},
	}
	c := New(fake, Options{})
	opts := ListJobsOptions{Status: "Succeeded", CompletedOnly: true, Limit: 10}
	jobs, err := paging.Collect(context.Background(), c.Jobs("photos", opts))
	require.NoError(t, err)
	assert.Empty(t, jobs)
	assert.Equal(t, 1, fake.calls["ListJobs"], "an empty first page without a marker ends the listing")
}

func TestJobs_PaginatesInOrder(t *testing.T) {
	pages := []*glacier.ListJobsOutput{
		{
			JobList: []types.GlacierJobDescription{
				{JobId: aws.String("j1")},
				{JobId: aws.String("j2")},
			},
			Marker: aws.String("m1"),
		},
		{
			JobList: []types.GlacierJobDescription{{JobId: aws.String("j3")}},
		},
	}
	fake := &fakeAPI{}
	fake.listJobs = func(in *glacier.ListJobsInput) (*glacier.ListJobsOutput, error) {
		return pages[fake.calls["ListJobs"]-1], nil
	}
	c := New(fake, Options{})
	jobs, err := paging.Collect(context.Background(), c.Jobs("photos", ListJobsOptions{}))
	require.NoError(t, err)

	var ids []string
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	assert.Equal(t, []string{"j1", "j2", "j3"}, ids)
	assert.Equal(t, 2, fake.calls["ListJobs"])
}

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"InProgress", "InProgress", false},
		{"inprogress", "InProgress", false},
		{"in-progress", "InProgress", false},
		{"SUCCEEDED", "Succeeded", false},
		{"failed", "Failed", false},
		{"done", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := CanonicalStatus(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidJobStatus, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestJobInfo_OutputSize(t *testing.T) {
	assert.Equal(t, int64(42), JobInfo{ArchiveSize: 42}.OutputSize())
	assert.Equal(t, int64(7), JobInfo{InventorySize: 7}.OutputSize())
	assert.Zero(t, JobInfo{}.OutputSize())
}
