package coldstorage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/glacier"
)

// fakeAPI implements API with per-operation hooks and call counters. A nil
// hook makes the call fail loudly, so tests catch network calls that the
// validation layer should have short-circuited.
type fakeAPI struct {
	createVault   func(*glacier.CreateVaultInput) (*glacier.CreateVaultOutput, error)
	describeVault func(*glacier.DescribeVaultInput) (*glacier.DescribeVaultOutput, error)
	listVaults    func(*glacier.ListVaultsInput) (*glacier.ListVaultsOutput, error)
	deleteVault   func(*glacier.DeleteVaultInput) (*glacier.DeleteVaultOutput, error)

	getNotifications    func(*glacier.GetVaultNotificationsInput) (*glacier.GetVaultNotificationsOutput, error)
	setNotifications    func(*glacier.SetVaultNotificationsInput) (*glacier.SetVaultNotificationsOutput, error)
	deleteNotifications func(*glacier.DeleteVaultNotificationsInput) (*glacier.DeleteVaultNotificationsOutput, error)

	initiateJob  func(*glacier.InitiateJobInput) (*glacier.InitiateJobOutput, error)
	describeJob  func(*glacier.DescribeJobInput) (*glacier.DescribeJobOutput, error)
	listJobs     func(*glacier.ListJobsInput) (*glacier.ListJobsOutput, error)
	getJobOutput func(*glacier.GetJobOutputInput) (*glacier.GetJobOutputOutput, error)

	uploadArchive func(*glacier.UploadArchiveInput) (*glacier.UploadArchiveOutput, error)
	initiateMPU   func(*glacier.InitiateMultipartUploadInput) (*glacier.InitiateMultipartUploadOutput, error)
	uploadPart    func(*glacier.UploadMultipartPartInput) (*glacier.UploadMultipartPartOutput, error)
	completeMPU   func(*glacier.CompleteMultipartUploadInput) (*glacier.CompleteMultipartUploadOutput, error)
	abortMPU      func(*glacier.AbortMultipartUploadInput) (*glacier.AbortMultipartUploadOutput, error)

	deleteArchive func(*glacier.DeleteArchiveInput) (*glacier.DeleteArchiveOutput, error)

	calls map[string]int
}

var _ API = (*fakeAPI)(nil)

func (f *fakeAPI) record(op string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[op]++
}

func unexpected(op string) error {
	return errors.New("unexpected " + op + " call")
}

func (f *fakeAPI) CreateVault(_ context.Context, in *glacier.CreateVaultInput, _ ...func(*glacier.Options)) (*glacier.CreateVaultOutput, error) {
	f.record("CreateVault")
	if f.createVault == nil {
		return nil, unexpected("CreateVault")
	}
	return f.createVault(in)
}

func (f *fakeAPI) DescribeVault(_ context.Context, in *glacier.DescribeVaultInput, _ ...func(*glacier.Options)) (*glacier.DescribeVaultOutput, error) {
	f.record("DescribeVault")
	if f.describeVault == nil {
		return nil, unexpected("DescribeVault")
	}
	return f.describeVault(in)
}

func (f *fakeAPI) ListVaults(_ context.Context, in *glacier.ListVaultsInput, _ ...func(*glacier.Options)) (*glacier.ListVaultsOutput, error) {
	f.record("ListVaults")
	if f.listVaults == nil {
		return nil, unexpected("ListVaults")
	}
	return f.listVaults(in)
}

func (f *fakeAPI) DeleteVault(_ context.Context, in *glacier.DeleteVaultInput, _ ...func(*glacier.Options)) (*glacier.DeleteVaultOutput, error) {
	f.record("DeleteVault")
	if f.deleteVault == nil {
		return nil, unexpected("DeleteVault")
	}
	return f.deleteVault(in)
}

func (f *fakeAPI) GetVaultNotifications(_ context.Context, in *glacier.GetVaultNotificationsInput, _ ...func(*glacier.Options)) (*glacier.GetVaultNotificationsOutput, error) {
	f.record("GetVaultNotifications")
	if f.getNotifications == nil {
		return nil, unexpected("GetVaultNotifications")
	}
	return f.getNotifications(in)
}

func (f *fakeAPI) SetVaultNotifications(_ context.Context, in *glacier.SetVaultNotificationsInput, _ ...func(*glacier.Options)) (*glacier.SetVaultNotificationsOutput, error) {
	f.record("SetVaultNotifications")
	if f.setNotifications == nil {
		return nil, unexpected("SetVaultNotifications")
	}
	return f.setNotifications(in)
}

func (f *fakeAPI) DeleteVaultNotifications(_ context.Context, in *glacier.DeleteVaultNotificationsInput, _ ...func(*glacier.Options)) (*glacier.DeleteVaultNotificationsOutput, error) {
	f.record("DeleteVaultNotifications")
	if f.deleteNotifications == nil {
		return nil, unexpected("DeleteVaultNotifications")
	}
	return f.deleteNotifications(in)
}

func (f *fakeAPI) InitiateJob(_ context.Context, in *glacier.InitiateJobInput, _ ...func(*glacier.Options)) (*glacier.InitiateJobOutput, error) {
	f.record("InitiateJob")
	if f.initiateJob == nil {
		return nil, unexpected("InitiateJob")
	}
	return f.initiateJob(in)
}

func (f *fakeAPI) DescribeJob(_ context.Context, in *glacier.DescribeJobInput, _ ...func(*glacier.Options)) (*glacier.DescribeJobOutput, error) {
	f.record("DescribeJob")
	if f.describeJob == nil {
		return nil, unexpected("DescribeJob")
	}
	return f.describeJob(in)
}

func (f *fakeAPI) ListJobs(_ context.Context, in *glacier.ListJobsInput, _ ...func(*glacier.Options)) (*glacier.ListJobsOutput, error) {
	f.record("ListJobs")
	if f.listJobs == nil {
		return nil, unexpected("ListJobs")
	}
	return f.listJobs(in)
}

func (f *fakeAPI) GetJobOutput(_ context.Context, in *glacier.GetJobOutputInput, _ ...func(*glacier.Options)) (*glacier.GetJobOutputOutput, error) {
	f.record("GetJobOutput")
	if f.getJobOutput == nil {
		return nil, unexpected("GetJobOutput")
	}
	return f.getJobOutput(in)
}

func (f *fakeAPI) UploadArchive(_ context.Context, in *glacier.UploadArchiveInput, _ ...func(*glacier.Options)) (*glacier.UploadArchiveOutput, error) {
	f.record("UploadArchive")
	if f.uploadArchive == nil {
		return nil, unexpected("UploadArchive")
	}
	return f.uploadArchive(in)
}

func (f *fakeAPI) InitiateMultipartUpload(_ context.Context, in *glacier.InitiateMultipartUploadInput, _ ...func(*glacier.Options)) (*glacier.InitiateMultipartUploadOutput, error) {
	f.record("InitiateMultipartUpload")
	if f.initiateMPU == nil {
		return nil, unexpected("InitiateMultipartUpload")
	}
	return f.initiateMPU(in)
}

func (f *fakeAPI) UploadMultipartPart(_ context.Context, in *glacier.UploadMultipartPartInput, _ ...func(*glacier.Options)) (*glacier.UploadMultipartPartOutput, error) {
	f.record("UploadMultipartPart")
	if f.uploadPart == nil {
		return nil, unexpected("UploadMultipartPart")
	}
	return f.uploadPart(in)
}

func (f *fakeAPI) CompleteMultipartUpload(_ context.Context, in *glacier.CompleteMultipartUploadInput, _ ...func(*glacier.Options)) (*glacier.CompleteMultipartUploadOutput, error) {
	f.record("CompleteMultipartUpload")
	if f.completeMPU == nil {
		return nil, unexpected("CompleteMultipartUpload")
	}
	return f.completeMPU(in)
}

func (f *fakeAPI) AbortMultipartUpload(_ context.Context, in *glacier.AbortMultipartUploadInput, _ ...func(*glacier.Options)) (*glacier.AbortMultipartUploadOutput, error) {
	f.record("AbortMultipartUpload")
	if f.abortMPU == nil {
		return nil, unexpected("AbortMultipartUpload")
	}
	return f.abortMPU(in)
}

func (f *fakeAPI) DeleteArchive(_ context.Context, in *glacier.DeleteArchiveInput, _ ...func(*glacier.Options)) (*glacier.DeleteArchiveOutput, error) {
	f.record("DeleteArchive")
	if f.deleteArchive == nil {
		return nil, unexpected("DeleteArchive")
	}
	return f.deleteArchive(in)
}
