package coldstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
)

const (
	MinPartSizeBytes     = 1 << 20
	DefaultPartSizeBytes = 8 << 20
)

// ProgressFunc receives percentage-complete events during a transfer. It is
// invoked synchronously from the transfer loop.
type ProgressFunc func(percent int)

// UploadResult identifies the stored archive.
type UploadResult struct {
	ArchiveID string
	Checksum  string
	Location  string
}

// Upload stores a local file as a new archive. The archive description is
// always the file's base name. Files larger than one part go through the
// multipart flow with a per-part progress event; the terminal 100% event is
// suppressed so callers don't print a redundant final line.
func (c *Client) Upload(ctx context.Context, vault, path string, progress ProgressFunc) (UploadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UploadResult{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return UploadResult{}, err
	}
	if info.IsDir() {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return UploadResult{}, err
	}
	defer f.Close()

	description := filepath.Base(path)
	size := info.Size()

	if size <= c.partSize {
		return c.uploadSingle(ctx, vault, description, f, size)
	}
	return c.uploadMultipart(ctx, vault, description, f, size, progress)
}

func (c *Client) uploadSingle(ctx context.Context, vault, description string, f *os.File, size int64) (UploadResult, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return UploadResult{}, fmt.Errorf("read %s: %w", description, err)
	}
	out, err := c.api.UploadArchive(ctx, &glacier.UploadArchiveInput{
		AccountId:          aws.String(c.account),
		VaultName:          aws.String(vault),
		ArchiveDescription: aws.String(description),
		Checksum:           aws.String(treeHashHex(data)),
		Body:               bytes.NewReader(data),
	})
	if err != nil {
		return UploadResult{}, err
	}
	c.log.Debug(ctx, "archive uploaded", "vault", vault, "archive", aws.ToString(out.ArchiveId), "bytes", size)
	return UploadResult{
		ArchiveID: aws.ToString(out.ArchiveId),
		Checksum:  aws.ToString(out.Checksum),
		Location:  aws.ToString(out.Location),
	}, nil
}

func (c *Client) uploadMultipart(ctx context.Context, vault, description string, f *os.File, size int64, progress ProgressFunc) (UploadResult, error) {
	initOut, err := c.api.InitiateMultipartUpload(ctx, &glacier.InitiateMultipartUploadInput{
		AccountId:          aws.String(c.account),
		VaultName:          aws.String(vault),
		ArchiveDescription: aws.String(description),
		PartSize:           aws.String(strconv.FormatInt(c.partSize, 10)),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("initiate multipart upload: %w", err)
	}
	uploadID := initOut.UploadId
	defer func() {
		if uploadID != nil {
			_, _ = c.api.AbortMultipartUpload(ctx, &glacier.AbortMultipartUploadInput{
				AccountId: aws.String(c.account),
				VaultName: aws.String(vault),
				UploadId:  uploadID,
			})
		}
	}()

	var allLeaves [][]byte
	var uploaded int64
	buf := make([]byte, c.partSize)

	for uploaded < size {
		n, readErr := io.ReadFull(f, buf)
		if n == 0 && readErr == io.EOF {
			break
		}
		if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
			return UploadResult{}, fmt.Errorf("read part: %w", readErr)
		}

		leaves := leafHashes(buf[:n])
		partRange := fmt.Sprintf("bytes %d-%d/*", uploaded, uploaded+int64(n)-1)
		_, err := c.api.UploadMultipartPart(ctx, &glacier.UploadMultipartPartInput{
			AccountId: aws.String(c.account),
			VaultName: aws.String(vault),
			UploadId:  uploadID,
			Range:     aws.String(partRange),
			Checksum:  aws.String(hexTree(leaves)),
			Body:      bytes.NewReader(buf[:n]),
		})
		if err != nil {
			return UploadResult{}, fmt.Errorf("upload part %s: %w", partRange, err)
		}
		allLeaves = append(allLeaves, leaves...)
		uploaded += int64(n)
		c.log.Debug(ctx, "uploaded part", "range", partRange, "of", size)

		if progress != nil {
			pct := percentOf(uploaded, size)
			if pct < 100 {
				progress(pct)
			}
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
	}
	if uploaded != size {
		return UploadResult{}, fmt.Errorf("short read: uploaded %d of %d bytes", uploaded, size)
	}

	checksum := hexTree(allLeaves)
	completeOut, err := c.api.CompleteMultipartUpload(ctx, &glacier.CompleteMultipartUploadInput{
		AccountId:   aws.String(c.account),
		VaultName:   aws.String(vault),
		UploadId:    uploadID,
		ArchiveSize: aws.String(strconv.FormatInt(size, 10)),
		Checksum:    aws.String(checksum),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("complete multipart upload: %w", err)
	}
	uploadID = nil
	c.log.Debug(ctx, "archive uploaded", "vault", vault, "archive", aws.ToString(completeOut.ArchiveId), "bytes", size)
	return UploadResult{
		ArchiveID: aws.ToString(completeOut.ArchiveId),
		Checksum:  aws.ToString(completeOut.Checksum),
		Location:  aws.ToString(completeOut.Location),
	}, nil
}

func percentOf(done, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
