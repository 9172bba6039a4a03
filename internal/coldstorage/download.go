package coldstorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/google/uuid"
)

const downloadChunkSize = 64 * 1024

// DownloadJobOutput streams a completed job's output to dest. The copy goes
// to a temporary file in the destination directory and is renamed into place
// only after the full stream has been written, so a mid-copy failure never
// leaves a partial file under the requested name. The total size comes from
// DescribeJob, and progress fires after every 64 KiB chunk, terminal 100%
// included.
func (c *Client) DownloadJobOutput(ctx context.Context, vault, jobID, dest string, progress ProgressFunc) error {
	job, err := c.DescribeJob(ctx, vault, jobID)
	if err != nil {
		return err
	}
	total := job.OutputSize()
	if total <= 0 {
		return fmt.Errorf("%w: job %s", ErrUnknownOutputSize, jobID)
	}

	// Exclusive create up front: an existing destination fails before the
	// output stream is requested.
	probe, err := os.OpenFile(dest, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
		}
		return fmt.Errorf("create %s: %w", dest, err)
	}
	_ = probe.Close()
	if err := os.Remove(dest); err != nil {
		return fmt.Errorf("remove probe %s: %w", dest, err)
	}

	out, err := c.api.GetJobOutput(ctx, &glacier.GetJobOutputInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
		JobId:     aws.String(jobID),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	tmp := filepath.Join(filepath.Dir(dest), fmt.Sprintf("%s.partial-%s", filepath.Base(dest), uuid.NewString()))
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := c.copyChunks(ctx, f, out.Body, total, progress); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	c.log.Debug(ctx, "job output downloaded", "vault", vault, "job", jobID, "dest", dest, "bytes", total)
	return nil
}

func (c *Client) copyChunks(ctx context.Context, w io.Writer, r io.Reader, total int64, progress ProgressFunc) error {
	buf := make([]byte, downloadChunkSize)
	var done int64
	for done < total {
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("write chunk: %w", err)
			}
			done += int64(n)
			if progress != nil {
				progress(percentOf(done, total))
			}
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read output stream: %w", readErr)
		}
	}
	if done != total {
		return fmt.Errorf("short output stream: got %d of %d bytes", done, total)
	}
	return nil
}
