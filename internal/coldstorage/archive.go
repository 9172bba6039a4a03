package coldstorage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
)

// DeleteArchive removes a single archive by identifier. Bulk deletion is the
// caller's loop (typically fed by an inventory job's output); per-item
// failures there must not stop the remaining items.
func (c *Client) DeleteArchive(ctx context.Context, vault, archiveID string) error {
	if archiveID == "" {
		return ErrMissingArchiveID
	}
	_, err := c.api.DeleteArchive(ctx, &glacier.DeleteArchiveInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
		ArchiveId: aws.String(archiveID),
	})
	if err != nil {
		return err
	}
	c.log.Debug(ctx, "archive deleted", "vault", vault, "archive", archiveID)
	return nil
}
