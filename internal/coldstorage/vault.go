package coldstorage

import (
	"context"
	"fmt"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"

	"github.com/sixfootdad/coldvault/internal/paging"
)

const maxVaultNameLen = 255

// VaultInfo is the request-scoped view of a vault; the service owns the
// entity itself.
type VaultInfo struct {
	Name              string
	ARN               string
	CreationDate      string
	LastInventoryDate string
	NumberOfArchives  int64
	SizeInBytes       int64
}

// ValidateVaultName enforces the local naming contract (1-255 characters,
// no whitespace) before any network call.
func ValidateVaultName(name string) error {
	if len(name) == 0 || len(name) > maxVaultNameLen {
		return fmt.Errorf("%w: length must be 1-%d, got %d", ErrInvalidVaultName, maxVaultNameLen, len(name))
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains whitespace", ErrInvalidVaultName, name)
		}
	}
	return nil
}

// CreateVault creates a vault and returns its location path.
func (c *Client) CreateVault(ctx context.Context, name string) (string, error) {
	if err := ValidateVaultName(name); err != nil {
		return "", err
	}
	out, err := c.api.CreateVault(ctx, &glacier.CreateVaultInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(name),
	})
	if err != nil {
		return "", err
	}
	c.log.Debug(ctx, "vault created", "vault", name, "location", aws.ToString(out.Location))
	return aws.ToString(out.Location), nil
}

func (c *Client) DescribeVault(ctx context.Context, name string) (VaultInfo, error) {
	out, err := c.api.DescribeVault(ctx, &glacier.DescribeVaultInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(name),
	})
	if err != nil {
		return VaultInfo{}, err
	}
	return VaultInfo{
		Name:              aws.ToString(out.VaultName),
		ARN:               aws.ToString(out.VaultARN),
		CreationDate:      aws.ToString(out.CreationDate),
		LastInventoryDate: aws.ToString(out.LastInventoryDate),
		NumberOfArchives:  out.NumberOfArchives,
		SizeInBytes:       out.SizeInBytes,
	}, nil
}

// DeleteVault deletes an empty vault. The service rejects non-empty vaults;
// that precondition is not checked locally.
func (c *Client) DeleteVault(ctx context.Context, name string) error {
	_, err := c.api.DeleteVault(ctx, &glacier.DeleteVaultInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(name),
	})
	return err
}

// Vaults returns a lazy iterator over all vaults in the account. limit, when
// positive, caps the page size, not the total.
func (c *Client) Vaults(limit int) *paging.Iterator[VaultInfo] {
	return paging.New(func(ctx context.Context, marker *string) ([]VaultInfo, *string, error) {
		input := &glacier.ListVaultsInput{
			AccountId: aws.String(c.account),
			Marker:    marker,
		}
		if limit > 0 {
			input.Limit = aws.Int32(int32(limit))
		}
		out, err := c.api.ListVaults(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		items := make([]VaultInfo, 0, len(out.VaultList))
		for _, v := range out.VaultList {
			items = append(items, vaultInfoFromList(v))
		}
		return items, out.Marker, nil
	})
}

func vaultInfoFromList(v types.DescribeVaultOutput) VaultInfo {
	return VaultInfo{
		Name:              aws.ToString(v.VaultName),
		ARN:               aws.ToString(v.VaultARN),
		CreationDate:      aws.ToString(v.CreationDate),
		LastInventoryDate: aws.ToString(v.LastInventoryDate),
		NumberOfArchives:  v.NumberOfArchives,
		SizeInBytes:       v.SizeInBytes,
	}
}
