package coldstorage

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"
	"github.com/aws/aws-sdk-go-v2/service/glacier/types"
)

// Event kinds a vault notification configuration can subscribe to.
const (
	EventArchiveRetrievalCompleted   = "ArchiveRetrievalCompleted"
	EventInventoryRetrievalCompleted = "InventoryRetrievalCompleted"
)

// EventSelector names the caller-facing event choices; "all" expands to both
// event kinds.
type EventSelector string

const (
	SelectArchive   EventSelector = "archive"
	SelectInventory EventSelector = "inventory"
	SelectAll       EventSelector = "all"
)

// NotificationConfig is a vault's delivery target plus the events it fires.
type NotificationConfig struct {
	TopicARN string
	Events   []string
}

var topicARNPattern = regexp.MustCompile(`^arn:aws[a-zA-Z-]*:sns:[a-z0-9-]+:[0-9]{12}:[A-Za-z0-9_-]+$`)

// ValidateTopicARN checks the ARN shape locally so a typo never reaches the
// service.
func ValidateTopicARN(arn string) error {
	if !topicARNPattern.MatchString(arn) {
		return fmt.Errorf("%w: %q", ErrInvalidTopicARN, arn)
	}
	return nil
}

func (s EventSelector) events() ([]string, error) {
	switch s {
	case SelectArchive:
		return []string{EventArchiveRetrievalCompleted}, nil
	case SelectInventory:
		return []string{EventInventoryRetrievalCompleted}, nil
	case SelectAll:
		return []string{EventArchiveRetrievalCompleted, EventInventoryRetrievalCompleted}, nil
	default:
		return nil, fmt.Errorf("unknown event selector %q (use archive, inventory, or all)", string(s))
	}
}

// Notifications reads a vault's notification configuration. A vault with no
// configuration yields (nil, nil) - an expected absence, not a failure.
func (c *Client) Notifications(ctx context.Context, vault string) (*NotificationConfig, error) {
	out, err := c.api.GetVaultNotifications(ctx, &glacier.GetVaultNotificationsInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if out.VaultNotificationConfig == nil {
		return nil, nil
	}
	return &NotificationConfig{
		TopicARN: aws.ToString(out.VaultNotificationConfig.SNSTopic),
		Events:   out.VaultNotificationConfig.Events,
	}, nil
}

// SetNotifications replaces the vault's notification configuration (no merge
// with an existing one) and returns the stored configuration by re-reading it.
func (c *Client) SetNotifications(ctx context.Context, vault, topicARN string, selector EventSelector) (*NotificationConfig, error) {
	if err := ValidateTopicARN(topicARN); err != nil {
		return nil, err
	}
	events, err := selector.events()
	if err != nil {
		return nil, err
	}
	_, err = c.api.SetVaultNotifications(ctx, &glacier.SetVaultNotificationsInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
		VaultNotificationConfig: &types.VaultNotificationConfig{
			SNSTopic: aws.String(topicARN),
			Events:   events,
		},
	})
	if err != nil {
		return nil, err
	}
	return c.Notifications(ctx, vault)
}

// RemoveNotifications clears the vault's notification configuration. It is
// idempotent from the caller's perspective: no precondition that one exists.
func (c *Client) RemoveNotifications(ctx context.Context, vault string) error {
	_, err := c.api.DeleteVaultNotifications(ctx, &glacier.DeleteVaultNotificationsInput{
		AccountId: aws.String(c.account),
		VaultName: aws.String(vault),
	})
	if err != nil && IsNotFound(err) {
		return nil
	}
	return err
}
