package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sixfootdad/coldvault/internal/coldstorage"
)

var (
	notifSetTopic  string
	notifSetEvents string
)

func init() {
	vaultCmd.AddCommand(notificationsCmd)
	notificationsCmd.AddCommand(notificationsGetCmd)
	notificationsCmd.AddCommand(notificationsSetCmd)
	notificationsCmd.AddCommand(notificationsRemoveCmd)
	notificationsSetCmd.Flags().StringVar(&notifSetTopic, "topic", "", "Topic ARN to deliver events to (required)")
	notificationsSetCmd.Flags().StringVar(&notifSetEvents, "events", "all", "Events to fire: archive, inventory, or all")
	_ = notificationsSetCmd.MarkFlagRequired("topic")
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Manage a vault's notification configuration",
}

var notificationsGetCmd = &cobra.Command{
	Use:   "get VAULT",
	Short: "Show the vault's notification configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsGet,
}

var notificationsSetCmd = &cobra.Command{
	Use:   "set VAULT --topic ARN [--events archive|inventory|all]",
	Short: "Replace the vault's notification configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsSet,
}

var notificationsRemoveCmd = &cobra.Command{
	Use:   "remove VAULT",
	Short: "Remove the vault's notification configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotificationsRemove,
}

func runNotificationsGet(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	cfg, err := s.Storage.Notifications(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if cfg == nil {
		cmd.Printf("No notifications configured for vault %s\n", args[0])
		return nil
	}
	printNotificationConfig(cmd, args[0], cfg)
	return nil
}

func runNotificationsSet(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	selector := coldstorage.EventSelector(strings.ToLower(notifSetEvents))
	cfg, err := s.Storage.SetNotifications(cmd.Context(), args[0], notifSetTopic, selector)
	if err != nil {
		return err
	}
	printNotificationConfig(cmd, args[0], cfg)
	return nil
}

func runNotificationsRemove(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Storage.RemoveNotifications(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Removed notifications from vault %s\n", args[0])
	return nil
}

func printNotificationConfig(cmd *cobra.Command, vault string, cfg *coldstorage.NotificationConfig) {
	cmd.Printf("Vault:  %s\n", vault)
	cmd.Printf("Topic:  %s\n", cfg.TopicARN)
	cmd.Printf("Events: %s\n", strings.Join(cfg.Events, ", "))
}
