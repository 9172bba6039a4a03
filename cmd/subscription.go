package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sixfootdad/coldvault/internal/notifier"
)

var (
	subListTopic string
	subListARN   string
)

func init() {
	rootCmd.AddCommand(subscriptionCmd)
	subscriptionCmd.AddCommand(subscriptionCreateCmd)
	subscriptionCmd.AddCommand(subscriptionListCmd)
	subscriptionCmd.AddCommand(subscriptionDeleteCmd)
	subscriptionListCmd.Flags().StringVar(&subListTopic, "topic", "", "Only subscriptions of this topic ARN")
	subscriptionListCmd.Flags().StringVar(&subListARN, "arn", "", "Look up a single subscription ARN")
	subscriptionListCmd.MarkFlagsMutuallyExclusive("topic", "arn")
}

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Manage topic subscriptions",
}

var subscriptionCreateCmd = &cobra.Command{
	Use:   "create TOPIC_ARN PROTOCOL ENDPOINT",
	Short: "Subscribe an endpoint to a topic",
	Long: "Subscribe an email address (protocol email or email-json) or a US phone number\n" +
		"(protocol sms, 11 digits starting with 1). The endpoint owner must confirm the\n" +
		"subscription before deliveries start, so no subscription ARN is printed here.",
	Args: cobra.ExactArgs(3),
	RunE: runSubscriptionCreate,
}

var subscriptionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions (all, by topic, or one by ARN)",
	Args:  cobra.NoArgs,
	RunE:  runSubscriptionList,
}

var subscriptionDeleteCmd = &cobra.Command{
	Use:   "delete ARN",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubscriptionDelete,
}

func runSubscriptionCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	sub, err := s.Notify.Subscribe(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if sub.Pending() {
		cmd.Printf("Subscription for %s is pending confirmation at the endpoint\n", sub.Endpoint)
		return nil
	}
	cmd.Println(sub.ARN)
	return nil
}

func runSubscriptionList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if subListARN != "" {
		sub, err := s.Notify.Subscription(cmd.Context(), subListARN)
		if err != nil {
			return err
		}
		printSubscription(cmd, sub)
		return nil
	}

	it := s.Notify.Subscriptions(subListTopic)
	count := 0
	for {
		sub, ok, err := it.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		printSubscription(cmd, sub)
	}
	if count == 0 {
		cmd.Println("No subscriptions found")
	}
	return nil
}

func runSubscriptionDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Notify.Unsubscribe(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted subscription %s\n", args[0])
	return nil
}

func printSubscription(cmd *cobra.Command, sub notifier.Subscription) {
	arn := sub.ARN
	if sub.Pending() {
		arn = "(pending confirmation)"
	}
	cmd.Printf("%s\t%s\t%s\t%s\n", arn, sub.Protocol, sub.Endpoint, sub.TopicARN)
}
