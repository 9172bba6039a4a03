package cmd

import (
	"github.com/spf13/cobra"
)

var topicCreateDisplayName string

func init() {
	rootCmd.AddCommand(topicCmd)
	topicCmd.AddCommand(topicCreateCmd)
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicDescribeCmd)
	topicCmd.AddCommand(topicSetDisplayNameCmd)
	topicCmd.AddCommand(topicDeleteCmd)
	topicCreateCmd.Flags().StringVar(&topicCreateDisplayName, "display-name", "", "Human-readable display name")
}

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Manage notification topics",
}

var topicCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicCreate,
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics in the account",
	Args:  cobra.NoArgs,
	RunE:  runTopicList,
}

var topicDescribeCmd = &cobra.Command{
	Use:   "describe ARN",
	Short: "Show one topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicDescribe,
}

var topicSetDisplayNameCmd = &cobra.Command{
	Use:   "set-display-name ARN NAME",
	Short: "Update a topic's display name",
	Args:  cobra.ExactArgs(2),
	RunE:  runTopicSetDisplayName,
}

var topicDeleteCmd = &cobra.Command{
	Use:   "delete ARN",
	Short: "Delete a topic and its subscriptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTopicDelete,
}

func runTopicCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	arn, err := s.Notify.CreateTopic(cmd.Context(), args[0], topicCreateDisplayName)
	if err != nil {
		return err
	}
	cmd.Println(arn)
	return nil
}

func runTopicList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	it := s.Notify.Topics()
	count := 0
	for {
		arn, ok, err := it.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		cmd.Println(arn)
	}
	if count == 0 {
		cmd.Println("No topics found")
	}
	return nil
}

func runTopicDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	t, err := s.Notify.Topic(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("ARN:          %s\n", t.ARN)
	if t.DisplayName != "" {
		cmd.Printf("Display name: %s\n", t.DisplayName)
	}
	if t.Owner != "" {
		cmd.Printf("Owner:        %s\n", t.Owner)
	}
	return nil
}

func runTopicSetDisplayName(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Notify.SetDisplayName(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set display name of %s to %q\n", args[0], args[1])
	return nil
}

func runTopicDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Notify.DeleteTopic(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted topic %s\n", args[0])
	return nil
}
