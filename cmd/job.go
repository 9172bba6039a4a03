package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sixfootdad/coldvault/internal/coldstorage"
)

var (
	jobInitArchiveID   string
	jobInitInventory   bool
	jobInitFormat      string
	jobInitTopic       string
	jobInitDescription string
	jobInitTier        string

	jobListStatus    string
	jobListCompleted bool
	jobListLimit     int
)

func init() {
	rootCmd.AddCommand(jobCmd)
	jobCmd.AddCommand(jobInitiateCmd)
	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobDescribeCmd)
	jobCmd.AddCommand(jobDownloadCmd)

	jobInitiateCmd.Flags().StringVar(&jobInitArchiveID, "archive-id", "", "Retrieve this archive")
	jobInitiateCmd.Flags().BoolVar(&jobInitInventory, "inventory", false, "Retrieve the vault inventory")
	jobInitiateCmd.Flags().StringVar(&jobInitFormat, "format", "", "Inventory output format: CSV or JSON")
	jobInitiateCmd.Flags().StringVar(&jobInitTopic, "topic", "", "Topic ARN for the completion notification (default: the vault's configured topic)")
	jobInitiateCmd.Flags().StringVar(&jobInitDescription, "description", "", "Free-form job description")
	jobInitiateCmd.Flags().StringVar(&jobInitTier, "tier", "", "Retrieval tier: Expedited, Standard, or Bulk")
	jobInitiateCmd.MarkFlagsMutuallyExclusive("archive-id", "inventory")

	jobListCmd.Flags().StringVar(&jobListStatus, "status", "", "Only jobs with this status: InProgress, Succeeded, or Failed")
	jobListCmd.Flags().BoolVar(&jobListCompleted, "completed", false, "Only terminal jobs, regardless of outcome")
	jobListCmd.Flags().IntVar(&jobListLimit, "limit", 0, "Page size hint for the listing")
}

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Initiate and poll retrieval jobs",
	Long: "Retrieval jobs run asynchronously on the service side. Initiate one, then poll\n" +
		"with 'job describe' or wait for the notification topic, and fetch the result\n" +
		"with 'job download' once the status is Succeeded.",
}

var jobInitiateCmd = &cobra.Command{
	Use:   "initiate VAULT (--archive-id ID | --inventory)",
	Short: "Start an archive or inventory retrieval job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobInitiate,
}

var jobListCmd = &cobra.Command{
	Use:   "list VAULT",
	Short: "List a vault's jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobList,
}

var jobDescribeCmd = &cobra.Command{
	Use:   "describe VAULT JOB_ID",
	Short: "Show one job",
	Args:  cobra.ExactArgs(2),
	RunE:  runJobDescribe,
}

var jobDownloadCmd = &cobra.Command{
	Use:   "download VAULT JOB_ID DEST",
	Short: "Download a succeeded job's output to a local file",
	Args:  cobra.ExactArgs(3),
	RunE:  runJobDownload,
}

func runJobInitiate(cmd *cobra.Command, args []string) error {
	spec := coldstorage.JobSpec{
		Description: jobInitDescription,
		Tier:        jobInitTier,
	}
	switch {
	case jobInitInventory:
		spec.Kind = coldstorage.JobInventoryRetrieval
		spec.Format = jobInitFormat
	case jobInitArchiveID != "":
		spec.Kind = coldstorage.JobArchiveRetrieval
		spec.ArchiveID = jobInitArchiveID
	default:
		return fmt.Errorf("specify --archive-id <id> or --inventory")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	job, err := s.Storage.InitiateJob(cmd.Context(), args[0], spec, jobInitTopic)
	if err != nil {
		return err
	}
	cmd.Printf("Initiated %s job %s (%s), notifying %s\n", job.Action, job.ID, job.StatusCode, job.SNSTopic)
	return nil
}

func runJobList(cmd *cobra.Command, args []string) error {
	opts := coldstorage.ListJobsOptions{
		CompletedOnly: jobListCompleted,
		Limit:         jobListLimit,
	}
	if jobListStatus != "" {
		status, err := coldstorage.CanonicalStatus(jobListStatus)
		if err != nil {
			return err
		}
		opts.Status = status
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	it := s.Storage.Jobs(args[0], opts)
	count := 0
	for {
		j, ok, err := it.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		cmd.Printf("%s\t%s\t%s\tcreated %s\n", j.ID, j.Action, j.StatusCode, j.CreationDate)
	}
	if count == 0 {
		cmd.Printf("No jobs found for vault %s\n", args[0])
	}
	return nil
}

func runJobDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	j, err := s.Storage.DescribeJob(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Printf("Job:       %s\n", j.ID)
	cmd.Printf("Action:    %s\n", j.Action)
	cmd.Printf("Status:    %s\n", j.StatusCode)
	if j.StatusMessage != "" {
		cmd.Printf("Message:   %s\n", j.StatusMessage)
	}
	if j.ArchiveID != "" {
		cmd.Printf("Archive:   %s\n", j.ArchiveID)
	}
	if j.Description != "" {
		cmd.Printf("Describes: %s\n", j.Description)
	}
	if j.Tier != "" {
		cmd.Printf("Tier:      %s\n", j.Tier)
	}
	cmd.Printf("Created:   %s\n", j.CreationDate)
	if j.Completed {
		cmd.Printf("Completed: %s\n", j.CompletionDate)
		if size := j.OutputSize(); size > 0 {
			cmd.Printf("Output:    %d bytes\n", size)
		}
	}
	return nil
}

func runJobDownload(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	vault, jobID, dest := args[0], args[1], args[2]
	err = s.Storage.DownloadJobOutput(cmd.Context(), vault, jobID, dest, func(percent int) {
		cmd.Printf("  %3d%%\n", percent)
	})
	if err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", dest)
	return nil
}
