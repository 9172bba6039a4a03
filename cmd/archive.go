package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sixfootdad/coldvault/internal/coldstorage"
)

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveUploadCmd)
	archiveCmd.AddCommand(archiveDeleteCmd)
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Upload and delete archives",
}

var archiveUploadCmd = &cobra.Command{
	Use:   "upload VAULT FILE...",
	Short: "Upload local files as new archives",
	Long: "Upload each file as one archive, described by its base name. Directories are\n" +
		"skipped with a message so the rest of the batch continues.",
	Args: cobra.MinimumNArgs(2),
	RunE: runArchiveUpload,
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete VAULT [ARCHIVE_ID...]",
	Short: "Delete archives by identifier",
	Long: "Delete each archive. With no identifiers on the command line, identifiers are\n" +
		"read one per line from stdin, so a listing can be piped in. A failed item is\n" +
		"reported and the remaining items still run.",
	Args: cobra.MinimumNArgs(1),
	RunE: runArchiveDelete,
}

func runArchiveUpload(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	vault := args[0]
	var failed int
	for _, path := range args[1:] {
		result, err := s.Storage.Upload(cmd.Context(), vault, path, func(percent int) {
			cmd.Printf("  %s: %3d%%\n", path, percent)
		})
		if err != nil {
			if errors.Is(err, coldstorage.ErrNotRegularFile) {
				cmd.Printf("Skipped %s: not a file\n", path)
				continue
			}
			cmd.PrintErrf("Failed %s: %v\n", path, err)
			failed++
			continue
		}
		cmd.Printf("Uploaded %s as archive %s\n", path, result.ArchiveID)
	}
	if failed > 0 {
		return fmt.Errorf("%d upload(s) failed", failed)
	}
	return nil
}

func runArchiveDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	vault := args[0]

	ids := args[1:]
	if len(ids) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if id := strings.TrimSpace(scanner.Text()); id != "" {
				ids = append(ids, id)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read archive ids: %w", err)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("no archive ids given (pass them as arguments or pipe one per line)")
	}

	var failed int
	for _, id := range ids {
		if err := s.Storage.DeleteArchive(cmd.Context(), vault, id); err != nil {
			cmd.PrintErrf("Failed %s: %v\n", id, err)
			failed++
			continue
		}
		cmd.Printf("Deleted archive %s\n", id)
	}
	if failed > 0 {
		return fmt.Errorf("%d delete(s) failed", failed)
	}
	return nil
}
