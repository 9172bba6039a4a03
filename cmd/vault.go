package cmd

import (
	"github.com/spf13/cobra"
)

var vaultListLimit int

func init() {
	rootCmd.AddCommand(vaultCmd)
	vaultCmd.AddCommand(vaultCreateCmd)
	vaultCmd.AddCommand(vaultListCmd)
	vaultCmd.AddCommand(vaultDescribeCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	vaultListCmd.Flags().IntVar(&vaultListLimit, "limit", 0, "Page size hint for the listing")
}

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage vaults",
}

var vaultCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultCreate,
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vaults in the account",
	Args:  cobra.NoArgs,
	RunE:  runVaultList,
}

var vaultDescribeCmd = &cobra.Command{
	Use:   "describe NAME",
	Short: "Show one vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultDescribe,
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete an empty vault",
	Long:  "Delete a vault. The service rejects the call while the vault still holds archives.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultDelete,
}

func runVaultCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	location, err := s.Storage.CreateVault(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Created vault %s at %s\n", args[0], location)
	return nil
}

func runVaultList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	it := s.Storage.Vaults(vaultListLimit)
	count := 0
	for {
		v, ok, err := it.Next(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		cmd.Printf("%s\t%d archives\t%d bytes\tcreated %s\n", v.Name, v.NumberOfArchives, v.SizeInBytes, v.CreationDate)
	}
	if count == 0 {
		cmd.Println("No vaults found")
	}
	return nil
}

func runVaultDescribe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	v, err := s.Storage.DescribeVault(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Name:           %s\n", v.Name)
	cmd.Printf("ARN:            %s\n", v.ARN)
	cmd.Printf("Created:        %s\n", v.CreationDate)
	cmd.Printf("Archives:       %d\n", v.NumberOfArchives)
	cmd.Printf("Size:           %d bytes\n", v.SizeInBytes)
	if v.LastInventoryDate != "" {
		cmd.Printf("Last inventory: %s\n", v.LastInventoryDate)
	}
	return nil
}

func runVaultDelete(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.Storage.DeleteVault(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Printf("Deleted vault %s\n", args[0])
	return nil
}
