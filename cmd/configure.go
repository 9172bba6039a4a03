package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sixfootdad/coldvault/internal/config"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write region and credentials to the config file",
	Long: "Prompts for a region and an optional access key pair and writes them to the\n" +
		"config file. Leave the access key empty to use the default credential chain\n" +
		"(environment, shared config, instance role).",
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())

	region, err := prompt(cmd, in, "Region (e.g. us-east-1): ")
	if err != nil {
		return err
	}
	accessKey, err := prompt(cmd, in, "Access key (empty for default chain): ")
	if err != nil {
		return err
	}

	var secretKey string
	if accessKey != "" {
		cmd.Print("Secret key: ")
		if stdin, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
			secret, err := term.ReadPassword(int(stdin.Fd()))
			cmd.Println()
			if err != nil {
				return fmt.Errorf("read secret key: %w", err)
			}
			secretKey = strings.TrimSpace(string(secret))
		} else {
			line, err := in.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read secret key: %w", err)
			}
			secretKey = strings.TrimSpace(line)
		}
	}

	cfg := &config.Config{
		Region:    region,
		AccessKey: accessKey,
		SecretKey: secretKey,
		AccountID: config.DefaultAccountID,
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	path := flagConfigPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	if err := config.Write(cfg, path); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func prompt(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	cmd.Print(label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
