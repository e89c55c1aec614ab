package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/drivetoken/internal/auth"
	"github.com/teemow/drivetoken/internal/google"
)

var (
	credentialsFile string
	tokenFile       string
	debug           bool
)

// rootCmd represents the base command for the drivetoken application
var rootCmd = &cobra.Command{
	Use:   "drivetoken",
	Short: "Provisions a headless OAuth token for read-only Google Drive access",
	Long: `drivetoken keeps a long-lived OAuth token on disk so that unattended
processes can read a user's Google Drive without a human present.

A one-time interactive authorization issues the token; afterwards every
run silently renews it from the stored refresh token. Run it from cron
or a service manager and check the exit code:

  0  a usable token is on disk
  1  configuration error (operator must fix credentials or the store)
  2  stored token cannot be used unattended (re-authorize with consent)
  3  the authorization code exchange failed
  4  refresh failed; the stored token is intact, a retry may succeed`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "drivetoken version %s\n" .Version}}`)

	// If no subcommand is provided, run the auth command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "auth")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(auth.ExitCode(err))
	}
}

// credentialsPath resolves the application identity location: flag,
// then env/XDG defaults.
func credentialsPath() string {
	if credentialsFile != "" {
		return credentialsFile
	}
	return google.CredentialsPath()
}

// tokenPath resolves the token store location: flag, then env/XDG
// defaults.
func tokenPath() string {
	if tokenFile != "" {
		return tokenFile
	}
	return google.TokenPath()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "drivetoken version %s\n", version)
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&credentialsFile, "credentials", "",
		"path to the OAuth client credentials.json (default: $DRIVETOKEN_CREDENTIALS_PATH or XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token", "",
		"path to the stored token.json (default: $DRIVETOKEN_TOKEN_PATH or XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newVersionCmd())
}
