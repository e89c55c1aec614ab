package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/drivetoken/internal/drive"
	"github.com/teemow/drivetoken/internal/google"
	"github.com/teemow/drivetoken/internal/logging"
)

func newVerifyCmd() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Prove the stored token works by listing Drive files",
		Long: `Build an authenticated Drive client from the stored token and list
the most recently modified files. The access token is renewed
transparently if it has expired, so this exercises exactly what an
unattended consumer of the token would do.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), debug).With(logging.Operation("verify"))
			ctx := cmd.Context()

			identity, err := (&google.CredentialFile{Path: credentialsPath()}).Load()
			if err != nil {
				return err
			}

			rec, err := (&google.TokenFile{Path: tokenPath()}).Load()
			if err != nil {
				return fmt.Errorf("no usable token stored, run 'drivetoken auth' first: %w", err)
			}

			ts := google.NewOAuthClient(identity).TokenSource(ctx, rec)
			client, err := drive.NewClient(ctx, ts)
			if err != nil {
				return err
			}

			files, err := client.ListFiles(ctx, limit)
			if err != nil {
				return fmt.Errorf("token did not grant Drive access: %w", err)
			}

			logger.Info("token verified",
				logging.Status(logging.StatusSuccess),
				"files", len(files))

			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files found.")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", f.Name, f.ID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 10, "maximum number of files to list")
	return cmd
}
