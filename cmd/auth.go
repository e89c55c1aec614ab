package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teemow/drivetoken/internal/auth"
	"github.com/teemow/drivetoken/internal/google"
	"github.com/teemow/drivetoken/internal/logging"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Provision or silently renew the stored Drive token",
		Long: `Resolve the state of the stored token and do whatever is needed to
leave a usable one on disk.

With a refresh-capable token stored, the run renews it without any
interaction. With no token (or a corrupt one), an authorization URL is
printed and the run waits for the one-time code. A well-formed token
without a refresh token fails instead of silently re-prompting, since
that would defeat the headless contract without operator awareness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.ErrOrStderr(), debug).With(logging.Operation("auth"))
			logger.Debug("using credential store", logging.Path(credentialsPath()))
			logger.Debug("using token store", logging.Path(tokenPath()))

			resolver := &auth.Resolver{
				Credentials: &google.CredentialFile{Path: credentialsPath()},
				Tokens:      &google.TokenFile{Path: tokenPath()},
				NewClient: func(id *google.Identity) auth.OAuthClient {
					return google.NewOAuthClient(id)
				},
				Prompter: &auth.TerminalPrompter{
					In:  cmd.InOrStdin(),
					Out: cmd.OutOrStdout(),
				},
				Logger: logger,
			}

			if err := resolver.Run(cmd.Context()); err != nil {
				logger.Error("credential resolution failed",
					logging.Status(logging.StatusError),
					logging.Err(err))
				return err
			}
			return nil
		},
	}
}
