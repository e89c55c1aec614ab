// Package cmd implements the command-line interface for drivetoken.
//
// This package provides the following commands:
//   - auth: Provision or silently renew the stored Drive token
//   - verify: Prove the stored token works by listing Drive files
//   - version: Display version information
//
// The auth command is the default command when no subcommand is
// specified, so a cron job can simply run "drivetoken" and inspect the
// exit code.
package cmd
