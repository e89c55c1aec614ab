// Package auth implements the credential state machine that keeps a
// headless process authorized.
//
// Given the application identity and whatever token is on disk, the
// Resolver classifies the current state (no token, malformed token,
// token without refresh capability, refreshable token) and drives the
// one transition that leaves a usable token on disk: re-running the
// interactive authorization, refreshing, or failing with an error kind
// the caller maps to an exit code.
package auth
