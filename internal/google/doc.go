// Package google handles the on-disk OAuth2 material for a Google
// installed application: the application identity (credentials.json),
// the cached token (token.json) and the OAuth2 client built from them.
//
// The package deals only with loading, validating and persisting these
// records and with the raw OAuth2 exchanges. Deciding what to do with a
// given token (reuse, refresh, re-authorize) is the auth package's job.
package google
