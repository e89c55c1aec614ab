package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/teemow/drivetoken/internal/google"
	"github.com/teemow/drivetoken/internal/logging"
)

// State classifies what is on disk before any transition runs. States
// are mutually exclusive and evaluated in this order.
type State int

const (
	// NoStoredToken means no token record exists.
	NoStoredToken State = iota

	// StoredTokenMalformed means a record exists but fails to parse or
	// validate. Transitioned like NoStoredToken, logged distinctly: a
	// corrupt store is a stronger signal than a missing one.
	StoredTokenMalformed

	// StoredTokenNotHeadless means the record is well-formed but has no
	// refresh token, so unattended renewal is impossible.
	StoredTokenNotHeadless

	// StoredTokenRefreshable means the record is well-formed and can be
	// renewed silently.
	StoredTokenRefreshable
)

func (s State) String() string {
	switch s {
	case NoStoredToken:
		return "no-stored-token"
	case StoredTokenMalformed:
		return "stored-token-malformed"
	case StoredTokenNotHeadless:
		return "stored-token-not-headless"
	case StoredTokenRefreshable:
		return "stored-token-refreshable"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// exchangeTimeout bounds each network exchange. The wait for operator
// input is deliberately unbounded; only the provider round trips are.
const exchangeTimeout = 30 * time.Second

// CredentialStore loads the application identity.
type CredentialStore interface {
	Load() (*google.Identity, error)
}

// TokenStore loads and persists the token record. Load distinguishes
// absence (google.ErrTokenAbsent) from corruption
// (google.ErrTokenMalformed).
type TokenStore interface {
	Load() (*google.TokenRecord, error)
	Save(*google.TokenRecord) error
	QuarantineMalformed()
}

// OAuthClient is the subset of the OAuth2 exchanges the resolver drives.
type OAuthClient interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*google.TokenRecord, error)
	Refresh(ctx context.Context, rec *google.TokenRecord) (*google.TokenRecord, error)
}

// CodePrompter collects the one-time authorization code from an
// operator, blocking until one is supplied.
type CodePrompter interface {
	Prompt(authURL string) (string, error)
}

// Resolver is the credential state machine. All collaborators are
// explicit so tests can substitute fakes; the resolver itself never
// touches the filesystem, the network, or the process exit.
type Resolver struct {
	Credentials CredentialStore
	Tokens      TokenStore
	NewClient   func(*google.Identity) OAuthClient
	Prompter    CodePrompter
	Logger      *slog.Logger
}

// Run resolves the current credential state and executes the one
// transition that leads to a terminal outcome. On return with nil, a
// headless-usable token is on disk. Errors carry a Kind for the exit
// code mapping; Run itself never terminates the process.
func (r *Resolver) Run(ctx context.Context) error {
	log := r.Logger
	if log == nil {
		log = slog.Default()
	}

	identity, err := r.Credentials.Load()
	if err != nil {
		return &Error{Kind: KindConfiguration, Op: "load application identity", Err: err}
	}

	state, rec := r.classify(log)
	log.Info("resolved credential state",
		slog.String("state", state.String()))

	switch state {
	case NoStoredToken, StoredTokenMalformed:
		if state == StoredTokenMalformed {
			r.Tokens.QuarantineMalformed()
		}
		return r.authorize(ctx, log, identity)

	case StoredTokenNotHeadless:
		return &Error{
			Kind: KindCapability,
			Op:   "check stored token",
			Err: errors.New("token has no refresh token and cannot be used unattended; " +
				"re-run authorization so a refresh token is issued"),
		}

	case StoredTokenRefreshable:
		return r.refresh(ctx, log, identity, rec)

	default:
		return &Error{Kind: KindConfiguration, Op: "resolve state",
			Err: fmt.Errorf("unknown state %v", state)}
	}
}

// classify inspects the token store without making any network call.
// Refresh capability is decided here, before any exchange, so a token
// that can never work headless fails fast with an actionable message
// instead of burning a round trip.
func (r *Resolver) classify(log *slog.Logger) (State, *google.TokenRecord) {
	rec, err := r.Tokens.Load()
	switch {
	case errors.Is(err, google.ErrTokenAbsent):
		return NoStoredToken, nil
	case errors.Is(err, google.ErrTokenMalformed):
		log.Warn("stored token is malformed, treating as absent", logging.Err(err))
		return StoredTokenMalformed, nil
	case err != nil:
		// Unreadable for some other reason (permissions, I/O). The
		// store is corrupt as far as this run is concerned.
		log.Warn("stored token is unreadable, treating as absent", logging.Err(err))
		return StoredTokenMalformed, nil
	case !rec.HeadlessUsable():
		return StoredTokenNotHeadless, rec
	default:
		return StoredTokenRefreshable, rec
	}
}

// authorize runs the interactive transition: URL, operator code, code
// exchange, persist.
func (r *Resolver) authorize(ctx context.Context, log *slog.Logger, identity *google.Identity) error {
	client := r.NewClient(identity)

	code, err := r.Prompter.Prompt(client.AuthCodeURL())
	if err != nil {
		return &Error{Kind: KindConfiguration, Op: "collect authorization code", Err: err}
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	rec, err := client.Exchange(exchangeCtx, code)
	if err != nil {
		return &Error{Kind: KindExchange, Op: "exchange authorization code", Err: err}
	}
	// The oauth2 client already enforces protocol correctness, so a
	// structurally invalid record here means a schema mismatch worth
	// surfacing, not something to accept silently.
	if err := rec.Validate(); err != nil {
		return &Error{Kind: KindExchange, Op: "validate exchanged token", Err: err}
	}

	if err := r.Tokens.Save(rec); err != nil {
		return &Error{Kind: KindConfiguration, Op: "persist token", Err: err}
	}

	log.Info("authorization complete, token stored",
		logging.Status(logging.StatusSuccess),
		slog.Bool("refresh_capable", rec.HeadlessUsable()))
	return nil
}

// refresh runs the silent transition: prove the stored refresh token
// against the provider and persist the merged result.
func (r *Resolver) refresh(ctx context.Context, log *slog.Logger, identity *google.Identity, rec *google.TokenRecord) error {
	client := r.NewClient(identity)

	refreshCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	fresh, err := client.Refresh(refreshCtx, rec)
	if err != nil {
		return &Error{Kind: KindRefresh, Op: "refresh access token", Err: err}
	}
	if fresh == nil {
		return &Error{Kind: KindRefresh, Op: "refresh access token",
			Err: errors.New("provider returned no access token; refresh token may be revoked")}
	}

	// Refresh responses may omit the refresh token. Never let that
	// erase the stored one: the new record adopts everything else from
	// the exchange but keeps the original refresh token.
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = rec.RefreshToken
	}
	if fresh.Scope == "" {
		fresh.Scope = rec.Scope
	}

	if err := r.Tokens.Save(fresh); err != nil {
		return &Error{Kind: KindConfiguration, Op: "persist refreshed token", Err: err}
	}

	log.Info("token refreshed",
		logging.Status(logging.StatusSuccess),
		slog.Time("expiry", fresh.Expiry))
	return nil
}
