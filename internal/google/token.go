package google

import (
	"errors"
	"time"

	"golang.org/x/oauth2"
)

// TokenRecord is the persisted OAuth2 token. Field names and JSON tags
// follow oauth2.Token's wire format so a token.json written by other
// Google tooling round-trips unchanged.
type TokenRecord struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	Scope        string    `json:"scope,omitempty"`
}

// Validate reports whether the record is structurally usable at all.
// A missing refresh token is not a validation failure; that distinction
// belongs to HeadlessUsable.
func (t *TokenRecord) Validate() error {
	if t.AccessToken == "" {
		return errors.New("token: access_token is required")
	}
	return nil
}

// HeadlessUsable reports whether the record can be renewed without an
// operator present. Only the presence of a refresh token matters: an
// unexpired access token without one is still a dead end, because the
// process cannot self-renew it later.
func (t *TokenRecord) HeadlessUsable() bool {
	return t.RefreshToken != ""
}

// OAuth2Token converts the record for use with an oauth2.TokenSource.
func (t *TokenRecord) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry,
	}
}

// RecordFromToken converts an oauth2 exchange result back into the
// persisted form, capturing the scope the provider reports.
func RecordFromToken(tok *oauth2.Token) *TokenRecord {
	rec := &TokenRecord{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		rec.Scope = scope
	}
	return rec
}
