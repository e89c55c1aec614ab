// Package drive provides a minimal read-only client for the Google
// Drive API, used to prove that a provisioned token actually grants the
// access it was issued for. Listing file metadata is the only operation;
// the token's scope does not allow anything else.
package drive
