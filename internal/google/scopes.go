package google

import (
	drive "google.golang.org/api/drive/v3"
)

// Scopes is the single permission grant this tool requests: read-only
// access to Drive file listings and content. Kept deliberately narrow;
// a token provisioned here can never be used to modify the user's Drive.
var Scopes = []string{
	drive.DriveReadonlyScope,
}
