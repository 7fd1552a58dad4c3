package entity

import (
	"context"
	"fmt"
)

// DirectoryEntry is one row of the credential directory.
type DirectoryEntry struct {
	ClientName    string   `json:"client_name"`
	Platform      Platform `json:"platform"`
	Identifier    string   `json:"workspace_id"`
	Credential    string   `json:"-"`
	WorkspaceName string   `json:"workspace_name,omitempty"`
	PersonName    string   `json:"person_name,omitempty"`
}

// Scope identifies the credential in errors and snapshots without leaking it.
func (e DirectoryEntry) Scope() string {
	return fmt.Sprintf("credential:%s:%s", e.Platform, e.Identifier)
}

// Label is the human-readable "Name (id)" form used in candidate lists.
func (e DirectoryEntry) Label() string {
	if e.ClientName == "" || e.ClientName == e.Identifier {
		return e.Identifier
	}
	return fmt.Sprintf("%s (%s)", e.ClientName, e.Identifier)
}

type DirectorySource interface {
	Load(ctx context.Context) ([]DirectoryEntry, error)
}

// DedupeEntries drops rows repeating an earlier (platform, credential) pair.
func DedupeEntries(entries []DirectoryEntry) []DirectoryEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		key := string(e.Platform) + "\x00" + e.Credential
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
