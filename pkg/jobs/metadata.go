package jobs

import "github.com/google/uuid"

var metadataNamespace = uuid.MustParse("6f1c2b8e-3c55-4b8a-9d2e-6a51f0c4b7d1")

// NewRequestMetadata hashes raw user and session identifiers into stable
// opaque values. Identical inputs always yield identical metadata, so every
// call made for one session carries the same RequestMetadata.
func NewRequestMetadata(userID, sessionID, domain string) RequestMetadata {
	return RequestMetadata{
		UserID:    HashIdentifier(userID),
		SessionID: HashIdentifier(sessionID),
		Domain:    domain,
	}
}

// HashIdentifier returns a name-based SHA-1 UUID for id, or "" for an empty id
func HashIdentifier(id string) string {
	if id == "" {
		return ""
	}
	return uuid.NewSHA1(metadataNamespace, []byte(id)).String()
}
