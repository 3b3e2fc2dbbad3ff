// Package tokens generates the opaque identifiers handed out by the API.
package tokens

import (
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// ElectionCode returns a fresh code that identifies an election to voters.
func ElectionCode() string {
	return uuid.NewString()
}

// VoterToken returns a fresh per-voter ballot token.
func VoterToken() string {
	return uuid.NewString()
}

// TempName returns a sortable file name for an upload, keeping the original extension.
func TempName(originalName string) string {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	entropyMu.Unlock()

	return id.String() + strings.ToLower(filepath.Ext(originalName))
}
