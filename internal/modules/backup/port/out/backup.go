package out

import (
	"context"
	"encoding/json"
)

// Reloader is a module that caches persisted state and must re-read it after
// the store changes underneath it.
type Reloader interface {
	Load(ctx context.Context) error
}

// Decoder checks that an imported value decodes into the type its owning
// module persists under that key.
type Decoder func(raw json.RawMessage) error
