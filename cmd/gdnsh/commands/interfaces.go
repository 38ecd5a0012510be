package commands

import (
	"context"
	"encoding/json"

	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

// KeyValueClient is the part of gdn.KeyValueClient the adapters use.
type KeyValueClient interface {
	CreateCollection(ctx context.Context, name string, body *gdn.CreateKeyValueCollectionBody) error
	SetPairs(ctx context.Context, name string, pairs []gdn.KeyValuePair) error
	GetPair(ctx context.Context, name, key string) (*gdn.KeyValuePair, error)
}

// CollectionsClient is the part of gdn.CollectionsClient the adapters use.
type CollectionsClient interface {
	CreateCollection(ctx context.Context, body *gdn.CreateCollectionBody) (*gdn.CollectionInfo, error)
}

// DocumentClient is the part of gdn.DocumentClient the adapters use.
type DocumentClient interface {
	Insert(ctx context.Context, collection string, document json.RawMessage) (*gdn.DocumentMeta, error)
}

var (
	_ KeyValueClient    = (*gdn.KeyValueClient)(nil)
	_ CollectionsClient = (*gdn.CollectionsClient)(nil)
	_ DocumentClient    = (*gdn.DocumentClient)(nil)
)
