package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kartikbazzad/gdnsh/internal/errors"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

// CreateDocumentCollection creates a document collection with fixed settings.
func CreateDocumentCollection(ctx context.Context, client CollectionsClient, name string) (Result, error) {
	const op = "create document collection"

	body := &gdn.CreateCollectionBody{
		Name:         name,
		WaitForSync:  true,
		EnableShards: false,
		KeyOptions:   nil,
		IsLocal:      false,
		Stream:       true,
		Type:         gdn.CollectionTypeDocument,
	}

	if _, err := client.CreateCollection(ctx, body); err != nil {
		return nil, remoteError(op, err)
	}

	return OKResult{Message: fmt.Sprintf("Document collection '%s' created successfully", name)}, nil
}

// AddDocumentToCollection inserts document as-is.
func AddDocumentToCollection(ctx context.Context, client DocumentClient, name string, document json.RawMessage) (Result, error) {
	const op = "add document to collection"

	if len(document) == 0 || !json.Valid(document) {
		return nil, errors.Config(op, errors.ErrInvalidJSON)
	}

	if _, err := client.Insert(ctx, name, document); err != nil {
		return nil, remoteError(op, err)
	}

	return OKResult{Message: fmt.Sprintf("Document added to collection '%s'", name)}, nil
}
