package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kartikbazzad/gdnsh/internal/errors"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

// DefaultKeyValueCollectionConfig is the configuration the menu uses for new
// key-value collections.
const DefaultKeyValueCollectionConfig = `{
	"stream": true,
	"enableShards": false,
	"waitForSync": true,
	"shardKeys": ["key1"],
	"blobs": false,
	"expiration": false
}`

// CreateKeyValueCollection decodes configJSON and creates the collection.
// Malformed or mis-shaped configuration fails before any remote call.
func CreateKeyValueCollection(ctx context.Context, client KeyValueClient, name, configJSON string) (Result, error) {
	const op = "create key-value collection"

	if err := validateKeyValueConfig(configJSON); err != nil {
		return nil, errors.Config(op, err)
	}

	var body gdn.CreateKeyValueCollectionBody
	dec := json.NewDecoder(strings.NewReader(configJSON))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return nil, errors.Config(op, fmt.Errorf("%w: %v", errors.ErrConfigShape, err))
	}

	if err := client.CreateCollection(ctx, name, &body); err != nil {
		return nil, remoteError(op, err)
	}

	return OKResult{Message: fmt.Sprintf("Collection '%s' created successfully", name)}, nil
}

// AddDataToCollection writes all records in one bulk call.
func AddDataToCollection(ctx context.Context, client KeyValueClient, name string, records []gdn.KeyValuePair) (Result, error) {
	const op = "add data to collection"

	if err := client.SetPairs(ctx, name, records); err != nil {
		return nil, remoteError(op, err)
	}

	return OKResult{Message: fmt.Sprintf("Data added to collection '%s'", name)}, nil
}

// GetDataFromCollection reads one key and returns its value unmodified.
func GetDataFromCollection(ctx context.Context, client KeyValueClient, name, key string) (ValueResult, error) {
	const op = "get data from collection"

	pair, err := client.GetPair(ctx, name, key)
	if err != nil {
		return ValueResult{}, remoteError(op, err)
	}

	return ValueResult{Collection: name, Key: key, Value: pair.Value}, nil
}

// remoteError classifies a failure reported by the gdn client.
func remoteError(op string, err error) error {
	if gdn.IsNotFound(err) {
		return errors.NotFound(op, err)
	}
	return errors.Remote(op, err)
}
