package gdn

import (
	"context"
	"encoding/json"
	"net/http"
)

// NoExpiration marks a key-value pair that never expires.
const NoExpiration int64 = -1

// CreateKeyValueCollectionBody is the request body for creating a key-value collection.
type CreateKeyValueCollectionBody struct {
	Stream       bool     `json:"stream"`
	EnableShards bool     `json:"enableShards"`
	WaitForSync  bool     `json:"waitForSync"`
	ShardKeys    []string `json:"shardKeys,omitempty"`
	Blobs        bool     `json:"blobs"`
	Expiration   bool     `json:"expiration"`
	Group        bool     `json:"group,omitempty"`
}

// KeyValuePair is one entry of a key-value collection. Value is kept as raw
// JSON so reads hand back exactly what the service stored.
type KeyValuePair struct {
	Key      string          `json:"_key"`
	Value    json.RawMessage `json:"value"`
	ExpireAt int64           `json:"expireAt"`
}

// NewStringPair builds a pair whose value is a JSON string.
func NewStringPair(key, value string, expireAt int64) KeyValuePair {
	raw, _ := json.Marshal(value) // marshalling a string cannot fail
	return KeyValuePair{Key: key, Value: raw, ExpireAt: expireAt}
}

// KeyValueClient manages key-value collections in one fabric.
type KeyValueClient struct {
	c *client
}

// NewKeyValueClient creates a key-value handle bound to cfg.
func NewKeyValueClient(cfg *Configuration) *KeyValueClient {
	return &KeyValueClient{c: newClient(cfg)}
}

// CreateCollection calls POST /kv/{name}.
func (k *KeyValueClient) CreateCollection(ctx context.Context, name string, body *CreateKeyValueCollectionBody) error {
	if body == nil {
		body = &CreateKeyValueCollectionBody{}
	}
	_, err := k.c.do(ctx, http.MethodPost, k.c.endpoint("kv", name), body, nil)
	return err
}

// SetPairs writes all pairs in a single PUT /kv/{name}/value call.
func (k *KeyValueClient) SetPairs(ctx context.Context, name string, pairs []KeyValuePair) error {
	if pairs == nil {
		pairs = []KeyValuePair{}
	}
	_, err := k.c.do(ctx, http.MethodPut, k.c.endpoint("kv", name, "value"), pairs, nil)
	return err
}

// GetPair calls GET /kv/{name}/value/{key}.
func (k *KeyValueClient) GetPair(ctx context.Context, name, key string) (*KeyValuePair, error) {
	var pair KeyValuePair
	if _, err := k.c.do(ctx, http.MethodGet, k.c.endpoint("kv", name, "value", key), nil, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
