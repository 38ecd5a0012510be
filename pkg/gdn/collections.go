package gdn

import (
	"context"
	"net/http"
)

// CollectionType is the GDN collection type code.
type CollectionType int

const (
	CollectionTypeDocument CollectionType = 2
	CollectionTypeEdge     CollectionType = 3
)

// KeyOptions controls how document keys are generated.
type KeyOptions struct {
	AllowUserKeys bool   `json:"allowUserKeys"`
	Type          string `json:"type,omitempty"`
	Increment     int    `json:"increment,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}

// CreateCollectionBody is the request body for POST /collection.
type CreateCollectionBody struct {
	Name         string         `json:"name"`
	WaitForSync  bool           `json:"waitForSync"`
	EnableShards bool           `json:"enableShards"`
	KeyOptions   *KeyOptions    `json:"keyOptions,omitempty"`
	IsLocal      bool           `json:"isLocal"`
	Stream       bool           `json:"stream"`
	Type         CollectionType `json:"type"`
}

// CollectionInfo is the subset of the create response gdnsh reports.
type CollectionInfo struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type CollectionType `json:"type"`
}

// CollectionsClient manages collections in one fabric.
type CollectionsClient struct {
	c *client
}

// NewCollectionsClient creates a collections handle bound to cfg.
func NewCollectionsClient(cfg *Configuration) *CollectionsClient {
	return &CollectionsClient{c: newClient(cfg)}
}

// CreateCollection calls POST /collection.
func (cc *CollectionsClient) CreateCollection(ctx context.Context, body *CreateCollectionBody) (*CollectionInfo, error) {
	var info CollectionInfo
	if _, err := cc.c.do(ctx, http.MethodPost, cc.c.endpoint("collection"), body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
