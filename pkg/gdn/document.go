package gdn

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// DocumentMeta identifies a stored document.
type DocumentMeta struct {
	ID  string
	Key string
	Rev string
}

// DocumentClient writes documents in one fabric.
type DocumentClient struct {
	c *client
}

// NewDocumentClient creates a document handle bound to cfg.
func NewDocumentClient(cfg *Configuration) *DocumentClient {
	return &DocumentClient{c: newClient(cfg)}
}

// Insert calls POST /document/{collection}. The document bytes are sent as-is.
func (d *DocumentClient) Insert(ctx context.Context, collection string, document json.RawMessage) (*DocumentMeta, error) {
	body, err := d.c.do(ctx, http.MethodPost, d.c.endpoint("document", collection), document, nil)
	if err != nil {
		return nil, err
	}

	// The service answers with an object for one document and an array for many.
	res := gjson.ParseBytes(body)
	if res.IsArray() {
		res = res.Get("0")
	}
	return &DocumentMeta{
		ID:  res.Get("_id").String(),
		Key: res.Get("_key").String(),
		Rev: res.Get("_rev").String(),
	}, nil
}
