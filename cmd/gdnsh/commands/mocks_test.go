package commands_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

type mockKeyValueClient struct {
	mock.Mock
}

func (m *mockKeyValueClient) CreateCollection(ctx context.Context, name string, body *gdn.CreateKeyValueCollectionBody) error {
	args := m.Called(ctx, name, body)
	return args.Error(0)
}

func (m *mockKeyValueClient) SetPairs(ctx context.Context, name string, pairs []gdn.KeyValuePair) error {
	args := m.Called(ctx, name, pairs)
	return args.Error(0)
}

func (m *mockKeyValueClient) GetPair(ctx context.Context, name, key string) (*gdn.KeyValuePair, error) {
	args := m.Called(ctx, name, key)
	pair, _ := args.Get(0).(*gdn.KeyValuePair)
	return pair, args.Error(1)
}

type mockCollectionsClient struct {
	mock.Mock
}

func (m *mockCollectionsClient) CreateCollection(ctx context.Context, body *gdn.CreateCollectionBody) (*gdn.CollectionInfo, error) {
	args := m.Called(ctx, body)
	info, _ := args.Get(0).(*gdn.CollectionInfo)
	return info, args.Error(1)
}

type mockDocumentClient struct {
	mock.Mock
}

func (m *mockDocumentClient) Insert(ctx context.Context, collection string, document json.RawMessage) (*gdn.DocumentMeta, error) {
	args := m.Called(ctx, collection, document)
	meta, _ := args.Get(0).(*gdn.DocumentMeta)
	return meta, args.Error(1)
}
