package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/commands"
	"github.com/kartikbazzad/gdnsh/internal/errors"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

func TestCreateKeyValueCollection_ForwardsConfig(t *testing.T) {
	kv := &mockKeyValueClient{}
	want := &gdn.CreateKeyValueCollectionBody{
		Stream:      true,
		WaitForSync: true,
		ShardKeys:   []string{"key1"},
	}
	kv.On("CreateCollection", mock.Anything, "users", want).Return(nil).Once()

	res, err := commands.CreateKeyValueCollection(context.Background(), kv, "users", commands.DefaultKeyValueCollectionConfig)
	require.NoError(t, err)

	var buf bytes.Buffer
	res.Print(&buf)
	assert.Equal(t, "Collection 'users' created successfully\n", buf.String())
	assert.False(t, res.IsExit())
	kv.AssertExpectations(t)
}

func TestCreateKeyValueCollection_ConfigErrorsSkipRemoteCall(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"malformed", `{"stream": true,`},
		{"empty", ``},
		{"not an object", `[true]`},
		{"wrong type", `{"stream": "yes"}`},
		{"shard keys not strings", `{"shardKeys": [1, 2]}`},
		{"unknown field", `{"stream": true, "replicas": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := &mockKeyValueClient{}

			_, err := commands.CreateKeyValueCollection(context.Background(), kv, "users", tt.config)
			require.Error(t, err)
			assert.Equal(t, errors.KindConfig, errors.Classify(err))
			kv.AssertNotCalled(t, "CreateCollection", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateKeyValueCollection_RemoteError(t *testing.T) {
	kv := &mockKeyValueClient{}
	conflict := &gdn.APIError{StatusCode: http.StatusConflict, Message: "duplicate name"}
	kv.On("CreateCollection", mock.Anything, "users", mock.Anything).Return(conflict)

	_, err := commands.CreateKeyValueCollection(context.Background(), kv, "users", `{}`)
	require.Error(t, err)
	assert.Equal(t, errors.KindRemote, errors.Classify(err))
	assert.ErrorIs(t, err, conflict)
}

func TestAddDataToCollection_SingleBulkCall(t *testing.T) {
	kv := &mockKeyValueClient{}
	records := []gdn.KeyValuePair{
		gdn.NewStringPair("k1", "v1", gdn.NoExpiration),
		gdn.NewStringPair("k2", "v2", 1700000000),
	}
	kv.On("SetPairs", mock.Anything, "users", records).Return(nil).Once()

	res, err := commands.AddDataToCollection(context.Background(), kv, "users", records)
	require.NoError(t, err)

	var buf bytes.Buffer
	res.Print(&buf)
	assert.Equal(t, "Data added to collection 'users'\n", buf.String())
	kv.AssertNumberOfCalls(t, "SetPairs", 1)
}

func TestAddDataToCollection_WholeBatchFails(t *testing.T) {
	kv := &mockKeyValueClient{}
	kv.On("SetPairs", mock.Anything, "users", mock.Anything).Return(&gdn.APIError{StatusCode: http.StatusBadRequest})

	_, err := commands.AddDataToCollection(context.Background(), kv, "users", []gdn.KeyValuePair{gdn.NewStringPair("k", "v", -1)})
	assert.Equal(t, errors.KindRemote, errors.Classify(err))
}

func TestGetDataFromCollection(t *testing.T) {
	kv := &mockKeyValueClient{}
	kv.On("GetPair", mock.Anything, "users", "k1").
		Return(&gdn.KeyValuePair{Key: "k1", Value: json.RawMessage(`"v1"`), ExpireAt: -1}, nil)

	res, err := commands.GetDataFromCollection(context.Background(), kv, "users", "k1")
	require.NoError(t, err)
	assert.JSONEq(t, `"v1"`, string(res.Value))

	var buf bytes.Buffer
	res.Print(&buf)
	assert.Equal(t, "Data retrieved from collection 'users': \"v1\"\nRetrieved value: \"v1\"\n", buf.String())
}

func TestGetDataFromCollection_NotFound(t *testing.T) {
	kv := &mockKeyValueClient{}
	kv.On("GetPair", mock.Anything, "users", "absent").
		Return(nil, &gdn.APIError{StatusCode: http.StatusNotFound, ErrorNum: 1202, Message: "document not found"})

	_, err := commands.GetDataFromCollection(context.Background(), kv, "users", "absent")
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.Classify(err))
	assert.True(t, errors.ShouldAbort(errors.Classify(err)))
}
