package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckService_CreateAndList(t *testing.T) {
	svc := NewCheckService(&fakeCheckRepo{})

	created, err := svc.Create(context.Background(), "u-1", "inn", "completed", json.RawMessage(`{"score":42}`))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u-1", created.UserID)

	_, err = svc.Create(context.Background(), "u-2", "passport", "pending", nil)
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "inn", list[0].Type)
	require.JSONEq(t, `{"score":42}`, string(list[0].Result))
}
