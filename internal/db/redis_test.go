package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/evote-api/internal/config"
)

func TestOpenRedis_Disabled(t *testing.T) {
	client, err := OpenRedis(context.Background(), &config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	client, err := OpenRedis(context.Background(), &config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
	assert.Nil(t, client)
}
