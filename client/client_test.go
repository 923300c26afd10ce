package client

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"membuf/internal/config"
	"membuf/internal/engine"
	"membuf/internal/router"
	"membuf/pkg/errors"
)

func setupTestClient(t *testing.T, capacity int) *Client {
	t.Helper()

	conf, err := config.NewConfig(config.WithCapacity(capacity))
	assert.NoError(t, err)

	e, err := engine.New(conf)
	assert.NoError(t, err)

	srv := httptest.NewServer(router.New(e))
	t.Cleanup(func() {
		srv.Close()
		_ = e.Close()
	})

	return New(srv.URL)
}

func TestClientHealth(t *testing.T) {
	c := setupTestClient(t, 4)

	ok, err := c.Health()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestClientPutGet(t *testing.T) {
	c := setupTestClient(t, 4)

	outcome, err := c.Put(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, PutOutcomeInserted, outcome)

	outcome, err = c.Put(1, 99)
	assert.NoError(t, err)
	assert.Equal(t, PutOutcomeUpdated, outcome)

	v, err := c.Get(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), v)

	_, err = c.Get(2)
	assert.ErrorIs(t, err, errors.ErrKeyNotFound)
}

func TestClientPutFull(t *testing.T) {
	c := setupTestClient(t, 2)

	for key := int64(1); key <= 2; key++ {
		outcome, err := c.Put(key, key*10)
		assert.NoError(t, err)
		assert.Equal(t, PutOutcomeInserted, outcome)
	}

	outcome, err := c.Put(3, 30)
	assert.NoError(t, err)
	assert.Equal(t, PutOutcomeRejected, outcome)

	// Existing key still updates against a full buffer.
	outcome, err = c.Put(1, 99)
	assert.NoError(t, err)
	assert.Equal(t, PutOutcomeUpdated, outcome)
}

func TestClientStats(t *testing.T) {
	c := setupTestClient(t, 2)

	_, err := c.Put(1, 10)
	assert.NoError(t, err)

	stats, err := c.Stats()
	assert.NoError(t, err)
	assert.Equal(t, &Stats{Len: 1, Cap: 2, Full: false}, stats)
}
