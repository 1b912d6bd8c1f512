package timevault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	addr := NewAddress([]byte("some identity"))
	require.Len(t, addr, AddressLength)
	assert.NoError(t, addr.Validate())
	assert.True(t, addr.Equals(NewAddress([]byte("some identity"))))
	assert.False(t, addr.Equals(NewAddress([]byte("other identity"))))

	assert.Error(t, Address{1, 2, 3}.Validate())
	assert.Error(t, Address{}.Validate())
}

func TestCondition(t *testing.T) {
	cond := NewCondition("vault", "lock", []byte("registry-id"))
	require.NoError(t, cond.Validate())

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "vault", ext)
	assert.Equal(t, "lock", typ)
	assert.Equal(t, []byte("registry-id"), data)

	// condition addresses are deterministic
	assert.True(t, cond.Address().Equals(NewCondition("vault", "lock", []byte("registry-id")).Address()))
	assert.False(t, cond.Address().Equals(NewCondition("vault", "lock", []byte("other")).Address()))
	assert.NoError(t, cond.Address().Validate())
}
