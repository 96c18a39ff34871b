package carrier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_LookupIsCaseInsensitive(t *testing.T) {
	table := DefaultTable()

	for _, key := range []string{"ROGERS", "Rogers", "rogers", "  rogers "} {
		domain, ok := table.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, "pcs.rogers.com", domain)
	}
}

func TestTable_LookupUnknownAndEmpty(t *testing.T) {
	table := DefaultTable()

	for _, key := range []string{"", "unknown", "UNKNOWN", "xyz"} {
		_, ok := table.Lookup(key)
		assert.False(t, ok, key)
	}
}

func TestTable_Supported(t *testing.T) {
	supported := DefaultTable().Supported()
	assert.Equal(t, []string{
		"bell", "chatr", "fido", "freedom", "koodo", "public",
		"rogers", "sasktel", "telus", "videotron", "virgin",
	}, supported)

	supported[0] = "mutated"
	assert.Equal(t, "bell", DefaultTable().Supported()[0])
}

func TestAddress(t *testing.T) {
	domain, ok := DefaultTable().Lookup("Bell")
	require.True(t, ok)
	assert.Equal(t, "txt.bell.ca", domain)
	assert.Equal(t, "4165550100@txt.bell.ca", Address("416-555-0100", domain))
	assert.Equal(t, "4165550100", DigitsOnly("(416) 555 0100"))
}

func TestStaticResolver_Resolve(t *testing.T) {
	r := NewStaticResolver(DefaultTable())
	ctx := context.Background()

	domain, err := r.Resolve(ctx, "Telus", "416-555-0100")
	require.NoError(t, err)
	assert.Equal(t, "msg.telus.com", domain)

	_, err = r.Resolve(ctx, "", "416-555-0100")
	assert.True(t, errors.Is(err, ErrCarrierNotProvided))

	_, err = r.Resolve(ctx, "Unknown", "416-555-0100")
	assert.True(t, errors.Is(err, ErrCarrierNotProvided))

	_, err = r.Resolve(ctx, "xyz", "416-555-0100")
	assert.True(t, errors.Is(err, ErrUnsupportedCarrier))
}
