package design

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	before := time.Now().UTC()
	md := NewMetadata("crossbar", "alex")
	after := time.Now().UTC()

	assert.Equal(t, "crossbar", md.Name)
	assert.Equal(t, "alex", md.Author)
	assert.True(t, md.IsValid())
	assert.Equal(t, time.UTC, md.CreatedAt().Location())
	assert.False(t, md.CreatedAt().Before(before))
	assert.False(t, md.CreatedAt().After(after))
}

func TestMetadata_TimestampNormalizedToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2026, 3, 14, 15, 9, 26, 0, zone)

	md := Metadata{Name: "crossbar"}.WithTimestamp(local)

	require.True(t, md.IsValid())
	assert.Equal(t, time.UTC, md.CreatedAt().Location())
	// The instant is preserved, only the zone changes.
	assert.True(t, md.CreatedAt().Equal(local))
	assert.Equal(t, 10, md.CreatedAt().Hour())
}

func TestMetadata_ZeroValueInvalid(t *testing.T) {
	var md Metadata
	assert.False(t, md.IsValid())
	assert.True(t, md.CreatedAt().IsZero())
}

func TestMetadata_Chaining(t *testing.T) {
	md := NewMetadata("crossbar", "alex").
		WithNotes("first pass at the dma fan-out").
		WithProfileSignature("xcve2302")

	assert.Equal(t, "first pass at the dma fan-out", md.Notes)
	assert.Equal(t, "xcve2302", md.ProfileSignature)
	assert.True(t, md.IsValid())
}
