package hash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sbeview/internal/hash"
	"github.com/arloliu/sbeview/internal/testschema"
	"github.com/arloliu/sbeview/traits"
)

func TestIDStable(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
	}{
		{"", 0xef46db3751d8e999},
		{"test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, hash.ID(tt.name))
		})
	}
}

func TestIDSchemaNames(t *testing.T) {
	seen := make(map[uint64]string)
	for _, m := range testschema.Market.Messages {
		id := hash.ID(m.Name)
		require.NotContains(t, seen, id, "message %s", m.Name)
		seen[id] = m.Name

		got, ok := testschema.Market.MessageByName(m.Name)
		require.True(t, ok)
		require.Same(t, m, got)
	}

	_, ok := testschema.Market.MessageByName("order")
	require.False(t, ok)
}

func TestIDRegistryRebuild(t *testing.T) {
	first := &traits.Message{Attrs: traits.Attrs{Name: "Quote"}, ID: 1}
	second := &traits.Message{Attrs: traits.Attrs{Name: "Trade"}, ID: 2}
	schema := &traits.Schema{ID: 5, Messages: []*traits.Message{first, second}}
	require.NoError(t, schema.Compile())

	schema.Messages = []*traits.Message{second, first}
	require.NoError(t, schema.Compile())

	for _, m := range schema.Messages {
		got, ok := schema.MessageByName(m.Name)
		require.True(t, ok)
		require.Same(t, m, got)
	}
}

func BenchmarkMessageByName(b *testing.B) {
	for b.Loop() {
		testschema.Market.MessageByName("Simple")
	}
}
