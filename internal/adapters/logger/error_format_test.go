package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nosave/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func messages(entries []logger.ErrorEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}

func TestCollectErrorEntries(t *testing.T) {
	sentinel := zerr.New("failed to restore file snapshot")

	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "wrapped sentinel with metadata",
			err:          zerr.With(zerr.Wrap(sentinel, "restore package.json"), "path", "package.json"),
			wantMessages: []string{"restore package.json", "failed to restore file snapshot"},
		},
		{
			name:         "joined errors expand in order",
			err:          errors.Join(sentinel, zerr.Wrap(errors.New("disk full"), "write failed")),
			wantMessages: []string{"failed to restore file snapshot", "write failed", "disk full"},
		},
		{
			name:         "fmt wrapped error stops the walk",
			err:          zerr.Wrap(fmt.Errorf("open: %w", errors.New("denied")), "outer"),
			wantMessages: []string{"outer", "open: denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			assert.Equal(t, tt.wantMessages, messages(entries))
		})
	}
}

func TestCollectErrorEntries_MetadataMovesToNextMessage(t *testing.T) {
	sentinel := zerr.New("failed to parse manifest")
	err := zerr.With(errors.Join(sentinel, errors.New("bad token")), "path", "/p/package.json")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, map[string]any{"path": "/p/package.json"}, entries[0].Metadata())
	assert.Nil(t, entries[1].Metadata())
}

func TestCollectErrorEntries_TrailingMetadata(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("root"), ""), "exit_code", 3)

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 1)
	assert.Equal(t, "root", entries[0].Message())
	assert.Equal(t, map[string]any{"exit_code": 3}, entries[0].Metadata())
}

func TestFormatErrorEntries(t *testing.T) {
	entries := []logger.ErrorEntry{
		logger.NewErrorEntry("outer", map[string]any{"b": 2, "a": "x"}),
		logger.NewErrorEntry("inner\nsecond line", nil),
	}

	t.Run("quiet", func(t *testing.T) {
		got := logger.FormatErrorEntries(entries, false)
		assert.Equal(t, "outer\n\n  Caused by:\n    → inner\n      second line", got)
	})

	t.Run("verbose", func(t *testing.T) {
		got := logger.FormatErrorEntries(entries, true)
		assert.Equal(t, "outer (a=x b=2)\n\n  Caused by:\n    → inner\n      second line", got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, logger.FormatErrorEntries(nil, false))
	})
}
