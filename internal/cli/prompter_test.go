package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "explicit yes", input: "y\n", want: true},
		{name: "full yes", input: "yes\n", want: true},
		{name: "uppercase yes", input: "Y\n", want: true},
		{name: "explicit no", input: "n\n", want: false},
		{name: "empty takes default no", input: "\n", want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "garbage is no", input: "maybe\n", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm(context.Background(), "Apply fix?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Apply fix?")
		})
	}
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Driver Boost - John Smith - Monaco\n"), &out)

	got, err := p.Ask(context.Background(), "Corrected title", "original")
	require.NoError(t, err)
	assert.Equal(t, "Driver Boost - John Smith - Monaco", got)

	p = NewPrompter(strings.NewReader("\n"), &out)
	got, err = p.Ask(context.Background(), "Corrected title", "original")
	require.NoError(t, err)
	assert.Equal(t, "original", got)
}

func TestReadLineCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// A reader that never delivers a line.
	blocked := NewNonBlockingReader(blockingReader{})
	_, err := blocked.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
