package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	p := NewLine(strings.NewReader("My Note\r\ngo cli\n"), &out, "Go Rust")

	title, err := p.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "My Note", title)

	tags, err := p.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, "go cli", tags)

	assert.Contains(t, out.String(), "标题: ")
	assert.Contains(t, out.String(), "提示词: Go Rust")
}

func TestLine_EOF(t *testing.T) {
	ctx := context.Background()
	p := NewLine(strings.NewReader("only title"), &bytes.Buffer{}, "")

	title, err := p.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "only title", title)

	tags, err := p.Tags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLine(strings.NewReader("x\n"), &bytes.Buffer{}, "").Title(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	p := Static{TitleValue: "t", TagsValue: "a b"}

	title, _ := p.Title(context.Background())
	tags, _ := p.Tags(context.Background())
	assert.Equal(t, "t", title)
	assert.Equal(t, "a b", tags)
}
