package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line asks for each value on its own line. It works on pipes and redirected input.
type Line struct {
	in   *bufio.Reader
	out  io.Writer
	hint string
}

// NewLine creates a line prompter reading from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer, hint string) *Line {
	return &Line{in: bufio.NewReader(in), out: out, hint: hint}
}

// Title implements core.Prompter.
func (l *Line) Title(ctx context.Context) (string, error) {
	fmt.Fprintln(l.out, "步骤 1/2: 请输入笔记标题")
	return l.ask(ctx, "标题: ")
}

// Tags implements core.Prompter.
func (l *Line) Tags(ctx context.Context) (string, error) {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, "步骤 2/2: 请输入标签（用空格隔开）")
	if l.hint != "" {
		fmt.Fprintf(l.out, "提示词: %s\n\n", l.hint)
	}
	return l.ask(ctx, "标签: ")
}

func (l *Line) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(l.out, label)

	line, err := l.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
