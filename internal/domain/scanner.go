package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"tgrep.dev/pkg/tgrep/internal/adapter"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

const (
	// DefaultMaxFileSize is the largest file the scanner reads.
	DefaultMaxFileSize int64 = 8 << 20

	sniffSize = 8 << 10

	// ctxCheckEvery bounds how many lines are read between cancellation checks.
	ctxCheckEvery = 512
)

var (
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// LineScanner searches a single file line by line.
type LineScanner interface {
	// Scan yields one Match per matching line, recording the first match
	// span. A file that cannot be searched as text yields a single error and
	// ends the sequence; the caller decides what to do with earlier matches.
	Scan(ctx context.Context, file m.FileCandidate, pattern *m.Pattern) iter.Seq2[m.Match, error]
}

type lineScanner struct {
	fsAdapter   adapter.SourceFSAdapter
	maxFileSize int64
}

// NewLineScanner creates a LineScanner. A maxFileSize <= 0 disables the size limit.
func NewLineScanner(fsAdapter adapter.SourceFSAdapter, maxFileSize int64) LineScanner {
	return &lineScanner{
		fsAdapter:   fsAdapter,
		maxFileSize: maxFileSize,
	}
}

func (s *lineScanner) Scan(ctx context.Context, file m.FileCandidate, pattern *m.Pattern) iter.Seq2[m.Match, error] {
	return func(yield func(m.Match, error) bool) {
		if pattern == nil {
			return
		}

		if s.maxFileSize > 0 && file.Size > s.maxFileSize {
			yield(m.Match{}, fmt.Errorf("%s: %w", file.Path, ErrFileTooLarge))
			return
		}

		rc, err := s.fsAdapter.Open(file.Path)
		if err != nil {
			yield(m.Match{}, fmt.Errorf("open %s: %w", file.Path, err))
			return
		}

		defer func() { _ = rc.Close() }()

		lines, err := textReader(rc)
		if err != nil {
			yield(m.Match{}, fmt.Errorf("%s: %w", file.Path, err))
			return
		}

		s.scanLines(ctx, file.Path, lines, pattern, yield)
	}
}

func (s *lineScanner) scanLines(
	ctx context.Context,
	path m.Path,
	lines *bufio.Reader,
	pattern *m.Pattern,
	yield func(m.Match, error) bool,
) {
	lineNo := 0

	for {
		if lineNo%ctxCheckEvery == 0 && ctx.Err() != nil {
			return
		}

		line, readErr := lines.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++

			text := bytes.TrimSuffix(bytes.TrimSuffix(line, []byte{'\n'}), []byte{'\r'})

			if err := checkText(text); err != nil {
				yield(m.Match{}, fmt.Errorf("%s:%d: %w", path, lineNo, err))
				return
			}

			if loc := pattern.FindIndex(text); loc != nil {
				match := m.Match{
					Path:  path,
					Line:  lineNo,
					Text:  string(text),
					Start: loc[0],
					End:   loc[1],
				}

				if !yield(match, nil) {
					return
				}
			}
		}

		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				yield(m.Match{}, fmt.Errorf("read %s: %w", path, readErr))
			}

			return
		}
	}
}

// textReader sniffs the head of r and returns a line reader producing UTF-8.
// UTF-16 input with a BOM is transcoded, a UTF-8 BOM is dropped, and a NUL
// byte in the head of any other input marks it as binary.
func textReader(r io.Reader) (*bufio.Reader, error) {
	head := bufio.NewReaderSize(r, sniffSize)

	sniff, err := head.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	isUTF16 := bytes.HasPrefix(sniff, utf16LEBOM) || bytes.HasPrefix(sniff, utf16BEBOM)
	if !isUTF16 && bytes.IndexByte(sniff, 0) >= 0 {
		return nil, ErrBinaryFile
	}

	decoded := transform.NewReader(head, unicode.BOMOverride(transform.Nop))

	return bufio.NewReader(decoded), nil
}

func checkText(line []byte) error {
	if bytes.IndexByte(line, 0) >= 0 {
		return ErrBinaryFile
	}

	if !utf8.Valid(line) {
		return ErrNotText
	}

	return nil
}
