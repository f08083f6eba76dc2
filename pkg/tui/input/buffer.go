// ABOUTME: Reader turns raw terminal bytes from an io.Reader into a channel of parsed keys.
// ABOUTME: Buffers partial escape sequences and UTF-8 runes; a lone ESC resolves after ~50ms.

package input

import (
	"context"
	"io"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/pichat/pkg/tui/key"
)

const (
	readBufSize  = 256
	keyQueueSize = 64
	escTimeout   = 50 * time.Millisecond
)

// Reader reads from r and publishes keys on Keys(). Unknown input is
// dropped. The channel is closed when Start returns.
type Reader struct {
	r    io.Reader
	keys chan key.Key
	buf  []byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:    r,
		keys: make(chan key.Key, keyQueueSize),
		buf:  make([]byte, 0, readBufSize),
	}
}

// Keys returns the channel parsed keys are delivered on.
func (rd *Reader) Keys() <-chan key.Key {
	return rd.keys
}

// Start reads until ctx is cancelled or the underlying reader fails.
// It blocks; run it in a goroutine.
func (rd *Reader) Start(ctx context.Context) {
	defer close(rd.keys)

	chunks := make(chan []byte)
	done := make(chan struct{})
	defer close(done)
	go rd.readLoop(chunks, done)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-chunks:
			if !ok {
				rd.drain(ctx, true)
				return
			}
			rd.buf = append(rd.buf, data...)
		case <-pending:
			// Nothing completed the sequence in time.
			if !rd.drain(ctx, true) {
				return
			}
		}

		if !rd.drain(ctx, false) {
			return
		}
		pending = nil
		if len(rd.buf) > 0 {
			pending = time.After(escTimeout)
		}
	}
}

// readLoop forwards raw reads until the reader fails or done is closed.
func (rd *Reader) readLoop(ch chan<- []byte, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := rd.r.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- data:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// drain dispatches every complete key in the buffer. With force set,
// incomplete trailing input is resolved too. Returns false if ctx ended.
func (rd *Reader) drain(ctx context.Context, force bool) bool {
	for len(rd.buf) > 0 {
		k, n := rd.next(force)
		if n == 0 {
			return true
		}
		rd.buf = rd.buf[n:]
		if k.Type == key.KeyUnknown {
			continue
		}
		select {
		case rd.keys <- k:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// next parses one key from the front of the buffer. n == 0 means more
// bytes are needed.
func (rd *Reader) next(force bool) (key.Key, int) {
	b := rd.buf
	if b[0] == 0x1b {
		return nextEscape(string(b), force)
	}

	if !utf8.FullRune(b) {
		if force {
			return key.Of(key.KeyUnknown), 1
		}
		return key.Key{}, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return key.Of(key.KeyUnknown), 1
	}
	return key.ParseKey(string(b[:size])), size
}

func nextEscape(s string, force bool) (key.Key, int) {
	if k, n, ok := key.MatchPrefix(s); ok {
		return k, n
	}
	if len(s) == 1 || key.IsPrefix(s) {
		if !force {
			return key.Key{}, 0
		}
		if len(s) == 1 {
			return key.Of(key.KeyEscape), 1
		}
		return key.Of(key.KeyUnknown), len(s)
	}

	switch s[1] {
	case '[':
		// Unknown CSI: swallow through the final byte.
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return key.Of(key.KeyUnknown), i + 1
			}
		}
		if !force {
			return key.Key{}, 0
		}
		return key.Of(key.KeyUnknown), len(s)
	case 'O':
		return key.Of(key.KeyUnknown), min(3, len(s))
	}
	return key.Of(key.KeyEscape), 1
}
