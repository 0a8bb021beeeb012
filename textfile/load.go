package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/parray"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrNotRegular is returned when trying to load something other than a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// Loader loads a text file as a position array of fragments.
type Loader struct {
	path      string                // file name
	info      os.FileInfo           // result from Stat(path)
	file      *os.File              // file handle
	fragSize  int64                 // recommended fragment length in bytes
	cast      *caster.Caster        // broadcaster for async file loading
	start     sync.Once             // loading is started once
	done      chan struct{}         // closed when loading has finished
	fragments []parray.Item[string] // loaded fragments
	lastError error                 // remember last I/O error
}

// Load reads a file, which must be a UTF-8 text file, and returns its content as
// a position array of fragments. Clients may indicate a recommended fragment
// length. A fragSize of 0 lets Load use sensible defaults, depending on the
// size of the file.
func Load(name string, fragSize int64) ([]parray.Item[string], error) {
	l, err := Open(name, fragSize)
	if err != nil {
		return nil, err
	}
	l.Start()
	return l.Wait()
}

// Open opens an OS file and collects some useful information on it,
// checking for error conditions. Loading starts with a call to Start.
func Open(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path:     name,
		info:     fi,
		file:     file,
		fragSize: fragmentSize(fi.Size(), fragSize),
		cast:     caster.New(nil), // we will broadcast messages when fragments are loaded
		done:     make(chan struct{}),
	}
	tracer().Debugf("opened %s, %d bytes, fragment size %d", name, fi.Size(), l.fragSize)
	return l, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = size
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	if fragSize < utf8.UTFMax { // a fragment must be able to hold any rune
		fragSize = utf8.UTFMax
	}
	return fragSize
}

// Subscribe returns a channel which will receive every fragment as soon as
// it is loaded. The channel is closed after the last fragment or when ctx is
// done. Subscriptions after Start may miss fragments.
func (l *Loader) Subscribe(ctx context.Context) (<-chan parray.Item[string], bool) {
	capacity := l.capacity()
	sub, ok := l.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	ch := make(chan parray.Item[string], capacity)
	go func() {
		defer close(ch)
		for m := range sub {
			if frag, ok := m.(parray.Item[string]); ok {
				ch <- frag
			}
		}
	}()
	return ch, true
}

// capacity is an upper bound for the number of fragments.
func (l *Loader) capacity() uint {
	return uint(l.info.Size()/(l.fragSize-utf8.UTFMax+1) + 2)
}

// Start starts loading the file in the background. Calling Start more than
// once has no effect.
func (l *Loader) Start() {
	l.start.Do(func() {
		go l.loadAllFragments()
	})
}

// Wait waits for loading to finish and returns the fragments of the file.
// If loading has not been started yet, Wait starts it.
func (l *Loader) Wait() ([]parray.Item[string], error) {
	l.Start()
	<-l.done
	return l.fragments, l.lastError
}

// --- File loading goroutine ------------------------------------------------

func (l *Loader) loadAllFragments() {
	defer close(l.done)
	defer l.cast.Close()
	defer l.file.Close()
	//
	r := bufio.NewReader(l.file)
	buf := make([]byte, l.fragSize)
	var carry []byte // incomplete UTF-8 sequence at the end of the previous fragment
	pos := 0
	for {
		n := copy(buf, carry)
		cnt, err := io.ReadFull(r, buf[n:])
		cnt += n
		eof := err == io.EOF || err == io.ErrUnexpectedEOF
		if err != nil && !eof {
			l.lastError = fmt.Errorf("error loading text fragment: %w", err)
			tracer().Errorf("textfile: %v", l.lastError)
			return
		}
		cut := cnt
		if !eof {
			cut = runeBoundary(buf[:cnt])
		}
		carry = append(carry[:0], buf[cut:cnt]...)
		if cut > 0 {
			content := string(buf[:cut])
			if !utf8.ValidString(content) {
				tracer().Errorf("textfile: fragment at %d of %s is not valid UTF-8", pos, l.path)
			}
			frag := parray.At(pos, pos+cut, content)
			l.fragments = append(l.fragments, frag)
			l.cast.Pub(frag) // signal that this fragment is done loading
			pos += cut
		}
		if eof {
			break
		}
	}
	tracer().Infof("loaded %d fragments from %s", len(l.fragments), l.path)
}

// runeBoundary returns the length of the longest prefix of b which does not
// end in an incomplete UTF-8 sequence.
func runeBoundary(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}
