package test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/miruken-go/proxy"
)

//go:generate go run ../cmd/proxygen --config proxies.yaml

type (
	Echo interface {
		EchoBack(message string) string
	}

	// DuplicateEcho declares the same method as Echo.
	DuplicateEcho interface {
		EchoBack(message string) string
	}

	Joiner interface {
		Concat(first, second string) string
	}

	Pinger interface {
		Ping()
	}

	Counter interface {
		Count() int64
	}

	Formatter interface {
		Format(format string, args ...any) string
	}

	Item struct {
		Id   string
		Name string
	}

	Fetcher interface {
		Fetch(ctx context.Context, id string) (*Item, error)
		io.Closer
	}
)

var ErrNotFound = errors.New("item not found")

// Echoer implements most contracts.
type Echoer struct {
	Suffix string
	pings  int
}

func (e *Echoer) EchoBack(message string) string {
	return message + e.Suffix
}

func (e *Echoer) Concat(first, second string) string {
	return first + second
}

func (e *Echoer) Ping() {
	e.pings++
}

func (e *Echoer) Pings() int {
	return e.pings
}

func (e *Echoer) Count() int64 {
	return int64(e.pings)
}

func (e *Echoer) Format(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Store implements Fetcher.
type Store struct {
	Items  map[string]*Item
	closed bool
}

func (s *Store) Fetch(_ context.Context, id string) (*Item, error) {
	if item, ok := s.Items[id]; ok {
		return item, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *Store) Close() error {
	if s.closed {
		return io.ErrClosedPipe
	}
	s.closed = true
	return nil
}

// Failing fails every call.
type Failing struct {
	Err error
}

func (f Failing) Fetch(context.Context, string) (*Item, error) {
	return nil, f.Err
}

func (f Failing) Close() error {
	return f.Err
}

func (f Failing) Ping() {
	panic(f.Err)
}

func (f Failing) EchoBack(message string) string {
	panic(fmt.Errorf("echo %s: %w", strings.ToUpper(message), f.Err))
}

// Tagger prefixes the first string argument with Tag.
type Tagger struct {
	Tag string
}

func (t *Tagger) Intercept(inv *proxy.Invocation) ([]any, error) {
	if len(inv.Args()) > 0 {
		if s, ok := inv.Arg(0).(string); ok {
			inv.SetArg(0, t.Tag+s)
		}
	}
	return inv.Proceed()
}
