package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink is the delivery boundary for rendered output.
type Sink interface {
	Name() string
	Deliver(output string) error
}

type writerSink struct {
	name string
	w    io.Writer
}

// Writer delivers output to w followed by a newline, the way a console print would.
func Writer(w io.Writer) Sink { return &writerSink{name: "writer", w: w} }

// Stdout delivers output to the process's standard output.
func Stdout() Sink { return &writerSink{name: "stdout", w: os.Stdout} }

func (s *writerSink) Name() string { return s.name }

func (s *writerSink) Deliver(output string) error {
	_, err := fmt.Fprintln(s.w, output)
	return err
}

type funcSink func(string)

// Func delivers output to a completion handler.
func Func(fn func(output string)) Sink { return funcSink(fn) }

func (funcSink) Name() string { return "func" }

func (f funcSink) Deliver(output string) error {
	f(output)
	return nil
}

type fileSink struct {
	path string
}

// File writes output to path, replacing any existing content and creating
// parent directories as needed.
func File(path string) Sink { return &fileSink{path: path} }

func (s *fileSink) Name() string { return "file:" + s.path }

func (s *fileSink) Deliver(output string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("sink: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("sink: write %s: %w", s.path, err)
	}
	return nil
}
