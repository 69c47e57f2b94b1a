// Package fixture writes a build file with many independent long-running
// edges. Running it with a high parallelism checks that the build tool does
// not leak file descriptors across subprocesses.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dangerclosesec/ninjaparse/internal/domain"
)

// Options controls the generated graph.
type Options struct {
	// Edges is the number of build edges, each with its own output.
	Edges int
	// Sleep is how long each command runs, in seconds.
	Sleep int
}

// DefaultOptions returns 1000 edges sleeping five minutes each.
func DefaultOptions() Options {
	return Options{Edges: 1000, Sleep: 300}
}

// Validate reports options that cannot produce a usable build file.
func (o Options) Validate() error {
	if o.Edges < 1 {
		return fmt.Errorf("%w: fixture needs at least one edge, got %d", domain.ErrInvalidConfig, o.Edges)
	}
	if o.Sleep < 0 {
		return fmt.Errorf("%w: negative sleep %d", domain.ErrInvalidConfig, o.Sleep)
	}
	return nil
}

// Write writes the build file to w.
func Write(w io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "rule b\n    command = sleep %d; touch $out\n", opts.Sleep)
	for i := 0; i < opts.Edges; i++ {
		fmt.Fprintf(bw, "build foo%d: b\n", i)
	}
	// An explicit default is needed so every edge is built.
	bw.WriteString("default")
	for i := 0; i < opts.Edges; i++ {
		fmt.Fprintf(bw, " foo%d", i)
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// WriteFile writes the build file to path. Invalid options leave an
// existing file untouched.
func WriteFile(path string, opts Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create fixture: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, opts)
}
