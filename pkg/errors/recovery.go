package errors

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RecoveryStrategy defines how to recover from an error
type RecoveryStrategy interface {
	CanRecover(err *Error) bool
	Attempt(err *Error) error
	Description() string
}

// Recoverer attempts to recover from errors
type Recoverer struct {
	strategies []RecoveryStrategy
	verbose    bool
	out        io.Writer
}

// NewRecoverer creates a new error recoverer
func NewRecoverer(verbose bool) *Recoverer {
	return &Recoverer{
		strategies: []RecoveryStrategy{
			&MissingParentStrategy{},
		},
		verbose: verbose,
		out:     os.Stdout,
	}
}

// Recover attempts to recover from an error. A nil return means the
// condition behind err was repaired and the operation may be retried.
func (r *Recoverer) Recover(err *Error) error {
	if !err.Recoverable {
		return err
	}
	for _, strategy := range r.strategies {
		if strategy.CanRecover(err) {
			if r.verbose {
				fmt.Fprintf(r.out, "🔧 Attempting recovery: %s\n", strategy.Description())
			}
			if recErr := strategy.Attempt(err); recErr == nil {
				fmt.Fprintln(r.out, "✅ Recovery successful!")
				return nil
			} else if r.verbose {
				fmt.Fprintf(r.out, "⚠️  Recovery failed: %v\n", recErr)
			}
		}
	}
	return err
}

// MissingParentStrategy creates the destination directory a copy or link
// could not be written into. The directory is read from the "dir" context key.
type MissingParentStrategy struct{}

func (s *MissingParentStrategy) CanRecover(err *Error) bool {
	return err.Code == ErrMissingParent && err.Context["dir"] != ""
}

func (s *MissingParentStrategy) Attempt(err *Error) error {
	dir := filepath.Clean(err.Context["dir"])
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return fmt.Errorf("failed to create %s: %w", dir, mkErr)
	}
	return nil
}

func (s *MissingParentStrategy) Description() string { return "Creating missing destination directory" }
