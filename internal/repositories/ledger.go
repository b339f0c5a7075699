package repositories

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// LedgerFileName is the default backing store name, placed next to the executable.
const LedgerFileName = "Downloaded Videos URLs.txt"

// Ledger is the append-only record of URLs already fetched.
//
// Membership is exact string equality: no scheme, query-order or tracking-parameter normalization.
type Ledger interface {
	// EnsureExists creates the backing store if absent. It never truncates an existing store.
	EnsureExists() error

	// ReadAll returns every recorded URL, or an empty set if the store cannot be read.
	ReadAll() map[string]struct{}

	// Contains reports whether url has been recorded.
	Contains(url string) bool

	// Append records url. Failures are logged, never returned.
	Append(url string)

	// Path returns the backing store location.
	Path() string
}

// FileLedger implements [Ledger] over a plain UTF-8 text file with one URL per line.
//
// The set is rebuilt from disk on every query. No locking is done, so two processes appending
// to the same file may interleave lines; each append is a single write of one line.
type FileLedger struct {
	path   string
	logger *log.Logger
}

// NewFileLedger creates a FileLedger backed by path. A nil logger discards diagnostics.
func NewFileLedger(path string, logger *log.Logger) *FileLedger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileLedger{path: path, logger: logger}
}

// DefaultLedgerPath returns [LedgerFileName] in the directory holding the running executable.
func DefaultLedgerPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), LedgerFileName), nil
}

// Path returns the backing store location.
func (l *FileLedger) Path() string {
	return l.path
}

// EnsureExists creates the backing store and its parent directory when missing.
func (l *FileLedger) EnsureExists() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	return f.Close()
}

// ReadAll returns the set of recorded URLs. Blank lines are skipped.
//
// Read failures degrade to an empty set so that an unavailable ledger means "nothing downloaded yet".
func (l *FileLedger) ReadAll() map[string]struct{} {
	urls := make(map[string]struct{})

	f, err := os.Open(l.path)
	if err != nil {
		l.logger.Debug("ledger unreadable, treating as empty", "path", l.path, "error", err)
		return urls
	}
	defer f.Close()

	err = eachLine(f, func(line string) {
		urls[line] = struct{}{}
	})
	if err != nil {
		l.logger.Debug("ledger read failed, treating as empty", "path", l.path, "error", err)
		return make(map[string]struct{})
	}

	return urls
}

// Contains reports whether url is in [FileLedger.ReadAll].
func (l *FileLedger) Contains(url string) bool {
	_, ok := l.ReadAll()[url]
	return ok
}

// Append writes url and a trailing newline to the end of the backing store.
func (l *FileLedger) Append(url string) {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		l.logger.Debug("failed to open ledger for append", "path", l.path, "url", url, "error", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(url + "\n"); err != nil {
		l.logger.Debug("failed to append to ledger", "path", l.path, "url", url, "error", err)
	}
}

// Records returns recorded URLs in append order, without blank lines or duplicates.
//
// Unlike [FileLedger.ReadAll] this surfaces read errors, for commands that inspect the ledger directly.
func (l *FileLedger) Records() ([]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	var records []string
	seen := make(map[string]struct{})
	err = eachLine(f, func(line string) {
		if _, dup := seen[line]; dup {
			return
		}
		seen[line] = struct{}{}
		records = append(records, line)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return records, nil
}

// eachLine calls fn with every trimmed, non-blank line of r. Lines may be any length.
func eachLine(r io.Reader, fn func(string)) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			fn(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
