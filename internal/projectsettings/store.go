package projectsettings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"ridersettings/internal/fileutil"
	"ridersettings/internal/logging"
)

const (
	// CurrentVersion is the schema version written by Save.
	CurrentVersion = 1

	settingsDirName  = "ProjectSettings"
	settingsFileName = "Rider.json"
)

// Record is the persisted settings entity.
type Record struct {
	Version      int    `json:"version"`
	SolutionName string `json:"solutionName"`
}

// Path returns the settings file location for a project root.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, settingsDirName, settingsFileName)
}

// PathFromDataDir returns the settings file location given the project's data
// (Assets) directory; the project root is its parent.
func PathFromDataDir(dataDir string) string {
	return Path(filepath.Dir(filepath.Clean(dataDir)))
}

// Option customizes a Store.
type Option func(*Store)

// WithLocking enables an advisory file lock around reads and writes.
func WithLocking(enabled bool) Option {
	return func(s *Store) {
		s.locking = enabled
	}
}

// WithAtomicWrite controls whether Save replaces the file through a temp
// file and rename. Enabled by default.
func WithAtomicWrite(enabled bool) Option {
	return func(s *Store) {
		s.atomic = enabled
	}
}

// Store reads and writes one project's Rider.json.
type Store struct {
	path    string
	logger  *slog.Logger
	locking bool
	atomic  bool
}

// New creates a store for the settings file at path. Nothing is read or
// created until Load or Save is called.
func New(path string, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "projectsettings"),
		atomic: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored solution name, or "" when no override is set.
// A malformed file yields "" and a warning; only I/O failures are errors.
func (s *Store) Load() (string, error) {
	record, _, err := s.LoadRecord()
	if err != nil {
		return "", err
	}
	return record.SolutionName, nil
}

// LoadRecord returns the stored record and whether the file exists. A
// malformed file is reported as existing with an empty record. A path whose
// ProjectSettings component is not a directory counts as missing.
func (s *Store) LoadRecord() (Record, bool, error) {
	unlock, err := s.lock(false)
	if err != nil {
		return Record{}, false, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return Record{}, false, nil
		}
		return Record{}, false, fmt.Errorf("read project settings: %w", err)
	}

	record, err := Decode(data)
	if err != nil {
		logging.WarnWithContext(s.logger, "project settings unreadable",
			"project_settings_parse_failed",
			logging.String(logging.FieldPath, s.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix or delete the file, or set the solution name again"),
			logging.String(logging.FieldImpact, "default solution name is used"))
		return Record{}, true, nil
	}

	if record.Version > CurrentVersion {
		s.logger.Debug("project settings written by a newer schema",
			logging.String(logging.FieldPath, s.path),
			logging.Int("version", record.Version),
			logging.Int("supported_version", CurrentVersion))
	}

	return record, true, nil
}

// Save replaces the stored record with one holding name. The caller is
// responsible for passing an already sanitized name.
func (s *Store) Save(name string) error {
	data, err := json.Marshal(Record{Version: CurrentVersion, SolutionName: name})
	if err != nil {
		return fmt.Errorf("marshal project settings: %w", err)
	}

	unlock, err := s.lock(true)
	if err != nil {
		return err
	}
	defer unlock()

	write := fileutil.WriteFile
	if s.atomic {
		write = fileutil.WriteFileAtomic
	}
	if err := write(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write project settings: %w", err)
	}

	s.logger.Debug("saved project settings",
		logging.String(logging.FieldPath, s.path),
		logging.String("solution_name", name))
	return nil
}

// Decode parses a settings record. Missing fields take their zero values.
func Decode(data []byte) (Record, error) {
	var record Record
	if len(data) == 0 {
		return record, errors.New("file is empty")
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// lock acquires the advisory lock when enabled. Reads take a shared lock so
// they never observe a half-written non-atomic save.
func (s *Store) lock(exclusive bool) (func(), error) {
	if !s.locking {
		return func() {}, nil
	}

	lockPath := s.path + ".lock"
	if !exclusive {
		// Nothing to read yet; avoid creating ProjectSettings/ as a side effect.
		if _, err := os.Stat(filepath.Dir(lockPath)); errors.Is(err, fs.ErrNotExist) {
			return func() {}, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	fl := flock.New(lockPath)
	var err error
	if exclusive {
		err = fl.Lock()
	} else {
		err = fl.RLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire settings lock: %w", err)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn("failed to release settings lock",
				logging.String(logging.FieldPath, lockPath),
				logging.Error(err))
		}
	}, nil
}
