package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/filex"
	"github.com/dmitrijs2005/userregistry/internal/models"
)

// filePerm is restrictive because passwords may be stored in clear text.
const filePerm os.FileMode = 0o600

const lockRetryDelay = 20 * time.Millisecond

// ErrLockTimeout is returned when the file lock could not be taken in time.
var ErrLockTimeout = errors.New("timed out waiting for registry lock")

// JSONRepository is a Repository backed by a single JSON file.
type JSONRepository struct {
	mu          sync.Mutex
	path        string
	flock       *flock.Flock
	lockTimeout time.Duration
}

// NewJSONRepository returns a repository for the file at path. A zero
// lockTimeout waits for the lock until ctx is done.
func NewJSONRepository(path string, lockTimeout time.Duration) *JSONRepository {
	return &JSONRepository{
		path:        path,
		flock:       flock.New(path + ".lock"),
		lockTimeout: lockTimeout,
	}
}

// Path returns the data file path.
func (r *JSONRepository) Path() string {
	return r.path
}

// Load reads the document under a shared lock.
func (r *JSONRepository) Load(ctx context.Context) (*models.UserDocument, error) {
	unlock, err := r.acquire(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrRead, err)
	}
	defer unlock()

	return r.loadLocked()
}

// Save writes the document under an exclusive lock.
func (r *JSONRepository) Save(ctx context.Context, doc *models.UserDocument) error {
	unlock, err := r.acquire(ctx, false)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrWrite, err)
	}
	defer unlock()

	return r.saveLocked(doc)
}

// Update loads the document, applies fn and saves the result if fn reports a
// change, all under one exclusive lock. Errors returned by fn are passed
// through unchanged.
func (r *JSONRepository) Update(ctx context.Context, fn UpdateFunc) error {
	unlock, err := r.acquire(ctx, false)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrRead, err)
	}
	defer unlock()

	doc, err := r.loadLocked()
	if err != nil {
		return err
	}

	changed, err := fn(doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	return r.saveLocked(doc)
}

// Init creates the data file with an empty document when it is missing.
// An existing file is never modified, even if it is malformed.
func (r *JSONRepository) Init(ctx context.Context) (bool, error) {
	if err := filex.EnsureParentDir(r.path); err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrWrite, err)
	}

	unlock, err := r.acquire(ctx, false)
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrWrite, err)
	}
	defer unlock()

	if _, err := os.Stat(r.path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %w", common.ErrRead, err)
	}

	if err := r.saveLocked(models.NewUserDocument()); err != nil {
		return false, err
	}
	return true, nil
}

// acquire takes the in-process mutex and then the file lock. The returned
// func releases both.
func (r *JSONRepository) acquire(ctx context.Context, shared bool) (func(), error) {
	r.mu.Lock()

	lockCtx, cancel := ctx, context.CancelFunc(func() {})
	if r.lockTimeout > 0 {
		lockCtx, cancel = context.WithTimeout(ctx, r.lockTimeout)
	}
	defer cancel()

	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = r.flock.TryRLockContext(lockCtx, lockRetryDelay)
	} else {
		ok, err = r.flock.TryLockContext(lockCtx, lockRetryDelay)
	}
	if err != nil || !ok {
		r.mu.Unlock()
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, r.flock.Path())
		}
		return nil, fmt.Errorf("lock %s: %w", r.flock.Path(), err)
	}

	return func() {
		_ = r.flock.Unlock()
		r.mu.Unlock()
	}, nil
}

// documentShape distinguishes a missing collection from an empty one.
type documentShape struct {
	RegisteredUsers *[]models.User `json:"registeredUsers"`
}

func (r *JSONRepository) loadLocked() (*models.UserDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrRead, err)
	}

	var shape documentShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrRead, r.path, err)
	}
	if shape.RegisteredUsers == nil {
		return nil, fmt.Errorf("%w: parsing %s: missing registeredUsers array", common.ErrRead, r.path)
	}

	doc := &models.UserDocument{RegisteredUsers: *shape.RegisteredUsers}
	if doc.RegisteredUsers == nil {
		doc.RegisteredUsers = []models.User{}
	}
	return doc, nil
}

func (r *JSONRepository) saveLocked(doc *models.UserDocument) error {
	out := models.UserDocument{RegisteredUsers: doc.RegisteredUsers}
	if out.RegisteredUsers == nil {
		out.RegisteredUsers = []models.User{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %w", common.ErrWrite, err)
	}
	data = append(data, '\n')

	if err := filex.WriteFileAtomic(r.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", common.ErrWrite, err)
	}
	return nil
}
