package domain

import "errors"

// ErrStorageWrite reports that the backing store rejected a write (quota
// exhausted, backend fault). The record was not persisted; callers must
// surface this rather than pretend the operation succeeded.
var ErrStorageWrite = errors.New("storage write failed")
