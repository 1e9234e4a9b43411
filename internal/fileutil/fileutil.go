// Package fileutil holds the file modes keycase uses for what it writes.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for converted documents and
// log files, which may carry sensitive data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerDir is the permission mode for directories keycase creates.
const OwnerDir os.FileMode = 0o750
