package logsnap

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a Stream.At call outside [0, Len()).
var ErrIndexOutOfRange = errors.New("logsnap: index out of range")

// ErrLeafCountMismatch indicates a snapshot's leaf-position slices don't
// match the adapter's MLC model leaf-pair count.
var ErrLeafCountMismatch = errors.New("logsnap: leaf position count does not match MLC model")

func logsnapErrorf(idx int, err error) error {
	return fmt.Errorf("logsnap: snapshot %d: %w", idx, err)
}
