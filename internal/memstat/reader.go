// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memstat

import (
	"context"
	"fmt"

	"github.com/pbnjay/memory"
	"github.com/prometheus/procfs"
)

// Supported memory sources.
const (
	SourceProcess = "process"
	SourceSystem  = "system"
)

// NewReader returns the Reader for source.
func NewReader(source string) (Reader, error) {
	switch source {
	case SourceProcess:
		return NewProcessReader(), nil
	case SourceSystem:
		return NewSystemReader(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
}

// processReader reads VmRSS of the current process from /proc/self/status.
type processReader struct {
	newFS func() (procfs.FS, error)
}

// NewProcessReader returns a Reader for the resident set size of this
// process. It works only where procfs is mounted; elsewhere every read fails
// with [ErrMemoryUnavailable].
func NewProcessReader() Reader {
	return &processReader{newFS: procfs.NewDefaultFS}
}

func (r *processReader) ReadKilobytes(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fs, err := r.newFS()
	if err != nil {
		return 0, fmt.Errorf("%w: open procfs: %v", ErrMemoryUnavailable, err)
	}

	self, err := fs.Self()
	if err != nil {
		return 0, fmt.Errorf("%w: read self: %v", ErrMemoryUnavailable, err)
	}

	status, err := self.NewStatus()
	if err != nil {
		return 0, fmt.Errorf("%w: read status: %v", ErrMemoryUnavailable, err)
	}

	// procfs converts the kB figure from /proc into bytes
	return status.VmRSS / 1024, nil
}

func (r *processReader) Source() string {
	return SourceProcess
}

// systemReader reports host memory in use as total minus free.
type systemReader struct {
	total func() uint64
	free  func() uint64
}

// NewSystemReader returns a Reader for host memory in use.
func NewSystemReader() Reader {
	return &systemReader{total: memory.TotalMemory, free: memory.FreeMemory}
}

func (r *systemReader) ReadKilobytes(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	total := r.total()
	if total == 0 {
		return 0, fmt.Errorf("%w: total memory is not reported", ErrMemoryUnavailable)
	}

	free := r.free()
	if free > total {
		return 0, fmt.Errorf("%w: free %d exceeds total %d", ErrMemoryUnavailable, free, total)
	}

	return (total - free) / 1024, nil
}

func (r *systemReader) Source() string {
	return SourceSystem
}
