package etag

import (
	"os"
	"time"
)

// Stat is the metadata needed to tag a file without reading it. Any value exposing a
// size and a modification time qualifies; os.FileInfo satisfies it directly.
type Stat interface {
	Size() int64
	ModTime() time.Time
}

// Inoder is optionally implemented by a Stat to contribute a unique file identifier
// (an inode number or equivalent) to the tag. A zero identifier is omitted.
type Inoder interface {
	Inode() uint64
}

// FileStat is a plain metadata record for callers that have no os.FileInfo, e.g. when
// the metadata comes from object storage or a database row.
type FileStat struct {
	Bytes    int64
	Modified time.Time
	Ino      uint64
}

var (
	_ Stat   = FileStat{}
	_ Inoder = FileStat{}
)

func (s FileStat) Size() int64        { return s.Bytes }
func (s FileStat) ModTime() time.Time { return s.Modified }
func (s FileStat) Inode() uint64      { return s.Ino }

func inode(st Stat) uint64 {
	switch v := st.(type) {
	case Inoder:
		return v.Inode()
	case os.FileInfo:
		return sysInode(v.Sys())
	default:
		return 0
	}
}
