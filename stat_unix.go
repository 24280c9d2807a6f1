//go:build unix

package etag

import "syscall"

func sysInode(sys any) uint64 {
	if st, ok := sys.(*syscall.Stat_t); ok && st != nil {
		return uint64(st.Ino)
	}
	return 0
}
