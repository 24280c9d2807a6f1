//go:build !unix

package etag

func sysInode(any) uint64 {
	return 0
}
