package etag

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"strconv"

	"golang.org/x/crypto/md4"
)

const (
	// Base64 MD5 digest of the empty input.
	emptyStrong = "1B2M2Y8AsgTpgAmY7PhCfg=="
	emptyWeak   = "0-0"

	// Content up to this length gets a length+crc32 weak tag; longer content is
	// digested with md4 instead.
	WeakThreshold = 1000
)

func strongHash(data []byte) string {
	if len(data) == 0 {
		return emptyStrong
	}

	sum := md5.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func weakHash(data []byte) string {
	if len(data) == 0 {
		return emptyWeak
	}

	if len(data) <= WeakThreshold {
		return fmt.Sprintf("%x-%08x", len(data), crc32.ChecksumIEEE(data))
	}

	hash := md4.New()
	hash.Write(data)
	return base64.StdEncoding.EncodeToString(hash.Sum(nil))
}

// statHash renders [ino-]size-mtime in hex; mtime is in milliseconds and negative
// values are written as 64-bit two's complement.
func statHash(st Stat) string {
	buf := make([]byte, 0, 48)
	if ino := inode(st); ino != 0 {
		buf = strconv.AppendUint(buf, ino, 16)
		buf = append(buf, '-')
	}

	buf = strconv.AppendUint(buf, uint64(st.Size()), 16)
	buf = append(buf, '-')
	buf = strconv.AppendUint(buf, uint64(st.ModTime().UnixMilli()), 16)
	return string(buf)
}
