package etag_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.rtnl.ai/etag"
)

// fakeStat exposes only the two required accessors.
type fakeStat struct {
	size  int64
	mtime time.Time
}

func (s fakeStat) Size() int64        { return s.size }
func (s fakeStat) ModTime() time.Time { return s.mtime }

func TestStat(t *testing.T) {
	mtime := time.Date(2014, 9, 1, 14, 52, 7, 0, time.UTC)

	t.Run("LooksLikeStat", func(t *testing.T) {
		tag, err := etag.Generate(fakeStat{size: 3027, mtime: mtime})
		require.NoError(t, err)
		require.Equal(t, etag.Tag(`W/"bd3-14831b399d8"`), tag)
	})

	t.Run("Inode", func(t *testing.T) {
		tag, err := etag.Generate(etag.FileStat{Bytes: 3027, Modified: mtime, Ino: 255})
		require.NoError(t, err)
		require.Equal(t, etag.Tag(`W/"ff-bd3-14831b399d8"`), tag)
	})

	t.Run("ZeroInode", func(t *testing.T) {
		tag, err := etag.Generate(etag.FileStat{Bytes: 3027, Modified: mtime})
		require.NoError(t, err)
		require.Equal(t, etag.Tag(`W/"bd3-14831b399d8"`), tag)
	})

	t.Run("PreEpoch", func(t *testing.T) {
		tag := etag.FromStat(etag.FileStat{Bytes: 0, Modified: time.Unix(-1, 0)}, etag.Auto)
		require.Equal(t, etag.Tag(`W/"0-fffffffffffffc18"`), tag)
	})

	t.Run("WeakOption", func(t *testing.T) {
		tag, err := etag.Generate(fakeStat{size: 3027, mtime: mtime}, etag.WithWeak(true))
		require.NoError(t, err)
		require.True(t, tag.IsWeak())
	})

	t.Run("StrongOption", func(t *testing.T) {
		tag, err := etag.Generate(fakeStat{size: 3027, mtime: mtime}, etag.WithWeak(false))
		require.NoError(t, err)
		require.False(t, tag.IsWeak())
		require.Equal(t, etag.Tag(`"bd3-14831b399d8"`), tag)
	})

	t.Run("Changes", func(t *testing.T) {
		orig := etag.FromStat(fakeStat{size: 3027, mtime: mtime}, etag.Auto)
		require.Equal(t, orig, etag.FromStat(fakeStat{size: 3027, mtime: mtime}, etag.Auto))
		require.NotEqual(t, orig, etag.FromStat(fakeStat{size: 3028, mtime: mtime}, etag.Auto))
		require.NotEqual(t, orig, etag.FromStat(fakeStat{size: 3027, mtime: mtime.Add(time.Millisecond)}, etag.Auto))
	})
}

func TestFileInfo(t *testing.T) {
	path := t.TempDir() + "/entity.txt"
	require.NoError(t, os.WriteFile(path, []byte("beep boop"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	t.Run("Weak", func(t *testing.T) {
		tag, err := etag.Generate(info)
		require.NoError(t, err)
		require.True(t, tag.IsWeak())
		require.Regexp(t, tagRE, tag.String())
	})

	t.Run("Consistent", func(t *testing.T) {
		again, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, etag.FromStat(info, etag.Auto), etag.FromStat(again, etag.Auto))
	})

	t.Run("Strong", func(t *testing.T) {
		tag, err := etag.Generate(info, etag.WithWeak(false))
		require.NoError(t, err)
		require.False(t, tag.IsWeak())
	})
}
