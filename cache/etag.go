package cache

import (
	"strings"
	"sync"

	"go.rtnl.ai/etag"
)

// ETag is a thread-safe holder for the strong entity tag of a resource and implements
// the ETagger interface for the Control middleware. The tag can be computed from the
// resource data or its file metadata, or set manually.
type ETag struct {
	sync.RWMutex
	value etag.Tag
}

var _ ETagger = (*ETag)(nil)

func (e *ETag) ETag() string {
	e.RLock()
	defer e.RUnlock()
	return e.value.String()
}

func (e *ETag) ComputeETag(data []byte) {
	e.set(etag.FromBytes(data, etag.Strong))
}

// ComputeStatETag tags the resource from its metadata. The tag is strong in format
// only; prefer WeakETag for metadata unless the stat is known to track content.
func (e *ETag) ComputeStatETag(st etag.Stat) {
	e.set(etag.FromStat(st, etag.Strong))
}

// SetETag stores a tag that was computed elsewhere. Values that are not already in
// tag form are treated as the opaque payload of a strong tag.
func (e *ETag) SetETag(value string) {
	e.set(normalize(value, false))
}

func (e *ETag) set(tag etag.Tag) {
	e.Lock()
	defer e.Unlock()
	e.value = tag
}

// WeakETag is a thread-safe holder for weak entity tags. Weak tags are prefixed with
// "W/" to indicate that byte-level differences are possible and are cheaper to compute
// for small content and for file metadata.
type WeakETag struct {
	sync.RWMutex
	value etag.Tag
}

var _ ETagger = (*WeakETag)(nil)

func (e *WeakETag) ETag() string {
	e.RLock()
	defer e.RUnlock()
	return e.value.String()
}

func (e *WeakETag) ComputeETag(data []byte) {
	e.set(etag.FromBytes(data, etag.Weak))
}

func (e *WeakETag) ComputeStatETag(st etag.Stat) {
	e.set(etag.FromStat(st, etag.Weak))
}

func (e *WeakETag) SetETag(value string) {
	e.set(normalize(value, true))
}

func (e *WeakETag) set(tag etag.Tag) {
	e.Lock()
	defer e.Unlock()
	e.value = tag
}

// normalize converts value into a tag; an empty value clears the tag. Existing tags
// keep their form (a strong tag set on a WeakETag is weakened).
func normalize(value string, weak bool) etag.Tag {
	if value == "" {
		return ""
	}

	tag := etag.Tag(value)
	if strings.HasPrefix(value, `W/"`) || strings.HasPrefix(value, `"`) {
		weak = weak || tag.IsWeak()
		value = tag.Opaque()
	}

	// the opaque payload must not contain quotes
	value = strings.ReplaceAll(value, `"`, "")
	if value == "" {
		return ""
	}

	if weak {
		return etag.Tag(`W/"` + value + `"`)
	}
	return etag.Tag(`"` + value + `"`)
}
