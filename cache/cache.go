package cache

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.rtnl.ai/etag"
	"go.rtnl.ai/etag/internal/ginctx"
	"go.rtnl.ai/etag/logger"
	"go.rtnl.ai/etag/o11y"
)

const HeaderETag = "ETag"

// ETagger holds the current entity tag of a resource. If the handler passed to Control
// implements it, the tag is included in every response.
type ETagger interface {
	ETag() string
	ComputeETag([]byte)
	SetETag(string)
}

// StatETagger is implemented by holders that can tag a resource from file metadata.
type StatETagger interface {
	ComputeStatETag(etag.Stat)
}

// Control stores the handler on the gin context so that downstream handlers can update
// its tag with ComputeETag, StatETag, or SetETag. If the handler is an ETagger with a
// tag, the ETag header is written on the response before the request is handled.
func Control(handler any) gin.HandlerFunc {
	etagger, useEtag := handler.(ETagger)

	return func(c *gin.Context) {
		if useEtag {
			if tag := etagger.ETag(); tag != "" {
				c.Header(HeaderETag, tag)
			}
		}

		ginctx.Set(c, ginctx.KeyTagger, handler)
		c.Next()
	}
}

type settings struct {
	mode    etag.Mode
	metrics bool
}

var defaultSettings = &settings{mode: etag.Auto}

// Tags returns a middleware that configures how Generate tags entities for the
// requests it handles.
func Tags(conf Config) (_ gin.HandlerFunc, err error) {
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	if conf.Metrics {
		if err = o11y.Setup(); err != nil {
			return nil, err
		}
	}

	s := &settings{mode: conf.TagMode(), metrics: conf.Metrics}
	return func(c *gin.Context) {
		ginctx.Set(c, ginctx.KeyTagConfig, s)
		c.Next()
	}, nil
}

func tagSettings(c *gin.Context) *settings {
	if val, ok := ginctx.Get(c, ginctx.KeyTagConfig); ok {
		if s, ok := val.(*settings); ok {
			return s
		}
	}
	return defaultSettings
}

// Generate computes the tag of entity using the mode configured by Tags and sets it as
// the ETag header of the response. If the entity cannot be tagged the error is logged
// and the request is aborted with a 500; no header is written.
func Generate(c *gin.Context, entity any) (etag.Tag, error) {
	s := tagSettings(c)

	tag, err := etag.Generate(entity, etag.WithMode(s.mode))
	if err != nil {
		if s.metrics {
			o11y.TagErrors.WithLabelValues(errorReason(err)).Inc()
		}

		logger.Tracing(c).Error().Err(err).Str("entity_type", fmt.Sprintf("%T", entity)).Msg("could not generate entity tag")
		abort(c, http.StatusInternalServerError, err, "could not generate entity tag")
		return "", err
	}

	if s.metrics {
		record(entity, tag)
	}

	c.Header(HeaderETag, tag.String())
	return tag, nil
}

func record(entity any, tag etag.Tag) {
	mode := etag.Strong
	if tag.IsWeak() {
		mode = etag.Weak
	}

	switch e := entity.(type) {
	case []byte:
		o11y.TaggedContentSize.Observe(float64(len(e)))
		o11y.TagsGenerated.WithLabelValues("content", mode.String()).Inc()
	case string:
		o11y.TaggedContentSize.Observe(float64(len(e)))
		o11y.TagsGenerated.WithLabelValues("content", mode.String()).Inc()
	default:
		o11y.TagsGenerated.WithLabelValues("stat", mode.String()).Inc()
	}
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, etag.ErrMissingEntity):
		return "missing_entity"
	case errors.Is(err, etag.ErrInvalidEntityType):
		return "invalid_entity_type"
	default:
		return "unknown"
	}
}

// SetETag sets the tag on the handler in the gin context and on the response header.
// If the handler does not implement the ETagger interface, only the header is set.
func SetETag(c *gin.Context, tag string) {
	if val, ok := ginctx.Get(c, ginctx.KeyTagger); ok {
		if etagger, ok := val.(ETagger); ok {
			etagger.SetETag(tag)
			tag = etagger.ETag()
		}
	}

	if tag != "" {
		c.Header(HeaderETag, tag)
	}
}

// ComputeETag computes the tag for the data on the handler in the gin context and sets
// the response header. If the handler does not implement the ETagger interface, this
// function does nothing (not even set the header).
func ComputeETag(c *gin.Context, data []byte) {
	if val, ok := ginctx.Get(c, ginctx.KeyTagger); ok {
		if etagger, ok := val.(ETagger); ok {
			etagger.ComputeETag(data)
			c.Header(HeaderETag, etagger.ETag())
		}
	}
}

// StatETag computes the tag from file metadata on the handler in the gin context and
// sets the response header. If the handler cannot tag metadata, this does nothing.
func StatETag(c *gin.Context, st etag.Stat) {
	if val, ok := ginctx.Get(c, ginctx.KeyTagger); ok {
		if tagger, ok := val.(StatETagger); ok {
			tagger.ComputeStatETag(st)
			if etagger, ok := val.(ETagger); ok {
				c.Header(HeaderETag, etagger.ETag())
			}
		}
	}
}
