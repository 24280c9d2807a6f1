package cache

import (
	"errors"

	"go.rtnl.ai/etag"
)

var (
	ErrInvalidMode = errors.New("invalid configuration: etag mode must be auto, strong, or weak")
)

type Config struct {
	Mode    string `default:"auto" desc:"mode of generated entity tags; auto tags content strongly and file metadata weakly"`
	Metrics bool   `default:"true" desc:"if true, entity tag generation is recorded in prometheus metrics"`
}

func (c Config) Validate() error {
	if _, err := etag.ParseMode(c.Mode); err != nil {
		return ErrInvalidMode
	}
	return nil
}

// TagMode returns the generation mode for the configuration; invalid modes are Auto.
func (c Config) TagMode() etag.Mode {
	mode, _ := etag.ParseMode(c.Mode)
	return mode
}
