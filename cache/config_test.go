package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.rtnl.ai/etag"
	"go.rtnl.ai/etag/cache"
)

func TestConfig(t *testing.T) {
	testCases := []struct {
		conf cache.Config
		mode etag.Mode
		err  error
	}{
		{cache.Config{}, etag.Auto, nil},
		{cache.Config{Mode: "auto"}, etag.Auto, nil},
		{cache.Config{Mode: "strong", Metrics: true}, etag.Strong, nil},
		{cache.Config{Mode: "weak"}, etag.Weak, nil},
		{cache.Config{Mode: "Weak"}, etag.Auto, cache.ErrInvalidMode},
		{cache.Config{Mode: "medium"}, etag.Auto, cache.ErrInvalidMode},
	}

	for i, tc := range testCases {
		err := tc.conf.Validate()
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, "test case %d failed", i)
		} else {
			require.NoError(t, err, "test case %d failed", i)
		}
		require.Equal(t, tc.mode, tc.conf.TagMode(), "test case %d failed", i)
	}
}
