package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrerelease(t *testing.T) {
	testCases := []struct {
		desc     string
		version  string
		expected bool
	}{
		{desc: "dev build", version: "0.0.0-dev", expected: true},
		{desc: "release", version: "5.2.0", expected: false},
		{desc: "tolerant prefix", version: "v5.2.0-rc.1", expected: true},
		{desc: "not semver", version: "<unknown>", expected: false},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			prev := version
			version = tC.version
			t.Cleanup(func() { version = prev })
			require.Equal(t, tC.expected, Prerelease())
		})
	}
}

func TestVersion(t *testing.T) {
	require.Contains(t, Version(), "cmf "+Get())
}
