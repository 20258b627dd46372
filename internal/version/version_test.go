// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.True(t, strings.HasPrefix(info, "dcgen version "+Version))
	assert.Contains(t, info, "go: "+runtime.Version())
	assert.Equal(t, Version, Short())
}
