// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package zet // import "github.com/canonical/kobuk-gfx-level-zero/zet"

import (
	"fmt"
	"strconv"
	"strings"
)

// APIVersion identifies a revision of the native contract (ze_api_version_t).
// The major number lives in the upper 16 bits, the minor in the lower 16.
type APIVersion uint32

// MakeVersion mirrors ZE_MAKE_VERSION.
func MakeVersion(major, minor uint16) APIVersion {
	return APIVersion(uint32(major)<<16 | uint32(minor)&0xffff)
}

const (
	APIVersion1_0  APIVersion = 1<<16 | 0
	APIVersion1_1  APIVersion = 1<<16 | 1
	APIVersion1_2  APIVersion = 1<<16 | 2
	APIVersion1_3  APIVersion = 1<<16 | 3
	APIVersion1_4  APIVersion = 1<<16 | 4
	APIVersion1_5  APIVersion = 1<<16 | 5
	APIVersion1_6  APIVersion = 1<<16 | 6
	APIVersion1_7  APIVersion = 1<<16 | 7
	APIVersion1_8  APIVersion = 1<<16 | 8
	APIVersion1_9  APIVersion = 1<<16 | 9
	APIVersion1_10 APIVersion = 1<<16 | 10
	APIVersion1_11 APIVersion = 1<<16 | 11
	APIVersion1_12 APIVersion = 1<<16 | 12

	// APIVersionCurrent is the revision the declarations in this package
	// mirror.
	APIVersionCurrent = APIVersion1_12
)

// Major returns the major component of v.
func (v APIVersion) Major() uint16 {
	return uint16(v >> 16)
}

// Minor returns the minor component of v.
func (v APIVersion) Minor() uint16 {
	return uint16(v & 0xffff)
}

func (v APIVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// ParseAPIVersion parses "major.minor" into an APIVersion. The strings
// "current" and "" return APIVersionCurrent.
func ParseAPIVersion(s string) (APIVersion, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "current") {
		return APIVersionCurrent, nil
	}
	majorStr, minorStr, ok := strings.Cut(strings.TrimPrefix(s, "v"), ".")
	if !ok {
		return 0, fmt.Errorf("invalid API version %q: expected major.minor", s)
	}
	major, err := strconv.ParseUint(majorStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid API major version %q: %w", majorStr, err)
	}
	minor, err := strconv.ParseUint(minorStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid API minor version %q: %w", minorStr, err)
	}
	return MakeVersion(uint16(major), uint16(minor)), nil
}
