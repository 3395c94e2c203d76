package java

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a Java version as written in JNLP files and release
// metadata, e.g. "1.8", "11+" or "17.0.2". The legacy "1.x" form is
// normalized to major version x. A trailing "+" allows higher versions
// when the Version is used as a requirement.
type Version struct {
	Major       int  `json:"major"`
	Minor       int  `json:"minor"`
	AllowHigher bool `json:"allowHigher,omitempty"`
}

func ParseVersion(version string) (*Version, error) {
	allowHigher := false
	ver := strings.TrimSpace(version)
	if strings.HasSuffix(ver, "+") {
		ver = strings.TrimSuffix(ver, "+")
		allowHigher = true
	}
	parts := strings.Split(ver, ".")
	if parts[0] == "" {
		return nil, errors.Errorf(`unable to parse Java version "%s"`, version)
	}
	var major, minor int64
	var err error
	if major, err = strconv.ParseInt(leadingDigits(parts[0]), 10, 16); err != nil {
		return nil, errors.Wrapf(err, `unable to parse major version "%s"`, parts[0])
	}
	if len(parts) > 1 {
		if minor, err = strconv.ParseInt(leadingDigits(parts[1]), 10, 16); err != nil {
			return nil, errors.Wrapf(err, `unable to parse minor version "%s"`, parts[1])
		}
	}
	// legacy 1.x versions are reported as x, as in "1.8.0_292"
	if major == 1 && len(parts) > 1 {
		major = minor
		minor = 0
		if len(parts) > 2 {
			if minor, err = strconv.ParseInt(leadingDigits(parts[2]), 10, 16); err != nil {
				return nil, errors.Wrapf(err, `unable to parse minor version "%s"`, parts[2])
			}
		}
	}
	return &Version{int(major), int(minor), allowHigher}, nil
}

func (v *Version) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.AllowHigher {
		s += "+"
	}
	return s
}

// Matches reports whether v satisfies the required version: the same
// major version with at least the required minor version, or any higher
// version when required allows it.
func (v *Version) Matches(required *Version) bool {
	if v.Major < required.Major {
		return false
	}
	if v.Major > required.Major && required.AllowHigher {
		return true
	}
	if v.Major == required.Major {
		if v.Minor < required.Minor {
			return false
		}
		if v.Minor == required.Minor || (v.Minor > required.Minor && required.AllowHigher) {
			return true
		}
	}
	return false
}

// leadingDigits strips suffixes such as "-ea" or "_171".
func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
