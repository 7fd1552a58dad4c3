package entity

import (
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformInstantly  Platform = "instantly"
	PlatformEmailBison Platform = "emailbison"
)

func (p Platform) Valid() bool {
	return p == PlatformInstantly || p == PlatformEmailBison
}

// ParsePlatform accepts the canonical names plus the "A"/"B" shorthands used
// in the sheet tabs. An empty string means "any platform".
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "instantly", "a":
		return PlatformInstantly, nil
	case "emailbison", "bison", "b":
		return PlatformEmailBison, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}
