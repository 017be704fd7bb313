package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PermissionLevel is an access tier. Levels are totally ordered:
// NoAccess < Read < Write < FullAccess.
type PermissionLevel int

const (
	NoAccess PermissionLevel = iota
	Read
	Write
	FullAccess
)

var levelNames = [...]string{
	NoAccess:   "no_access",
	Read:       "read",
	Write:      "write",
	FullAccess: "full_access",
}

// ParsePermissionLevel parses the wire name of a level.
func ParsePermissionLevel(s string) (PermissionLevel, error) {
	for level, name := range levelNames {
		if name == s {
			return PermissionLevel(level), nil
		}
	}
	return NoAccess, fmt.Errorf("%w: %q", ErrInvalidPermissionLevel, s)
}

// ParseMinimumLevel parses the threshold of a permission check. NoAccess is
// not a threshold since every member meets it.
func ParseMinimumLevel(s string) (PermissionLevel, error) {
	level, err := ParsePermissionLevel(s)
	if err != nil {
		return NoAccess, err
	}
	if level == NoAccess {
		return NoAccess, fmt.Errorf("%w: minimum level must be read, write or full_access", ErrInvalidPermissionLevel)
	}
	return level, nil
}

// Valid reports whether l is one of the four defined levels.
func (l PermissionLevel) Valid() bool {
	return l >= NoAccess && l <= FullAccess
}

// Meets reports whether l is at least min.
func (l PermissionLevel) Meets(min PermissionLevel) bool {
	return l >= min
}

func (l PermissionLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("PermissionLevel(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText encodes the level by name; JSON map values use it too.
func (l PermissionLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPermissionLevel, int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText decodes a level name.
func (l *PermissionLevel) UnmarshalText(b []byte) error {
	parsed, err := ParsePermissionLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML decodes a level name from seed data.
func (l *PermissionLevel) UnmarshalYAML(node *yaml.Node) error {
	return l.UnmarshalText([]byte(node.Value))
}

// Permissions maps each section to a level. A missing section reads as
// NoAccess.
type Permissions map[Section]PermissionLevel

// Level returns the stored level for section.
func (p Permissions) Level(section Section) PermissionLevel {
	return p[section]
}

// Clone returns a copy.
func (p Permissions) Clone() Permissions {
	out := make(Permissions, len(p))
	for s, l := range p {
		out[s] = l
	}
	return out
}

// Validate rejects unknown sections and levels.
func (p Permissions) Validate() error {
	for s, l := range p {
		if !s.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidSection, string(s))
		}
		if !l.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidPermissionLevel, int(l))
		}
	}
	return nil
}

// Complete returns a copy with every section present.
func (p Permissions) Complete() Permissions {
	out := make(Permissions, len(AllSections))
	for _, s := range AllSections {
		out[s] = p[s]
	}
	return out
}

// JSON encodes the permissions for storage as {"section": "level"}.
func (p Permissions) JSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
