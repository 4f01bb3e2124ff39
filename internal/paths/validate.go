package paths

import (
	"fmt"
	"regexp"
)

// DefaultRig is used when no rig name is given.
const DefaultRig = "default"

var nameRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that rig conforms to rig naming rules.
func ValidateName(rig string) error {
	if !nameRegexp.MatchString(rig) {
		return fmt.Errorf("invalid rig name %q: must match ^[a-z0-9_-]{1,64}$", rig)
	}
	return nil
}

// Resolve picks the rig name: the flag override when given, DefaultRig
// otherwise.
func Resolve(flagOverride string) string {
	if flagOverride != "" {
		return flagOverride
	}
	return DefaultRig
}
