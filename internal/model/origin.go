package model

import (
	"fmt"
	"strings"
)

// ValidationError reports an upstream snapshot that cannot be stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid repository %s: %s", e.Field, e.Reason)
}

// Normalize validates o and fills the defaults for optional fields.
// The id and name are required; counters must not be negative.
func (o Origin) Normalize() (Origin, error) {
	o.Name = strings.TrimSpace(o.Name)
	o.FullName = strings.TrimSpace(o.FullName)
	o.Owner.Login = strings.TrimSpace(o.Owner.Login)

	if o.ID <= 0 {
		return Origin{}, &ValidationError{Field: "id", Reason: fmt.Sprintf("must be positive, got %d", o.ID)}
	}

	if o.Name == "" {
		return Origin{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	if o.StarCount < 0 {
		return Origin{}, &ValidationError{Field: "starCount", Reason: fmt.Sprintf("must not be negative, got %d", o.StarCount)}
	}

	if o.ForkCount < 0 {
		return Origin{}, &ValidationError{Field: "forkCount", Reason: fmt.Sprintf("must not be negative, got %d", o.ForkCount)}
	}

	if o.FullName == "" {
		if o.Owner.Login != "" {
			o.FullName = o.Owner.Login + "/" + o.Name
		} else {
			o.FullName = o.Name
		}
	}

	if o.Owner.Login == "" {
		if owner, _, ok := strings.Cut(o.FullName, "/"); ok {
			o.Owner.Login = owner
		}
	}

	return o, nil
}
