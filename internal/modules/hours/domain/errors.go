package domain

import "errors"

var (
	// ErrMalformedTime is returned when a clock token does not follow the
	// "h[:mm] am|pm" shape or resolves outside the 24-hour day.
	ErrMalformedTime = errors.New("malformed time")
	// ErrUnknownDay is returned when a day token is not in the known table.
	ErrUnknownDay = errors.New("unknown day")
	// ErrMissingSeparator is returned when a time range has no "-" between its endpoints.
	ErrMissingSeparator = errors.New("missing time range separator")
	// ErrUnparsableHours is returned when neither split strategy can make sense of a period.
	ErrUnparsableHours = errors.New("unparsable hours")
)
