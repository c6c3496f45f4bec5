package domain

import "errors"

var (
	// ErrFetchFailed marks any failure to retrieve the feed: transport error,
	// non-200 status, or an undecodable body.
	ErrFetchFailed = errors.New("feed fetch failed")

	// ErrMalformedTable is returned when the feed has no header or the header
	// lacks one of the required columns.
	ErrMalformedTable = errors.New("malformed feed table")

	// ErrTimestampParse is returned when a row's time_tag cannot be parsed.
	ErrTimestampParse = errors.New("unparseable timestamp")

	// ErrTimestampOrder is returned when a row's timestamp is not strictly
	// after the previous row's.
	ErrTimestampOrder = errors.New("timestamps not strictly increasing")

	// ErrNoSamples is returned when the feed parsed cleanly but held no rows.
	ErrNoSamples = errors.New("feed has no samples")
)
