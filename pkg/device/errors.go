package device

import "errors"

// ErrDeviceNotFound is returned when a path does not currently resolve to a
// block-special file.
var ErrDeviceNotFound = errors.New("block device not found")

// ErrResolution is returned when canonicalizing a device path fails, for
// example because the path vanished or permission was denied.
var ErrResolution = errors.New("device path resolution failed")

// ErrMetadataUnavailable is returned when the metadata provider has no record
// for a device. At the resolver layer this degrades to an empty alias set.
var ErrMetadataUnavailable = errors.New("device metadata unavailable")

// ErrMalformedRecord is returned when a kernel device record cannot be parsed.
var ErrMalformedRecord = errors.New("malformed kernel device record")
