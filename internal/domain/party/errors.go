package party

import "errors"

var (
	// ErrChannelRequired indicates a channel-scoped operation was invoked
	// without a sales channel. Remote customer ids are only unique per
	// channel, so every lookup and create needs one.
	ErrChannelRequired = errors.New("party: channel required for remote customer operation")

	// ErrAmbiguousRemoteRef indicates more than one remote customer ref
	// matched a (channel, remote id) pair that must be unique. This means
	// the uniqueness invariant was violated by an earlier write.
	ErrAmbiguousRemoteRef = errors.New("party: multiple remote refs match channel-scoped customer id")

	// ErrDuplicatePartyInChannel indicates an attempt to link a second
	// party to a non-guest remote customer id within the same channel.
	ErrDuplicatePartyInChannel = errors.New("party: remote customer id already linked in channel")
)
