// Package profile implements the base profile and the add-on wrappers.
//
// A wrapper holds exactly one inner domain.Profile and answers Features and
// Cost by combining the inner answer with its own suffix and increment:
//
//	p := profile.NewBasic()
//	p = profile.WithPhotoSharing(p)
//	p = profile.WithLiveStreaming(p)
//	p.Cost() // 15
//
// Wrap chains are linear and immutable. A single Basic may back any number of
// independent chains.
package profile
