package policy

import (
	dErrors "rollcall/pkg/domain-errors"
)

// ExpiryPolicy decides whether an expired time window blocks GPS check-in for
// a user still inside the fence. The pure gate allows it (fence membership is
// necessary and sufficient); the product UI blocks it. Both behaviors exist as
// explicit values so the caller picks one deliberately.
type ExpiryPolicy int

const (
	// ExpiryPolicyAllow leaves GPS check-in eligible in the expired window.
	ExpiryPolicyAllow ExpiryPolicy = iota
	// ExpiryPolicyBlock refuses GPS check-in once the window has expired.
	ExpiryPolicyBlock
)

// FenceSnapshot is the location state sampled at the moment of a gating
// decision. Read-then-act: the fence state can change between this snapshot
// and the remote call landing, which is why the backend stays authoritative
// for the final status.
type FenceSnapshot struct {
	Authorized  bool
	InsideFence bool
}

// Eligibility is the gate's verdict for the two submission paths.
type Eligibility struct {
	GPSCheckIn       bool
	ReasonSubmission bool
}

// Gate evaluates action eligibility from a fence snapshot and a classified
// window.
//
// Rules, in order:
//  1. Unauthorized location fails closed: neither path is eligible and the
//     caller receives a distinct error rather than a silent fallthrough to
//     the reason path.
//  2. GPS check-in is eligible iff the user is inside the fence, subject to
//     the expiry policy.
//  3. Reason submission is the alternative path: eligible exactly when GPS
//     check-in is not.
func Gate(snap FenceSnapshot, window Window, expiry ExpiryPolicy) (Eligibility, error) {
	if !snap.Authorized {
		return Eligibility{}, dErrors.New(dErrors.CodeLocationNotAuthorized, "location permission not granted")
	}

	gps := snap.InsideFence
	if expiry == ExpiryPolicyBlock && window == WindowExpired {
		gps = false
	}

	return Eligibility{
		GPSCheckIn:       gps,
		ReasonSubmission: !gps,
	}, nil
}
