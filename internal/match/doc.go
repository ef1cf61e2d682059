// Package match implements the prefix predicate applied to every encoded
// public key produced during a search.
//
// # Overview
//
// A key matches when its encoded form starts with the target word. The empty
// target matches every key. With ignore-case both sides are compared after
// ASCII lower-casing; other bytes are compared as is.
//
// Matcher folds the target once so the per-key test on the hot path only
// folds the candidate. Fold exposes the same folding for callers that
// normalize a target up front.
//
// # Reachability
//
// Unreachable reports the characters of a target that no key drawn from a
// given alphabet can contain, taking folding into account. The command uses
// it to warn before starting a search that cannot succeed.
package match
