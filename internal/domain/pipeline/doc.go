// Package pipeline runs one sync: sign in, visit each data page, extract,
// aggregate and persist.
//
// The Sequencer is a small state machine:
//
//	Idle -> Authenticating -> NavigatingPortfolio -> NavigatingHistory
//	     -> NavigatingCashflow -> Aggregating -> Done
//
// Any step may move to Failed instead. Pages are visited strictly in order
// on one tab; each visit waits for network idle and a fixed settle delay
// before the DOM is snapshotted.
//
// The Runner owns the browser. It validates credentials before launching,
// always closes the browser, wraps the sequence in failure capture and
// reports the run to metrics.
package pipeline
