// Package session signs in to the account site through a browser page.
//
// Sign-in Process:
//  1. Open the sign-in page and wait for network idle, then settle
//  2. Type the identifier and submit it (a missing button is tolerated)
//  3. Type the secret and submit, waiting for the resulting navigation
//  4. Settle, then inspect the landing URL for a second-factor challenge
//  5. On a challenge, suspend for a fixed window so a human can finish it
//
// The challenge outcome is never verified; there is no programmatic signal
// for it. A failed sign-in surfaces as a later navigation or extraction
// failure.
//
// Credentials are injected through NewManager and held only in memory.
package session
