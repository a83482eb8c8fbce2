// Command mfsync signs in to Money Forward ME, scrapes the asset
// portfolio, asset history and cashflow pages, and writes the dashboard
// dataset. It also serves that dataset to the dashboard.
//
// Usage:
//
//	mfsync scrape [-o path] [-selectors file] [-root dir] [-dev]
//	mfsync serve [-port port] [-static dir] [-root dir] [-dev]
//
// Credentials are read from MF_EMAIL and MF_PASSWORD.
package main
