// Package wayharvest provides a CLI tool for harvesting archived copies of a
// site from the Wayback Machine and turning them into a clean text corpus.
// Snapshots are discovered through the CDX index, each capture's text is
// extracted through a cascade of strategies, and lines that recur across the
// batch (navigation, footers, copyright notices) are stripped corpus-wide
// before the results are written out.
//
// This package contains domain types and interfaces following the Standard
// Package Layout pattern. Implementations live in subdirectories named after
// their primary dependency (e.g., trafilatura/, sqlite/, http/).
package wayharvest
