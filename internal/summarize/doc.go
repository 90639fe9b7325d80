// Package summarize produces extractive summaries with TextRank and
// keyword phrases with RAKE.
package summarize
