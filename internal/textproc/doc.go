// Package textproc reduces README markdown to plain prose and splits it
// into sentences and tokens for summarization and topic scoring.
package textproc
