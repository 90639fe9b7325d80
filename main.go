// Repolabel is a command-line research tool that turns GitHub READMEs into a
// labelled summary dataset.
//
// For each repository it records four summaries in shuffled order:
//   - the first sentences of the cleaned README
//   - an extractive summary of the README
//   - a summary of READMEs from similar repositories, found through the
//     repository's best matching GitHub topic
//   - a summary typed in by the user
//
// A hidden copy with anonymised section labels is written for raters while
// the labelled copy is kept for scoring.
//
// Example Usage:
//
//	# Label a single repository
//	repolabel label https://github.com/valyala/fastjson
//
//	# Walk the reporeapers result pages from page 3, appending to the outputs
//	repolabel reap 3 -a
//
//	# Count README availability on pages 1-5
//	repolabel count --range 1-5
package main

import "github.com/brogergvhs/repolabel/cmd"

func main() {
	cmd.Execute()
}
