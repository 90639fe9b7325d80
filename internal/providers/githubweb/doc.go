// Package githubweb implements providers.Finder by reading GitHub's topic
// and search HTML pages. Repository links are pulled out with goquery
// selectors first and with the raw-markup patterns those pages have used
// as a fallback.
package githubweb
