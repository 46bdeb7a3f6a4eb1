package model

// Commit represents one parsed commit from the decorated one-line git log
type Commit struct {
	Code       string // Uppercase token preceding the first colon in the header
	Message    string // Header text after the first colon, extra colons preserved
	Decoration string // Ref/tag/branch annotations attached by the log format
}

// Section is a named bucket of rendered commit messages under one heading
type Section struct {
	Heading  string
	Messages []string
}

// PullRequest holds the pull request metadata the compiler consumes: the
// current description (previous notes) and the fields used for the header link
type PullRequest struct {
	Number  int
	HTMLURL string
	Body    string
}
