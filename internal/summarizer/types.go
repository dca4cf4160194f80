package summarizer

// Input is the pull request metadata sent to the model.
// Zero counts are reported as unknown.
type Input struct {
	Title        string
	Body         string
	ChangedFiles int
	Additions    int
	Deletions    int
}
