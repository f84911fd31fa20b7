package entity

// Status is the publication state shared by every content type.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Sort orders accepted by every list query.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortTitle  = "title"
)
