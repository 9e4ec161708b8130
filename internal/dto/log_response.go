package dto

const (
	DefaultLogLines = 100
	MaxLogLines     = 10000
)

type LogTailRequest struct {
	Lines int
}

// LogTailResponse is the body of GET /api/logs. Logs is never null on the
// wire: an empty log yields [].
type LogTailResponse struct {
	Logs []string `json:"logs"`
}
