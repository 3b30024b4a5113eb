package models

// VersionInfo is the body of GET /api/version.
type VersionInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
