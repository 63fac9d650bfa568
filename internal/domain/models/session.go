// Package models contains domain models for the GoodData Portal Service.
package models

// Session is the client-held session record.
// It is the whole session: nothing about it is stored server-side.
type Session struct {
	// Credential is the raw Cookie header value replayed on every remote call.
	Credential string `json:"credential"`
	// SubjectID identifies the remote account profile.
	SubjectID string `json:"subjectId"`
	Username  string `json:"username"`
}

// NewSession creates a new session.
func NewSession(credential, subjectID, username string) *Session {
	return &Session{
		Credential: credential,
		SubjectID:  subjectID,
		Username:   username,
	}
}

// IsValid reports whether the session carries a usable credential.
func (s *Session) IsValid() bool {
	return s != nil && s.Credential != ""
}

// UserInfo is the public part of a session returned to the UI.
type UserInfo struct {
	Username  string `json:"username"`
	SubjectID string `json:"subjectId"`
}

// User returns the public view of the session.
func (s *Session) User() UserInfo {
	return UserInfo{Username: s.Username, SubjectID: s.SubjectID}
}
