package events

var ApplicationTrackedTopic = "ApplicationTrackedEvent"
var MirrorWriteFailedTopic = "MirrorWriteFailedEvent"

type ApplicationTracked struct {
	UserID        int64
	ApplicationID string
	JobID         string
	CompanyID     string
	NewCompany    bool
}

type MirrorWriteFailed struct {
	UserID int64
	JobID  string
	Error  string
}
