package common

// SessionCookieName is the cookie carrying the signed session token between
// the browser (or CLI cookie jar) and the server.
const SessionCookieName = "hearttrack_session"

// Heart rate and threshold input ranges, inclusive.
const (
	MinHeartRate = 20
	MaxHeartRate = 300

	MinHighThreshold = 40
	MaxHighThreshold = 300
	MinLowThreshold  = 20
	MaxLowThreshold  = 120

	DefaultHighThreshold = 120
	DefaultLowThreshold  = 40
)
