package parameter

import "time"

// Wiki client defaults
const (
	WikiBase      = "https://en.wikipedia.org"
	WikiUserAgent = "wikijump/1.0 (+https://github.com/lixenwraith/wikijump)"
	WikiTimeout   = 15 * time.Second
	WikiSubtitle  = "From Wikipedia, the free encyclopedia"
)

// Fetch retry policy
const (
	FetchMaxRetries = 3
	FetchBaseDelay  = 250 * time.Millisecond
	FetchMaxDelay   = 4 * time.Second
)

// Layout service defaults
const (
	ServerAddr        = ":8080"
	ServerReadTimeout = 10 * time.Second
)

// MaxUploadBytes caps POSTed documents
const MaxUploadBytes = 4 << 20
