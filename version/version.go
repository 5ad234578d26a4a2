package version

import "fmt"

// GitCommit and GitTag are set at build time with -ldflags -X.
var GitCommit string
var GitTag string
var UserAgent string

func init() {
	if GitTag == "" {
		GitTag = "dev"
	}
	UserAgent = fmt.Sprintf("abi-cli/%s+%s", GitTag, GitCommit)
}
