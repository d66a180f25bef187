// Package buildconfig exposes values stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/Harshitk-cp/wolfmind/internal/buildconfig.version=v0.3.0"
package buildconfig

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = ""
)

const name = "wolfmind"

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// VersionInfo is served by /version.
func VersionInfo() map[string]string {
	info := map[string]string{
		"name":    name,
		"version": version,
		"commit":  commit,
	}
	if buildDate != "" {
		info["build_date"] = buildDate
	}
	return info
}

// UserAgent identifies the bot in outbound requests.
func UserAgent() string {
	return name + "/" + version
}
