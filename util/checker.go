package util

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
)

const (
	githubOwner = "TheBoredTeam"
	githubRepo  = "boring.notch"
)

// CheckForUpdatesResult holds the outcome of the update check.
type CheckForUpdatesResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// CheckForUpdates asks GitHub for the latest stable release and compares it
// with config.AppVersion. A nil httpClient uses the default client.
func CheckForUpdates(ctx context.Context, httpClient *http.Client) (*CheckForUpdatesResult, error) {
	client := github.NewClient(httpClient)

	release, _, err := client.Repositories.GetLatestRelease(ctx, githubOwner, githubRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	current := canonicalVersion(config.AppVersion)
	latest := canonicalVersion(release.GetTagName())

	result := &CheckForUpdatesResult{
		CurrentVersion: current,
		LatestVersion:  latest,
		ReleaseURL:     release.GetHTMLURL(),
		ReleaseNotes:   release.GetBody(),
	}
	if !semver.IsValid(latest) {
		return result, fmt.Errorf("latest release tag %q is not a semantic version", release.GetTagName())
	}

	// Development builds never nag.
	result.UpdateAvailable = semver.IsValid(current) &&
		semver.Prerelease(current) == "" &&
		semver.Compare(latest, current) > 0
	return result, nil
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
