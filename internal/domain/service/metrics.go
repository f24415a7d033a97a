package service

import "time"

// FeedMode labels a feed evaluation as a search or a category browse.
type FeedMode string

const (
	FeedModeSearch FeedMode = "search"
	FeedModeBrowse FeedMode = "browse"
)

// EvaluationRecorder records feed evaluation outcomes.
type EvaluationRecorder interface {
	ObserveEvaluation(mode FeedMode, duration time.Duration, candidates, results int)
}
