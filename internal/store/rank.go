package store

import (
	"time"
)

// hotRank computes the time-decayed ranking value for one aggregated row:
//
//	rank = voteScore / (ageInHours + 2)
//
// The +2 keeps brand-new posts from dividing by ~zero and dominating the
// listing on a single vote.
func hotRank(row postRow) float64 {
	age := time.Since(row.PostsCreatedAt).Hours()
	if age < 0 {
		age = 0
	}
	return float64(row.VoteScore) / (age + 2.0)
}
