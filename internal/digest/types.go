package digest

import "checkey/internal/model"

// Bucket labels, ordered shortest first.
const (
	BucketTiny   = "≤5"
	BucketShort  = "≤10"
	BucketMedium = "≤30"
	BucketLong   = "≤60"
	BucketHuge   = ">60"
)

// BucketOrder is the fixed presentation order of duration buckets.
var BucketOrder = []string{BucketTiny, BucketShort, BucketMedium, BucketLong, BucketHuge}

// Bucket groups digest tasks sharing a duration range. Only non-empty
// buckets appear in a Digest.
type Bucket struct {
	Label string
	Tasks []model.Task
}

// Digest is one user's daily summary: a one-line coach nudge plus the full
// bucketed message.
type Digest struct {
	Buckets   []Bucket
	CoachLine string
	Message   string
}

// Empty reports whether there was nothing to digest.
func (d Digest) Empty() bool {
	return len(d.Buckets) == 0
}
