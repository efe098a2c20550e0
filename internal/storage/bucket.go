package storage

import (
	"time"

	"github.com/google/uuid"
)

const bucketLayout = "20060102"

const objectExt = ".jpg"

// BucketFor returns the bucket name for a registration instant: the UTC
// calendar day, e.g. "20240115". Upload, listing, and deletion must all
// derive the bucket the same way, so normalize to UTC here and nowhere else.
func BucketFor(t time.Time) string {
	return t.UTC().Format(bucketLayout)
}

// NewObjectKey returns a globally-unique object key.
func NewObjectKey() string {
	return uuid.NewString() + objectExt
}
