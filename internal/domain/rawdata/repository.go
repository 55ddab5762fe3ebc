package rawdata

import "context"

// Loader reads every configured source. A missing source is reported in
// LoadResult.Skipped; any other read failure is returned as an error.
type Loader interface {
	Load(ctx context.Context) (LoadResult, error)
}
