package recordstore

import "github.com/kelseyhightower/envconfig"

// envDefaults mirrors the numeric options so deployments can tune the store
// without code changes: RECORDSTORE_PAGE_SIZE, RECORDSTORE_SEARCH_LIMIT,
// RECORDSTORE_DETAIL_CACHE_SIZE, RECORDSTORE_PREFETCH_SHARDS.
type envDefaults struct {
	PageSize        int `envconfig:"PAGE_SIZE"`
	SearchLimit     int `envconfig:"SEARCH_LIMIT"`
	DetailCacheSize int `envconfig:"DETAIL_CACHE_SIZE"`
	PrefetchShards  int `envconfig:"PREFETCH_SHARDS"`
}

// envOptions derives options from the environment. Unset or malformed
// variables are ignored; explicit options passed to New override these.
func envOptions() []Option {
	var e envDefaults
	if err := envconfig.Process("recordstore", &e); err != nil {
		return nil
	}
	var opts []Option
	if e.PageSize > 0 {
		opts = append(opts, WithPageSize(e.PageSize))
	}
	if e.SearchLimit > 0 {
		opts = append(opts, WithSearchLimit(e.SearchLimit))
	}
	if e.DetailCacheSize > 0 {
		opts = append(opts, WithDetailCacheSize(e.DetailCacheSize))
	}
	if e.PrefetchShards > 0 {
		opts = append(opts, WithPrefetchShards(e.PrefetchShards))
	}
	return opts
}
