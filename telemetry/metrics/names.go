package metrics

// Index and search pipeline metrics
const (
	IndexBuildMs           = "index_build_ms"
	IndexEntriesTotal      = "index_entries_total"
	IndexPostingListsTotal = "index_posting_lists_total"
	SearchQueryMs          = "search_query_ms"
	SearchCandidatesTotal  = "search_candidates_total"
	SearchFilteredTotal    = "search_filtered_total"
	SearchHitsTotal        = "search_hits_total"
	TokenizeMs             = "tokenize_ms"
	ConfigLoadMs           = "config_load_ms"
	ConfigLoadErrors       = "config_load_errors"
)

// Error Handling Module Metrics
const (
	ErrorHandlingWrapsTotal = "error_handling_wraps_total"
	ErrorHandlingWrapMs     = "error_handling_wrap_ms"
)

// FulHash Module Metrics
const (
	FulHashOperationsTotalXXH3128 = "fulhash_operations_total_xxh3_128"
	FulHashOperationsTotalSHA256  = "fulhash_operations_total_sha256"
	FulHashHashStringTotal        = "fulhash_hash_string_total"
	FulHashBytesHashedTotal       = "fulhash_bytes_hashed_total"
	FulHashOperationMs            = "fulhash_operation_ms"
)

// Metric units
const (
	UnitCount = "count"
	UnitMs    = "ms"
)

// Standard tag keys
const (
	TagStatus    = "status"
	TagComponent = "component"
	TagOperation = "operation"
	TagAlgorithm = "algorithm"
	TagErrorType = "error_type"
	TagTokenizer = "tokenizer"
)

// Standard tag values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)
