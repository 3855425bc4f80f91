package domain

// Summary is the dashboard headline view: entity counts plus the value of
// the open pipeline.
type Summary struct {
	Contacts          int64   `json:"contacts"`
	Companies         int64   `json:"companies"`
	Opportunities     int64   `json:"opportunities"`
	Activities        int64   `json:"activities"`
	Leads             int64   `json:"leads"`
	OpenPipelineValue float64 `json:"openPipelineValue"`
	WonValue          float64 `json:"wonValue"`
	ExpenseTotal      float64 `json:"expenseTotal"`
}

type StageBucket struct {
	Stage string  `json:"stage"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

type CategoryBucket struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

type FunnelBucket struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
