package syncer

// Result reports the outcome of one sync pass over one entity
type Result struct {
	Entity    string `json:"entity"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Busy      bool   `json:"busy,omitempty"`
	Message   string `json:"message,omitempty"`
}

func busyResult(entity string) Result {
	return Result{Entity: entity, Busy: true, Message: "sync already in progress"}
}
