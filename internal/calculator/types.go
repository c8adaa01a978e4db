package calculator

import "time"

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Op       string    `json:"op"`       // operation keyword, e.g. "add"
	Operands []float64 `json:"operands"` // 1 or 2 values depending on the operation
}

// RecordResponse is the JSON rendering of one calculation record.
type RecordResponse struct {
	Operator  string    `json:"operator"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is the JSON response for GET /calculator/history.
type HistoryResponse struct {
	Count   int              `json:"count"`
	Records []RecordResponse `json:"records"`
}

// UndoRedoResponse is the JSON response for POST /calculator/undo and /redo.
// Current is null when an undo rewinds the history to the empty state.
type UndoRedoResponse struct {
	Current *RecordResponse `json:"current"`
	Count   int             `json:"count"`
}

func toRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		Operator:  rec.Operator,
		Operands:  rec.Operands,
		Result:    rec.Result,
		Timestamp: rec.Timestamp,
	}
}
