package recommend

import "encoding/json"

// Result is what every engine operation hands back to its caller.
// Exactly one of Data (Success == true) or Error (Success == false) is meaningful.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`

	err error
}

func Ok[T any](data T) Result[T] {
	return Result[T]{
		Success: true,
		Data:    data,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		Success: false,
		Error:   err.Error(),
		err:     err,
	}
}

// Err returns the error a failed result was built from, for errors.Is checks.
func (r Result[T]) Err() error {
	return r.err
}

// MarshalJSON writes {"success":true,"data":...} or {"success":false,"error":"..."}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(map[string]any{
			"success": true,
			"data":    r.Data,
		})
	}
	return json.Marshal(map[string]any{
		"success": false,
		"error":   r.Error,
	})
}
