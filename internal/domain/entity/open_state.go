package entity

import "encoding/json"

// OpenState is the result of evaluating whether a location is open at an instant.
// Undetermined is distinct from Closed: it means the inputs were incomplete.
type OpenState int

const (
	OpenStateUndetermined OpenState = iota
	OpenStateClosed
	OpenStateOpen
)

const undeterminedLiteral = "undetermined"

// OpenStateOf converts a definite boolean into an OpenState.
func OpenStateOf(open bool) OpenState {
	if open {
		return OpenStateOpen
	}

	return OpenStateClosed
}

func (s OpenState) String() string {
	switch s {
	case OpenStateOpen:
		return "open"
	case OpenStateClosed:
		return "closed"
	default:
		return undeterminedLiteral
	}
}

// MarshalJSON encodes definite states as booleans and anything else as "undetermined".
func (s OpenState) MarshalJSON() ([]byte, error) {
	switch s {
	case OpenStateOpen:
		return []byte("true"), nil
	case OpenStateClosed:
		return []byte("false"), nil
	default:
		return json.Marshal(undeterminedLiteral)
	}
}

// UnmarshalJSON accepts true, false or "undetermined".
func (s *OpenState) UnmarshalJSON(data []byte) error {
	var open bool
	if err := json.Unmarshal(data, &open); err == nil {
		*s = OpenStateOf(open)

		return nil
	}

	*s = OpenStateUndetermined

	return nil
}
