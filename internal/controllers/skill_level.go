package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SkillLevel accepts a level written either as a label ("Advanced") or as a
// number (4, 4.5). Numbers are kept in their JSON spelling.
type SkillLevel string

func (l *SkillLevel) UnmarshalJSON(data []byte) error {
	if l == nil {
		return fmt.Errorf("SkillLevel: nil receiver")
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = SkillLevel(strings.TrimSpace(s))
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var num json.Number
		if err := json.Unmarshal(trimmed, &num); err != nil {
			return err
		}
		*l = SkillLevel(num.String())
		return nil
	}
	return fmt.Errorf("SkillLevel: expected string or number, got %s", string(data))
}

func (l SkillLevel) String() string {
	return string(l)
}
