package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CastMember struct {
	CharacterName string `json:"character_name"`
}

// CastList is always a list. Upstream may send an array, a single object or
// null; anything else fails to decode.
type CastList []CastMember

func (c *CastList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*c = CastList{}
		return nil
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("decode cast: invalid literal %q", data)
		}
		*c = CastList{}
		return nil
	case '[':
		var members []CastMember
		if err := json.Unmarshal(data, &members); err != nil {
			return fmt.Errorf("decode cast list: %w", err)
		}
		if members == nil {
			members = []CastMember{}
		}
		*c = members
		return nil
	case '{':
		var member CastMember
		if err := json.Unmarshal(data, &member); err != nil {
			return fmt.Errorf("decode cast member: %w", err)
		}
		*c = CastList{member}
		return nil
	default:
		return fmt.Errorf("decode cast: unexpected JSON value %.20q", data)
	}
}

// Characters returns the character names in order.
func (c CastList) Characters() []string {
	names := make([]string, 0, len(c))
	for _, m := range c {
		names = append(names, m.CharacterName)
	}
	return names
}
