package world

import (
	"encoding/json"
	"fmt"
	"os"
)

// worldFile is the on-disk shape of a world definition.
type worldFile struct {
	GameTime   int          `json:"game_time"`
	PlayerID   int64        `json:"player_id"`
	Maps       []*GameMap   `json:"maps"`
	Characters []*Character `json:"characters"`
}

// LoadFile reads a world definition from a JSON file and builds a State.
// Characters are registered in file order, which fixes the simulation's
// iteration order.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read %s: %w", path, err)
	}
	var wf worldFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("world: parse %s: %w", path, err)
	}

	s := NewState()
	s.SetGameTime(wf.GameTime)
	for _, m := range wf.Maps {
		if m == nil {
			continue
		}
		m.reindex()
		s.AddMap(m)
	}
	for _, c := range wf.Characters {
		s.AddCharacter(c)
	}
	if wf.PlayerID != 0 {
		if s.CharacterByID(wf.PlayerID) == nil {
			return nil, fmt.Errorf("world: player character %d not defined", wf.PlayerID)
		}
		s.SetPlayer(wf.PlayerID)
	}
	return s, nil
}
