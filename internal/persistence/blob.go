package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mauv0809/scoreboard/internal/roster"
	"github.com/vmihailenco/msgpack/v5"
)

// BlobVersion is written into every encoded board.
const BlobVersion = 1

var ErrInvalidBlob = errors.New("invalid board blob")

type envelope struct {
	Version int             `msgpack:"v"`
	Players []roster.Player `msgpack:"players"`
}

// Encode serialises a roster snapshot into a versioned blob.
func Encode(s roster.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(envelope{Version: BlobVersion, Players: s.Players()})
	if err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return data, nil
}

// Decode parses a blob written by Encode. Unversioned JSON arrays of
// {"name","score"} objects are accepted as the legacy format.
func Decode(data []byte) (roster.Snapshot, error) {
	var players []roster.Player
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &players); err != nil {
			return roster.Snapshot{}, fmt.Errorf("%w: legacy json: %w", ErrInvalidBlob, err)
		}
	} else {
		var env envelope
		if err := msgpack.Unmarshal(data, &env); err != nil {
			return roster.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
		}
		if env.Version != BlobVersion {
			return roster.Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidBlob, env.Version)
		}
		players = env.Players
	}

	if err := validate(players); err != nil {
		return roster.Snapshot{}, err
	}
	return roster.NewSnapshot(players), nil
}

func validate(players []roster.Player) error {
	seen := make(map[string]struct{}, len(players))
	for i, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: player %d has an empty name", ErrInvalidBlob, i)
		}
		if p.Score < 0 {
			return fmt.Errorf("%w: player %q has a negative score", ErrInvalidBlob, p.Name)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidBlob, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
